// This file is part of pulse6502.
//
// pulse6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pulse6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pulse6502.  If not, see <https://www.gnu.org/licenses/>.

package ines

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/rom"
)

// Sentinal error patterns for the ines package.
const (
	NotINES           = "ines: not an iNES file"
	UnsupportedFormat = "ines: unsupported format (%s)"
	Truncated         = "ines: file is truncated (%s)"
)

// Mirroring is the arrangement of the PPU nametables.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	case FourScreen:
		return "4"
	}
	return "?"
}

const (
	headerLen  = 16
	trainerLen = 512

	// PRGBankSize is the size of each bank of PRG ROM.
	PRGBankSize = 0x4000

	// CHRBankSize is the size of each bank of CHR ROM.
	CHRBankSize = 0x2000

	// PRGOrigin is the address at which the PRG ROM is mapped.
	PRGOrigin = 0x8000
)

// flags6 bits
const (
	flagMirroring  = 0x01
	flagBattery    = 0x02
	flagTrainer    = 0x04
	flagFourScreen = 0x08
)

// flags7 bits
const (
	flagVSUnisystem  = 0x01
	flagPlayChoice10 = 0x02
)

// Header is the decoded 16 byte iNES header.
type Header struct {
	PRGBanks  int
	CHRBanks  int
	PRGRAM    int
	Mapper    uint8
	Mirroring Mirroring

	CartridgeRAM bool
	Trainer      bool
	VSUnisystem  bool
	PlayChoice10 bool
	NES2         bool
}

// ParseHeader decodes the iNES header. Only the magic number is checked.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < headerLen {
		return Header{}, curated.Errorf(Truncated, "header")
	}

	if string(b[0:4]) != "NES\x1a" {
		return Header{}, curated.Errorf(NotINES)
	}

	h := Header{
		PRGBanks:     int(b[4]),
		CHRBanks:     int(b[5]),
		PRGRAM:       int(b[8]),
		CartridgeRAM: b[6]&flagBattery == flagBattery,
		Trainer:      b[6]&flagTrainer == flagTrainer,
		VSUnisystem:  b[7]&flagVSUnisystem == flagVSUnisystem,
		PlayChoice10: b[7]&flagPlayChoice10 == flagPlayChoice10,
		NES2:         b[7]&0x0c == 0x08,
		Mapper:       b[6]>>4 | b[7]&0xf0,
	}

	switch {
	case b[6]&flagFourScreen == flagFourScreen:
		h.Mirroring = FourScreen
	case b[6]&flagMirroring == flagMirroring:
		h.Mirroring = Vertical
	default:
		h.Mirroring = Horizontal
	}

	return h, nil
}

// Supported returns an error if the cartridge requires features that are
// not supported.
func (h Header) Supported() error {
	if h.NES2 {
		return curated.Errorf(UnsupportedFormat, "NES 2.0")
	}

	var opts []string
	if h.CartridgeRAM {
		opts = append(opts, "cartridge RAM")
	}
	if h.Trainer {
		opts = append(opts, "trainer")
	}
	if h.VSUnisystem {
		opts = append(opts, "VS Unisystem")
	}
	if h.PlayChoice10 {
		opts = append(opts, "PlayChoice-10")
	}
	if len(opts) > 0 {
		return curated.Errorf(UnsupportedFormat, strings.Join(opts, ", "))
	}

	if h.Mapper != 0 {
		return curated.Errorf(UnsupportedFormat, fmt.Sprintf("mapper %d", h.Mapper))
	}

	if h.PRGBanks < 1 || h.PRGBanks > 2 {
		return curated.Errorf(UnsupportedFormat, fmt.Sprintf("%d PRG banks", h.PRGBanks))
	}

	return nil
}

func (h Header) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "PRG ROM SIZE:  %d (%d)\n", h.PRGBanks, h.PRGBanks*PRGBankSize)
	fmt.Fprintf(&s, "CHR ROM SIZE:  %d (%d)\n", h.CHRBanks, h.CHRBanks*CHRBankSize)
	fmt.Fprintf(&s, "Mirroring:     %s\n", h.Mirroring)
	fmt.Fprintf(&s, "Cartridge RAM: %t\n", h.CartridgeRAM)
	fmt.Fprintf(&s, "Trainer:       %t\n", h.Trainer)
	fmt.Fprintf(&s, "VS Unisystem:  %t\n", h.VSUnisystem)
	fmt.Fprintf(&s, "PlayChoice-10: %t\n", h.PlayChoice10)
	fmt.Fprintf(&s, "NES 2.0:       %t\n", h.NES2)
	fmt.Fprintf(&s, "Mapper:        %d\n", h.Mapper)
	fmt.Fprintf(&s, "PRG RAM SIZE:  %d (%d)", h.PRGRAM, h.PRGRAM*CHRBankSize)
	return s.String()
}

// Cartridge is a parsed iNES file.
type Cartridge struct {
	Header Header
	PRG    []uint8
	CHR    []uint8
}

// Parse the data as an iNES file. Cartridges that are not supported by the
// emulation are rejected with an UnsupportedFormat error.
func Parse(data []byte) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if err := h.Supported(); err != nil {
		return nil, err
	}

	data = data[headerLen:]

	prgLen := h.PRGBanks * PRGBankSize
	if len(data) < prgLen {
		return nil, curated.Errorf(Truncated, "PRG ROM")
	}

	cart := &Cartridge{
		Header: h,
		PRG:    data[:prgLen],
	}
	data = data[prgLen:]

	chrLen := h.CHRBanks * CHRBankSize
	if len(data) < chrLen {
		return nil, curated.Errorf(Truncated, "CHR ROM")
	}
	cart.CHR = data[:chrLen]

	return cart, nil
}

// Load reads and parses an iNES file from the io.Reader.
func Load(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("ines: %v", err)
	}
	return Parse(data)
}

// PRGImage returns the PRG ROM as an image at $8000. A cartridge with a
// single bank of PRG ROM is mirrored to $C000.
func (cart *Cartridge) PRGImage() *rom.Image {
	img := &rom.Image{
		Origin: PRGOrigin,
		Data:   make([]uint8, 0, 2*PRGBankSize),
	}

	img.Data = append(img.Data, cart.PRG...)
	if cart.Header.PRGBanks == 1 {
		img.Data = append(img.Data, cart.PRG...)
	}

	return img
}
