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

package rom

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/pulse6502/curated"
)

// Sentinal error patterns for the rom package.
const (
	MalformedROM  = "rom: malformed rom (line %d): %s"
	ImageTooLarge = "rom: image does not fit in address space ($%04x + %d bytes)"
)

// Image is the data in a ROM and the address at which it should be loaded.
type Image struct {
	Origin uint16
	Data   []uint8
}

func (img *Image) String() string {
	if len(img.Data) == 0 {
		return fmt.Sprintf("$%04x (empty)", img.Origin)
	}
	return fmt.Sprintf("$%04x-$%04x (%d bytes)", img.Origin, img.Memtop(), len(img.Data))
}

// Memtop returns the address of the last byte in the image.
func (img *Image) Memtop() uint16 {
	if len(img.Data) == 0 {
		return img.Origin
	}
	return img.Origin + uint16(len(img.Data)-1)
}

// fit returns an error if the image would extend beyond the 16bit address
// space.
func (img *Image) fit() error {
	if int(img.Origin)+len(img.Data) > 0x10000 {
		return curated.Errorf(ImageTooLarge, img.Origin, len(img.Data))
	}
	return nil
}

// Load the text ROM format from the io.Reader.
func Load(r io.Reader) (*Image, error) {
	img := &Image{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	header := false

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if i := strings.IndexRune(line, '#'); i >= 0 {
			line = line[:i]
		}

		if !header {
			line = strings.TrimSpace(line)
			if line == "" {
				return nil, curated.Errorf(MalformedROM, lineNum, "missing load address")
			}

			if len(line) < 5 || line[4] != ':' {
				return nil, curated.Errorf(MalformedROM, lineNum, "load address must be four hex digits followed by a colon")
			}

			origin, err := strconv.ParseUint(line[:4], 16, 16)
			if err != nil {
				return nil, curated.Errorf(MalformedROM, lineNum, fmt.Sprintf("load address: %q", line[:4]))
			}

			img.Origin = uint16(origin)
			header = true

			// bytes can follow the load address on the same line
			line = line[5:]
		}

		for _, f := range strings.Fields(line) {
			if len(f)%2 != 0 {
				return nil, curated.Errorf(MalformedROM, lineNum, fmt.Sprintf("odd number of digits: %q", f))
			}

			b, err := hex.DecodeString(f)
			if err != nil {
				return nil, curated.Errorf(MalformedROM, lineNum, fmt.Sprintf("not hexadecimal: %q", f))
			}

			img.Data = append(img.Data, b...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("rom: %v", err)
	}

	if !header {
		return nil, curated.Errorf(MalformedROM, lineNum, "empty file")
	}

	if err := img.fit(); err != nil {
		return nil, err
	}

	return img, nil
}

// LoadFile loads a file in the text ROM format.
func LoadFile(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("rom: %v", err)
	}
	defer f.Close()
	return Load(f)
}

// the number of bytes written on each line by Write()
const bytesPerLine = 16

// Write the image to the io.Writer in the text ROM format. The comment is
// written after the load address if it is not empty.
func Write(w io.Writer, img *Image, comment string) error {
	if err := img.fit(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%04X:\n", img.Origin)
	if comment != "" {
		for _, s := range strings.Split(comment, "\n") {
			fmt.Fprintf(bw, "# %s\n", s)
		}
	}

	for i := 0; i < len(img.Data); i += bytesPerLine {
		end := min(i+bytesPerLine, len(img.Data))
		for _, b := range img.Data[i:end] {
			fmt.Fprintf(bw, "%02X ", b)
		}
		fmt.Fprintf(bw, "# $%04x\n", int(img.Origin)+i)
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf("rom: %v", err)
	}

	return nil
}
