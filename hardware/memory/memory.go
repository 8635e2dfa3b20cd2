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

package memory

import (
	"fmt"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
	"github.com/jetsetilly/pulse6502/logger"
)

// Sentinal error patterns for the memory package.
const (
	InvalidRegion = "memory: invalid region (%s): %s"
)

// Peripheral is implemented by memory mapped devices. The address passed to
// the functions is relative to the origin of the peripheral's region.
type Peripheral interface {
	Read(offset uint16) (uint8, error)
	Write(offset uint16, data uint8) error

	// Peek is like Read() but without side effects
	Peek(offset uint16) uint8
}

// RegionType indicates how a region responds to accesses.
type RegionType int

// List of valid RegionType values.
const (
	RegionRAM RegionType = iota
	RegionROM
	RegionPeripheral
)

func (t RegionType) String() string {
	switch t {
	case RegionRAM:
		return "RAM"
	case RegionROM:
		return "ROM"
	case RegionPeripheral:
		return "peripheral"
	}
	return "unknown region type"
}

// Region is a range of addresses in the memory map.
type Region struct {
	Name   string
	Type   RegionType
	Origin uint16
	Memtop uint16

	data   []uint8
	periph Peripheral
}

func (r *Region) String() string {
	return fmt.Sprintf("%-8s %-10s %#04x -> %#04x", r.Name, r.Type, r.Origin, r.Memtop)
}

func (r *Region) contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// MemoryMap implements the cpubus.Memory interface.
type MemoryMap struct {
	reads       []*Region
	writes      []*Region
	peripherals []*Region
}

// NewMemoryMap is the preferred method of initialisation for the MemoryMap
// type. The map is initially empty.
func NewMemoryMap() *MemoryMap {
	return &MemoryMap{}
}

func checkRange(name string, origin uint16, size int) error {
	if size <= 0 {
		return curated.Errorf(InvalidRegion, name, "size must be greater than zero")
	}
	if int(origin)+size-1 > 0xffff {
		return curated.Errorf(InvalidRegion, name, fmt.Sprintf("%d bytes at %#04x exceeds address space", size, origin))
	}
	return nil
}

// AddRAM adds a readable and writable region to the memory map. The RAM is
// initialised to zero.
func (mem *MemoryMap) AddRAM(name string, origin uint16, size int) error {
	if err := checkRange(name, origin, size); err != nil {
		return err
	}
	r := &Region{
		Name:   name,
		Type:   RegionRAM,
		Origin: origin,
		Memtop: uint16(int(origin) + size - 1),
		data:   make([]uint8, size),
	}
	mem.reads = append(mem.reads, r)
	mem.writes = append(mem.writes, r)
	logger.Logf(logger.Allow, "memory", "added %s", r)
	return nil
}

// AddROM adds a read-only region to the memory map. The data is copied.
func (mem *MemoryMap) AddROM(name string, origin uint16, data []uint8) error {
	if err := checkRange(name, origin, len(data)); err != nil {
		return err
	}
	r := &Region{
		Name:   name,
		Type:   RegionROM,
		Origin: origin,
		Memtop: uint16(int(origin) + len(data) - 1),
		data:   append([]uint8(nil), data...),
	}
	mem.reads = append(mem.reads, r)
	logger.Logf(logger.Allow, "memory", "added %s", r)
	return nil
}

// AddPeripheral adds a memory mapped device to the memory map.
func (mem *MemoryMap) AddPeripheral(name string, origin uint16, memtop uint16, p Peripheral) error {
	if memtop < origin {
		return curated.Errorf(InvalidRegion, name, "memtop is before origin")
	}
	if p == nil {
		return curated.Errorf(InvalidRegion, name, "no peripheral")
	}
	r := &Region{
		Name:   name,
		Type:   RegionPeripheral,
		Origin: origin,
		Memtop: memtop,
		periph: p,
	}
	mem.peripherals = append(mem.peripherals, r)
	logger.Logf(logger.Allow, "memory", "added %s", r)
	return nil
}

// find the most recently added region in the list containing the address.
func find(regions []*Region, address uint16) *Region {
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].contains(address) {
			return regions[i]
		}
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *MemoryMap) Read(address uint16) (uint8, error) {
	if p := find(mem.peripherals, address); p != nil {
		return p.periph.Read(address - p.Origin)
	}
	if r := find(mem.reads, address); r != nil {
		return r.data[address-r.Origin], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, "read", address)
}

// Write implements the cpubus.Memory interface. Writing to ROM or to an
// unmapped address has no effect other than the returned error.
func (mem *MemoryMap) Write(address uint16, data uint8) error {
	if p := find(mem.peripherals, address); p != nil {
		return p.periph.Write(address-p.Origin, data)
	}
	if r := find(mem.writes, address); r != nil {
		r.data[address-r.Origin] = data
		return nil
	}
	return curated.Errorf(cpubus.AddressError, "write", address)
}

// Peek returns the value at the address without triggering any side effects
// in peripherals.
func (mem *MemoryMap) Peek(address uint16) (uint8, error) {
	if p := find(mem.peripherals, address); p != nil {
		return p.periph.Peek(address - p.Origin), nil
	}
	if r := find(mem.reads, address); r != nil {
		return r.data[address-r.Origin], nil
	}
	return 0, curated.Errorf(cpubus.AddressError, "peek", address)
}

// Poke sets the value at the address. Unlike Write() the value will be
// written to ROM if ROM is visible at the address.
func (mem *MemoryMap) Poke(address uint16, data uint8) error {
	if p := find(mem.peripherals, address); p != nil {
		return p.periph.Write(address-p.Origin, data)
	}
	if r := find(mem.reads, address); r != nil {
		r.data[address-r.Origin] = data
		return nil
	}
	if r := find(mem.writes, address); r != nil {
		r.data[address-r.Origin] = data
		return nil
	}
	return curated.Errorf(cpubus.AddressError, "poke", address)
}

// Regions returns a copy of every region in the order they were added,
// peripherals last.
func (mem *MemoryMap) Regions() []Region {
	var regions []Region
	seen := make(map[*Region]bool)
	for _, l := range [][]*Region{mem.reads, mem.writes, mem.peripherals} {
		for _, r := range l {
			if !seen[r] {
				seen[r] = true
				regions = append(regions, *r)
			}
		}
	}
	return regions
}

// RegionName returns the name of the region that would serve a read of the
// address. Returns the empty string if the address is unmapped.
func (mem *MemoryMap) RegionName(address uint16) string {
	if p := find(mem.peripherals, address); p != nil {
		return p.Name
	}
	if r := find(mem.reads, address); r != nil {
		return r.Name
	}
	return ""
}
