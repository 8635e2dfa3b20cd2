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
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
)

// PPUStatusPreset is the value of the PPUSTATUS register after NewNES().
const PPUStatusPreset = 0xa2

// NewNES creates a memory map with the layout of the NES internal RAM and
// the PPU register block. A program ROM should be added to the map with
// AddROM() before use.
//
// The 2KB of internal RAM is split into three regions: ZPG, STACK and RAM.
func NewNES() (*MemoryMap, *PPURegisters, error) {
	mem := NewMemoryMap()

	if err := mem.AddRAM("ZPG", 0x0000, 0x0100); err != nil {
		return nil, nil, err
	}
	if err := mem.AddRAM("STACK", cpubus.StackOrigin, 0x0100); err != nil {
		return nil, nil, err
	}
	if err := mem.AddRAM("RAM", 0x0200, 0x0600); err != nil {
		return nil, nil, err
	}

	ppu := &PPURegisters{}
	ppu.SetValue(cpubus.PPUSTATUS, PPUStatusPreset)
	if err := mem.AddPeripheral("PPU", cpubus.PPUOrigin, cpubus.PPUMemtop, ppu); err != nil {
		return nil, nil, err
	}

	return mem, ppu, nil
}
