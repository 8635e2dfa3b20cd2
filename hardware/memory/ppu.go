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

// PPURegisters is a stub implementation of the eight PPU registers. The
// registers are plain storage and are mirrored across the whole of the
// region the peripheral is added to.
type PPURegisters struct {
	regs [8]uint8
}

// Read implements the Peripheral interface.
func (ppu *PPURegisters) Read(offset uint16) (uint8, error) {
	return ppu.regs[offset&0x07], nil
}

// Write implements the Peripheral interface.
func (ppu *PPURegisters) Write(offset uint16, data uint8) error {
	ppu.regs[offset&0x07] = data
	return nil
}

// Peek implements the Peripheral interface.
func (ppu *PPURegisters) Peek(offset uint16) uint8 {
	return ppu.regs[offset&0x07]
}

// Value returns the value of the named register. Unknown names return zero.
func (ppu *PPURegisters) Value(reg cpubus.Register) uint8 {
	for i, r := range cpubus.PPURegisters {
		if r == reg {
			return ppu.regs[i]
		}
	}
	return 0
}

// SetValue sets the value of the named register.
func (ppu *PPURegisters) SetValue(reg cpubus.Register, data uint8) {
	for i, r := range cpubus.PPURegisters {
		if r == reg {
			ppu.regs[i] = data
			return
		}
	}
}
