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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/pulse6502/disassembly"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
)

// the column at which the registers start in a trace line
const traceRegisterColumn = 48

// TraceLine returns the state of the CPU in the format of the nestest.log
// file. The CPU should be at an instruction boundary.
func TraceLine(mc *cpu.CPU, mem disassembly.Peeker) string {
	e := disassembly.Disassemble(mem, mc.PC)
	return fmt.Sprintf("%-*s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		traceRegisterColumn-1, e.String(), mc.A, mc.X, mc.Y, mc.P.Value(), mc.SP, mc.Cycles)
}
