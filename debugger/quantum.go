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

// Quantum specifies the step granularity of the emulator.
type Quantum int

// List of valid Quantum values.
const (
	QuantumInstruction Quantum = iota
	QuantumCycle
)

func (q Quantum) String() string {
	switch q {
	case QuantumInstruction:
		return "Instruction"
	case QuantumCycle:
		return "Cycle"
	default:
		return "unrecognised quantum"
	}
}
