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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
	"github.com/jetsetilly/pulse6502/test"
)

func TestDefinitionsTable(t *testing.T) {
	var documented int
	var jams int

	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectInequality(t, defn.Operator, instructions.NoOperator, defn)
		if !defn.Undocumented {
			documented++
		}
		if defn.Jams() {
			jams++
			continue
		}
		if defn.Operator != instructions.BRK {
			test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
		}
	}

	test.ExpectEquality(t, documented, 151)
	test.ExpectEquality(t, jams, 12)
}

func TestLookup(t *testing.T) {
	defn := instructions.Lookup(0x6c)
	test.ExpectEquality(t, defn.Operator, instructions.JMP)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Cycles, 5)

	defn = instructions.Lookup(0xb1)
	test.ExpectEquality(t, defn.Operator.String(), "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.IndirectIndexed)
	test.ExpectSuccess(t, defn.PageSensitive)

	// stores are never page sensitive, they always take the extra cycle
	defn = instructions.Lookup(0x91)
	test.ExpectFailure(t, defn.PageSensitive)
	test.ExpectEquality(t, defn.Cycles, 6)

	defn = instructions.Lookup(0xe7)
	test.ExpectEquality(t, defn.Operator.String(), "ISB")
	test.ExpectSuccess(t, defn.Undocumented)
}
