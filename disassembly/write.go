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

package disassembly

import (
	"fmt"
	"io"
)

// Write the disassembly of every instruction between origin and memtop
// (inclusive) to io.Writer. Disassembly is linear. Data in the range will be
// decoded as though it were an instruction.
func Write(output io.Writer, mem Peeker, origin uint16, memtop uint16) error {
	address := int(origin)
	for address <= int(memtop) {
		e := Disassemble(mem, uint16(address))
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return err
		}
		address += len(e.Bytes)
	}
	return nil
}
