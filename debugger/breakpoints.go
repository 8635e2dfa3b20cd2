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
	"slices"
	"strings"
)

// breakpoints halt execution when the PC is at the address of the breakpoint
// at an instruction boundary. compare to traps which are used to halt
// execution when a memory value changes.
type breakpoints struct {
	breaks []uint16

	// the address of the most recent break. the breakpoint will not be
	// triggered again until the PC has moved on. this means that execution
	// can be resumed from a breakpoint
	ignore    uint16
	useIgnore bool
}

func (bp breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, b := range bp.breaks {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("$%04x", b))
	}
	return s.String()
}

func (bp *breakpoints) add(address uint16) bool {
	if slices.Contains(bp.breaks, address) {
		return false
	}
	bp.breaks = append(bp.breaks, address)
	slices.Sort(bp.breaks)
	return true
}

func (bp *breakpoints) drop(address uint16) bool {
	i := slices.Index(bp.breaks, address)
	if i < 0 {
		return false
	}
	bp.breaks = slices.Delete(bp.breaks, i, i+1)
	return true
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
	bp.useIgnore = false
}

// check returns true if the PC matches a breakpoint
func (bp *breakpoints) check(pc uint16) bool {
	if bp.useIgnore {
		if pc == bp.ignore {
			return false
		}
		bp.useIgnore = false
	}

	if _, ok := slices.BinarySearch(bp.breaks, pc); !ok {
		return false
	}

	bp.ignore = pc
	bp.useIgnore = true

	return true
}
