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

// traps are used to halt execution when the value at a memory address
// changes from its current value to any other value.
type traps struct {
	traps []trap
}

type trap struct {
	address uint16
	value   uint8
}

func (tr traps) String() string {
	if len(tr.traps) == 0 {
		return "no traps"
	}
	s := strings.Builder{}
	for i, t := range tr.traps {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("$%04x", t.address))
	}
	return s.String()
}

func (tr *traps) add(address uint16, value uint8) bool {
	if slices.ContainsFunc(tr.traps, func(t trap) bool { return t.address == address }) {
		return false
	}
	tr.traps = append(tr.traps, trap{address: address, value: value})
	return true
}

func (tr *traps) drop(address uint16) bool {
	i := slices.IndexFunc(tr.traps, func(t trap) bool { return t.address == address })
	if i < 0 {
		return false
	}
	tr.traps = slices.Delete(tr.traps, i, i+1)
	return true
}

func (tr *traps) clear() {
	tr.traps = tr.traps[:0]
}

// check the current value of each trap with the peek function. returns a
// description of the first sprung trap or the empty string. the stored value
// of every sprung trap is updated
func (tr *traps) check(peek func(uint16) uint8) string {
	var sprung string
	for i := range tr.traps {
		v := peek(tr.traps[i].address)
		if v != tr.traps[i].value {
			if sprung == "" {
				sprung = fmt.Sprintf("$%04x %02x -> %02x", tr.traps[i].address, tr.traps[i].value, v)
			}
			tr.traps[i].value = v
		}
	}
	return sprung
}
