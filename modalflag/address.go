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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// addressValue implements the flag.Value interface for 16 bit addresses
type addressValue uint16

func (a *addressValue) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}

// ParseAddress parses a hexadecimal address. The prefixes $ and 0x are
// accepted but not required.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(s, "$")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a 16 bit address: %s", s)
	}
	return uint16(v), nil
}
