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

package nestest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/pulse6502/curated"
)

// Sentinal error patterns for the nestest package.
const (
	MalformedLine = "nestest: malformed line: %s"
	Mismatch      = "nestest: mismatch at line %d: %s"
)

// Line is a single decoded line of a trace log.
type Line struct {
	PC uint16

	// the disassembly between the PC and the register section. not used for
	// comparison
	Text string

	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8

	// the PPU field as it appears in the log. empty if the log has no PPU
	// field
	PPU string

	Cycles uint64
}

func (l Line) String() string {
	return fmt.Sprintf("%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d", l.PC, l.A, l.X, l.Y, l.P, l.SP, l.Cycles)
}

// ParseLine decodes a line from a trace log. The register section is found by
// its tokens rather than by column position so that logs with and without
// the PPU field can be decoded.
func ParseLine(s string) (Line, error) {
	var l Line

	s = strings.TrimRight(s, "\r\n")
	if len(s) < 4 {
		return l, curated.Errorf(MalformedLine, "too short")
	}

	pc, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return l, curated.Errorf(MalformedLine, fmt.Sprintf("PC: %q", s[:4]))
	}
	l.PC = uint16(pc)

	idx := strings.LastIndex(s, " A:")
	if idx < 0 {
		return l, curated.Errorf(MalformedLine, "no register section")
	}
	l.Text = strings.TrimSpace(s[4:idx])

	// the fields found in the register section
	const (
		fldA = 1 << iota
		fldX
		fldY
		fldP
		fldSP
		fldCYC
		required = fldA | fldX | fldY | fldP | fldSP | fldCYC
	)
	var found int

	fields := strings.Fields(s[idx:])
	for i := 0; i < len(fields); i++ {
		key, val, ok := strings.Cut(fields[i], ":")
		if !ok {
			continue
		}

		// a space is permitted between the colon and the value
		if val == "" && i+1 < len(fields) && !strings.Contains(fields[i+1], ":") {
			i++
			val = fields[i]
		}

		var reg *uint8
		var fld int

		switch key {
		case "A":
			reg, fld = &l.A, fldA
		case "X":
			reg, fld = &l.X, fldX
		case "Y":
			reg, fld = &l.Y, fldY
		case "P":
			reg, fld = &l.P, fldP
		case "SP":
			reg, fld = &l.SP, fldSP
		case "PPU":
			// the PPU field is two comma separated numbers
			l.PPU = val
			if strings.HasSuffix(val, ",") && i+1 < len(fields) {
				i++
				l.PPU = fmt.Sprintf("%s%s", val, fields[i])
			}
			continue
		case "CYC":
			c, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return l, curated.Errorf(MalformedLine, fmt.Sprintf("CYC: %q", val))
			}
			l.Cycles = c
			found |= fldCYC
			continue
		default:
			continue
		}

		v, err := strconv.ParseUint(val, 16, 8)
		if err != nil {
			return l, curated.Errorf(MalformedLine, fmt.Sprintf("%s: %q", key, val))
		}
		*reg = uint8(v)
		found |= fld
	}

	if found != required {
		return l, curated.Errorf(MalformedLine, "missing register")
	}

	return l, nil
}
