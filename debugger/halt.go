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

import "fmt"

// HaltReason is the reason the emulation stopped running.
type HaltReason int

// List of valid HaltReason values.
const (
	HaltNone HaltReason = iota
	HaltBreakpoint
	HaltTrap
	HaltTarget
	HaltLimit
	HaltKilled
	HaltInterrupt
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltBreakpoint:
		return "breakpoint"
	case HaltTrap:
		return "trap"
	case HaltTarget:
		return "target reached"
	case HaltLimit:
		return "cycle limit"
	case HaltKilled:
		return "cpu killed"
	case HaltInterrupt:
		return "interrupted"
	}
	return "unknown halt reason"
}

// Halt describes why and where the emulation stopped.
type Halt struct {
	Reason HaltReason

	// the PC at the time of the halt
	PC uint16

	// additional information. for example the trap that was sprung
	Detail string
}

func (h Halt) String() string {
	if h.Detail != "" {
		return fmt.Sprintf("%s at $%04x (%s)", h.Reason, h.PC, h.Detail)
	}
	return fmt.Sprintf("%s at $%04x", h.Reason, h.PC)
}
