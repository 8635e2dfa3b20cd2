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

// Package modalflag wraps the flag package of the standard library to handle
// program modes. Each mode has its own set of flags and can have sub-modes
// of its own.
//
// Arguments are given to NewArgs() and each layer of the command line is
// processed with a call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "NESTEST", "DISASM")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If the first argument after the flags is one of the sub-modes then that
// sub-mode is selected, otherwise the first sub-mode in the list is the
// default. Sub-mode comparisons are case insensitive and the selected mode
// is returned in upper-case by Mode().
//
// After deciding on the mode, NewMode() prepares the next layer of flags:
//
//	case "DISASM":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x8000, "address of first byte")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		disassemble(*origin, md.RemainingArgs())
//
// Address flags accept hexadecimal values with an optional $ or 0x prefix.
//
// Help is printed to the Output writer when the -help flag is found, along
// with the list of sub-modes and any text given to AdditionalHelp().
package modalflag
