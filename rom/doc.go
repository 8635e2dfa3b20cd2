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

// Package rom reads and writes the text ROM format. A ROM file is a load
// address of four hexadecimal digits followed by a colon, and then any number
// of hexadecimal byte pairs. Byte pairs are separated by whitespace and a
// '#' character starts a comment that runs to the end of the line.
//
//	C000:
//	# reset vector test
//	4C F5 C5 EA EA   # $c000
//
// The Image type is the result of loading a ROM file and can be added to a
// memory.MemoryMap with AddROM(). The Write() function produces a ROM file
// from an Image, sixteen bytes per line with each line commented with the
// address of the first byte.
package rom
