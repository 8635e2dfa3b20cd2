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

// Package memory implements the memory map seen by the CPU. The map is made
// up of named regions. RAM regions can be read and written, ROM regions can
// only be read and peripheral regions forward accesses to a Peripheral
// implementation.
//
// Regions may overlap. Reads and writes are resolved separately, with the
// most recently added region taking precedence. Peripherals always take
// precedence over RAM and ROM.
//
// An access that does not resolve to a region returns a curated error with
// the cpubus.AddressError pattern. Reads from unmapped addresses return zero.
//
// The Peek() and Poke() functions access memory without side effects and
// ignore the read-only status of ROM. They are for debuggers and loaders.
package memory
