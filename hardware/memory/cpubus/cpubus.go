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

// Package cpubus defines the interface between the CPU and the memory system.
// Any type that implements the Memory interface can be attached to the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU does not care which part of memory an address belongs to.
//
// An access to an address with nothing behind it should return an
// AddressError. For reads the data value should be zero. The CPU tolerates
// AddressErrors but any other error is passed back to the caller of
// CPU.Pulse().
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the pattern for the curated error returned when an address
// is not mapped for the type of access.
const AddressError = "cpubus: address error (%s %#04x)"

// Vectors for the three interrupt types.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// BRK uses the IRQ vector.
const BRK = IRQ

// StackOrigin is the address of the first byte of the stack page. The
// effective stack address is StackOrigin|SP.
const StackOrigin = uint16(0x0100)
