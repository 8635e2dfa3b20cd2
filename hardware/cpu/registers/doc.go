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

// Package registers implements the status register of the 6502 and the pure
// arithmetic and logic functions used by the CPU to compute results and
// flags.
//
// The ALU functions do not modify any state. They return the result and
// the values of any flags that the operation affects. It is up to the CPU to
// decide which flags are stored.
//
// Decimal mode is not supported. The Decimal flag can be set and cleared but
// it has no effect on Add() or Subtract().
package registers
