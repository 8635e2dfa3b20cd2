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

// Package logger is the central log repository for pulse6502. Log entries are
// made with the package level Log() and Logf() functions. Every entry has a
// tag, usually the name of the package or the component making the entry,
// and a detail string.
//
// Identical entries made one after the other are collapsed into a single
// entry with a repeat count.
//
// The Permission interface controls whether a log entry is made. A debugging
// session for example might want the CPU to log bus errors while a test
// harness running the same CPU does not.
//
// A private Logger can be created with NewLogger(). This is useful for tests
// and for components that want to keep their entries separate from the
// central log.
package logger
