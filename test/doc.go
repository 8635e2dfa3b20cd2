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

// Package test bundles helper functions to remove common boilerplate from
// tests, particularly in conjunction with the standard go test harness.
//
// The Expect*() functions report an error and continue. The Demand*()
// functions are the same but stop the test immediately. Success and failure
// are decided by the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//
// A plain nil is also considered a success because of how errors are
// normally signalled in Go.
//
// All functions accept an optional list of tags. The tags are printed
// before the failure message and are useful for identifying which iteration
// of a table driven test has failed.
//
// The CompareWriter and RingWriter types implement io.Writer
// and are used to capture output for later comparison.
package test
