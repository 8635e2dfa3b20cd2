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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Each package that returns curated errors declares its patterns as
// constants so that callers can test for them. For example:
//
//	const UnimplementedOpcode = "cpu: unimplemented opcode (%#02x)"
//
//	err := curated.Errorf(UnimplementedOpcode, 0x02)
//	if curated.Is(err, UnimplementedOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. A curated error wraps another error simply by using it as
// a placeholder value.
//
//	f := curated.Errorf("nestest: %v", err)
//	curated.Has(f, UnimplementedOpcode) // true
//	curated.Is(f, UnimplementedOpcode) // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Errors that are not curated can be thought of as
// unexpected.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. This means that a function can wrap an error with its
// package prefix without worrying about whether the error already carries
// that prefix.
package curated
