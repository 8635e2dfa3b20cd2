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

// Package performance measures the speed of the emulation. The Check()
// function runs a Session for a fixed period of time and reports the
// effective clock rate of the emulated CPU.
//
// Profiling of the Go runtime is available with the Profile type. The
// profiles are written to the working directory and can be examined with
// "go tool pprof".
package performance
