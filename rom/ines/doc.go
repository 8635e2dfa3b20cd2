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

// Package ines reads cartridge files in the iNES format. Only the simplest
// cartridges are supported: mapper zero, with no trainer, no battery backed
// RAM and no VS Unisystem or PlayChoice-10 hardware. NES 2.0 files are
// rejected.
//
// The PRG ROM of a cartridge can be converted to a rom.Image with the
// PRGImage() function, ready to be added to a memory map.
//
// https://www.nesdev.org/wiki/INES
package ines
