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

// Package cartridgeloader is used to specify the program that is to be
// loaded into the emulated memory.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. The Image()
// function converts the loaded data into a rom.Image according to the format
// of the data.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/nestest.nes",
//		Format:   "NES",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the Format field automatically according to
// the filename extension.
package cartridgeloader
