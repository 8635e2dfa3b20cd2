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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/logger"
	"github.com/jetsetilly/pulse6502/rom"
	"github.com/jetsetilly/pulse6502/rom/ines"
)

// Sentinal error patterns for the cartridgeloader package.
const (
	UnknownFormat  = "cartridgeloader: unknown format (%s)"
	UnexpectedHash = "cartridgeloader: unexpected hash value"
)

// List of valid values for the Format field.
const (
	FormatROM = "ROM"
	FormatBIN = "BIN"
	FormatNES = "NES"
)

// Loader is used to specify the program to load into memory.
type Loader struct {
	// filename of program to load. can be a URL
	Filename string

	// one of the Format constants. an empty string is the same as FormatROM
	Format string

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions ".ROM" and ".TXT" are the text ROM format, ".NES" is the
// iNES format and ".BIN" is raw binary data. Any other extension is assumed
// to be the text ROM format.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   FormatROM,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "AUTO" && format != "" {
		cl.Format = format
	} else {
		switch strings.ToUpper(path.Ext(filename)) {
		case ".NES":
			cl.Format = FormatNES
		case ".BIN":
			cl.Format = FormatBIN
		}
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data from the file or URL. Currently supported schemes are HTTP
// and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes)", cl.ShortName(), len(cl.Data))

	return nil
}

// Image converts the loaded data to a rom.Image. The origin argument is the
// load address of raw binary data and is ignored by the other formats. Load()
// is called if it has not been called already.
func (cl *Loader) Image(origin uint16) (*rom.Image, error) {
	if err := cl.Load(); err != nil {
		return nil, err
	}

	var img *rom.Image
	var err error

	switch cl.Format {
	case FormatROM, "":
		img, err = rom.Load(bytes.NewReader(cl.Data))
	case FormatBIN:
		img = &rom.Image{Origin: origin, Data: cl.Data}
		if int(origin)+len(cl.Data) > 0x10000 {
			err = curated.Errorf(rom.ImageTooLarge, origin, len(cl.Data))
		}
	case FormatNES:
		var cart *ines.Cartridge
		cart, err = ines.Parse(cl.Data)
		if err == nil {
			logger.Logf(logger.Allow, "cartridgeloader", "iNES header: %s", strings.ReplaceAll(cart.Header.String(), "\n", "; "))
			img = cart.PRGImage()
		}
	default:
		return nil, curated.Errorf(UnknownFormat, cl.Format)
	}

	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	return img, nil
}
