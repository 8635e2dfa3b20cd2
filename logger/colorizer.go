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

package logger

import (
	"bytes"
	"io"
	"os"

	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm/ansi"
	"golang.org/x/term"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is printed in a dim pen. Entries that mention an error are printed in
// red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. If the output is a file that is not a terminal then the original
// writer is returned unchanged.
func NewColorizer(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok {
		if !term.IsTerminal(int(f.Fd())) {
			return out
		}
	}
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, ok := bytes.Cut(l, []byte(": "))
		if !ok {
			b.Write(l)
			continue
		}

		b.WriteString(ansi.DimPens["cyan"])
		b.Write(tag)
		b.WriteString(ansi.NormalPen)
		b.WriteString(": ")
		if bytes.Contains(detail, []byte("error")) {
			b.WriteString(ansi.Pens["red"])
			b.Write(bytes.TrimSuffix(detail, []byte("\n")))
			b.WriteString(ansi.NormalPen)
			if bytes.HasSuffix(detail, []byte("\n")) {
				b.WriteString("\n")
			}
		} else {
			b.Write(detail)
		}
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
