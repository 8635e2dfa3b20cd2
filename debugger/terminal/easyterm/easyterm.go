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

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak or raw mode so that single key presses can
// be read without waiting for a newline, and restores the terminal afterwards.
package easyterm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/pkg/term"
)

// TerminalError is the sentinal error pattern for the easyterm package.
const TerminalError = "easyterm: %v"

// Key is a decoded key press.
type Key struct {
	Rune rune

	// Esc is non-zero for cursor keys. the value is one of the Cursor*
	// constants
	Esc rune
}

// Terminal is the main type for the easyterm package.
type Terminal struct {
	tty *term.Term
	out io.Writer

	// in raw mode the terminal does no output processing. newlines written
	// with Write() or Print() are expanded to carriage-return/newline
	raw bool
}

// NewTerminal opens the named terminal device, usually /dev/tty, and puts it
// into cbreak mode. Output is written to out.
func NewTerminal(device string, out io.Writer) (*Terminal, error) {
	tty, err := term.Open(device)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	if err := tty.SetCbreak(); err != nil {
		tty.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Terminal{tty: tty, out: out}, nil
}

// CleanUp restores the terminal to the state it was in before NewTerminal()
// and closes the device.
func (et *Terminal) CleanUp() error {
	et.raw = false
	if err := et.tty.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := et.tty.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// RawMode puts the terminal into raw mode. Signals such as ctrl-c are no
// longer generated and arrive as key presses instead.
func (et *Terminal) RawMode() error {
	if err := et.tty.SetRaw(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	et.raw = true
	return nil
}

// CBreakMode puts the terminal into cbreak mode.
func (et *Terminal) CBreakMode() error {
	if err := et.tty.SetCbreak(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	et.raw = false
	return nil
}

// Write implements the io.Writer interface.
func (et *Terminal) Write(p []byte) (int, error) {
	if et.raw {
		if _, err := et.out.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
			return 0, err
		}
		return len(p), nil
	}
	return et.out.Write(p)
}

// Print writes formatted output to the terminal output.
func (et *Terminal) Print(format string, args ...any) {
	fmt.Fprintf(et, format, args...)
}

// ReadKey blocks until a key is pressed.
func (et *Terminal) ReadKey() (Key, error) {
	b := make([]byte, 3)
	n, err := et.tty.Read(b)
	if err != nil {
		return Key{}, curated.Errorf(TerminalError, err)
	}
	return DecodeKey(b[:n]), nil
}

// Keys starts a goroutine that reads key presses and sends them on the
// returned channel. The channel is closed when the terminal can no longer be
// read, which includes after CleanUp().
func (et *Terminal) Keys() <-chan Key {
	keys := make(chan Key)
	go func() {
		defer close(keys)
		for {
			k, err := et.ReadKey()
			if err != nil {
				return
			}
			keys <- k
		}
	}()
	return keys
}

// DecodeKey interprets the bytes produced by a single key press. Exposed for
// testing.
func DecodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}
	if b[0] == KeyEsc && len(b) == 3 && b[1] == EscCursor {
		return Key{Rune: KeyEsc, Esc: rune(b[2])}
	}
	return Key{Rune: rune(b[0])}
}
