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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/pulse6502/modalflag"
	"github.com/jetsetilly/pulse6502/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "nestest", "-scale", "3", "nestest.log"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "NESTEST", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "NESTEST")

	md.NewMode()
	scale := md.AddInt("scale", 1, "cycle scale")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *scale, 3)
	test.ExpectEquality(t, md.Path(), "NESTEST")
	test.ExpectEquality(t, md.GetArg(0), "nestest.log")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}

	// argument is not a mode
	md.NewArgs([]string{"program.rom"})
	md.AddSubModes("run", "disasm")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "program.rom")

	// flags of the default mode are parsed by the next layer
	md.NewArgs([]string{"-cycles", "100", "program.rom"})
	md.AddSubModes("run", "disasm")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	cycles := md.AddUint64("cycles", 0, "number of cycles")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cycles, uint64(100))
	test.ExpectEquality(t, md.GetArg(0), "program.rom")
}

func TestAddress(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-origin", "$c000", "-pc", "0x8000", "-until", "fffe"})
	origin := md.AddAddress("origin", 0x0400, "origin")
	pc := md.AddAddress("pc", 0, "pc")
	until := md.AddAddress("until", 0, "until")
	other := md.AddAddress("other", 0x1234, "other")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, uint16(0xc000))
	test.ExpectEquality(t, *pc, uint16(0x8000))
	test.ExpectEquality(t, *until, uint16(0xfffe))
	test.ExpectEquality(t, *other, uint16(0x1234))

	var set []string
	md.Visit(func(f string) {
		set = append(set, f)
	})
	test.ExpectEquality(t, len(set), 3)

	md.NewArgs([]string{"-origin", "10000"})
	md.AddAddress("origin", 0, "origin")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)

	_, err = modalflag.ParseAddress("$zz")
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"RUN", "-help"})
	md.AddSubModes("RUN", "STEP")
	_, _ = md.Parse()

	md.NewMode()
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: for RUN mode\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"more help\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestDuration(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-duration", "2s"})
	d := md.AddDuration("duration", time.Second, "duration")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *d, 2*time.Second)
}
