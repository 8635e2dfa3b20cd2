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

package nestest_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/nestest"
	"github.com/jetsetilly/pulse6502/rom"
	"github.com/jetsetilly/pulse6502/test"
)

func newHarness(t *testing.T) (*nestest.Harness, *cpu.CPU) {
	t.Helper()

	mem, _, err := memory.NewNES()
	test.DemandSuccess(t, err)

	img, err := rom.LoadFile("testdata/test.rom")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.AddROM("PRG", img.Origin, img.Data))

	mc := cpu.NewCPU(mem)
	mc.Logging = false
	test.DemandSuccess(t, mc.Reset())
	test.DemandSuccess(t, mc.LoadPC(0xc000))

	return nestest.NewHarness(mc), mc
}

func openLog(t *testing.T, filename string) *os.File {
	t.Helper()
	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestHarness(t *testing.T) {
	h, mc := newHarness(t)
	w := &test.CompareWriter{}
	h.Output = w

	res, err := h.Run(openLog(t, "testdata/test.log"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Lines, 16)
	test.ExpectEquality(t, res.Passed, 15)
	test.ExpectEquality(t, res.Failed, 0)
	test.ExpectEquality(t, mc.PC, uint16(0xc605))
	test.ExpectEquality(t, mc.Cycles, uint64(51))
	test.ExpectSuccess(t, w.Compare("15 instructions: 15 passed, 0 failed\n"))
}

func TestHarnessFirstInstruction(t *testing.T) {
	h, mc := newHarness(t)

	// the first two lines only
	log := openLog(t, "testdata/test.log")
	b := make([]byte, 4096)
	n, _ := log.Read(b)
	lines := strings.SplitAfterN(string(b[:n]), "\n", 3)

	_, err := h.Run(strings.NewReader(lines[0] + lines[1]))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC, uint16(0xc5f5))
	test.ExpectEquality(t, mc.A, uint8(0))
	test.ExpectEquality(t, mc.X, uint8(0))
	test.ExpectEquality(t, mc.Y, uint8(0))
	test.ExpectEquality(t, mc.P.Value(), uint8(0x24))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))
	test.ExpectEquality(t, mc.Cycles, uint64(10))
}

func TestHarnessLegacy(t *testing.T) {
	h, _ := newHarness(t)

	// without scaling the first line fails because the cycle count is in PPU
	// dots
	_, err := h.Run(openLog(t, "testdata/legacy.log"))
	test.ExpectSuccess(t, curated.Is(err, nestest.Mismatch))

	h, _ = newHarness(t)
	h.Scale = 3
	res, err := h.Run(openLog(t, "testdata/legacy.log"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Passed, 15)
}

func TestHarnessMismatch(t *testing.T) {
	h, _ := newHarness(t)
	w := &test.CompareWriter{}
	h.Output = w

	res, err := h.Run(openLog(t, "testdata/mismatch.log"))
	test.ExpectSuccess(t, curated.Is(err, nestest.Mismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 10"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "A Expected: 01 Actual: 00"))
	test.ExpectEquality(t, res.Failed, 1)
	test.ExpectEquality(t, res.Passed, 8)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "[Failed] C60B  08        PHP"))

	// continue after failures
	h, mc := newHarness(t)
	h.MaxFailures = -1
	h.ReportPasses = true
	w.Clear()
	h.Output = w

	res, err = h.Run(openLog(t, "testdata/mismatch.log"))
	test.ExpectSuccess(t, curated.Is(err, nestest.Mismatch))
	test.ExpectEquality(t, res.Failed, 1)
	test.ExpectEquality(t, res.Passed, 14)
	test.ExpectEquality(t, mc.PC, uint16(0xc605))
	test.ExpectEquality(t, len(w.Lines()), 15+1+1)
}

func TestHarnessColor(t *testing.T) {
	h, _ := newHarness(t)
	w := &test.CompareWriter{}
	h.Output = w
	h.Color = true

	_, err := h.Run(openLog(t, "testdata/mismatch.log"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "\033["))
}

func TestHarnessReportTail(t *testing.T) {
	h, _ := newHarness(t)

	summary := "15 instructions: 15 passed, 0 failed\n"
	w, err := test.NewRingWriter(len(summary))
	test.DemandSuccess(t, err)
	h.Output = w
	h.ReportPasses = true

	_, err = h.Run(openLog(t, "testdata/test.log"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), summary)
}
