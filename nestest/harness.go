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

package nestest

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm/ansi"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/logger"
)

// the number of characters of the log line shown in the report
const reportWidth = 28

// the maximum number of cycles an instruction can take before the harness
// decides the CPU has stopped
const maxInstructionCycles = 8

// Harness compares the execution of a CPU with a trace log.
type Harness struct {
	mc *cpu.CPU

	// the log cycle count is divided by Scale before comparison. a value of
	// zero is the same as one
	Scale uint64

	// the harness stops after this many consecutive failures. a value of zero
	// is the same as one. a negative value means the harness never stops
	// early
	MaxFailures int

	// report is written to Output. passes are only reported if
	// ReportPasses is true
	Output       io.Writer
	ReportPasses bool
	Color        bool
}

// Result summarises a run of the harness.
type Result struct {
	Lines  int
	Passed int
	Failed int
}

func (r Result) String() string {
	return fmt.Sprintf("%d instructions: %d passed, %d failed", r.Passed+r.Failed, r.Passed, r.Failed)
}

// NewHarness is the preferred method of initialisation for the Harness type.
// The CPU should be reset and the PC loaded with the start address of the
// log.
func NewHarness(mc *cpu.CPU) *Harness {
	return &Harness{
		mc:          mc,
		Scale:       1,
		MaxFailures: 1,
		Output:      io.Discard,
	}
}

func (h *Harness) pen(col string) string {
	if !h.Color {
		return ""
	}
	return ansi.Pens[col]
}

func (h *Harness) normal() string {
	if !h.Color {
		return ""
	}
	return ansi.NormalPen
}

func summary(s string) string {
	if len(s) > reportWidth {
		return s[:reportWidth]
	}
	return s
}

// compare the state of the CPU with the line. returns a description of the
// first difference or the empty string if there is no difference
func (h *Harness) compare(l Line, lastCycles uint64) string {
	cyc := l.Cycles / max(h.Scale, 1)
	if h.mc.Cycles != cyc {
		return fmt.Sprintf("CYC Expected: %d(+%d) Actual: %d(+%d)", cyc, cyc-lastCycles, h.mc.Cycles, h.mc.Cycles-lastCycles)
	}

	for _, r := range []struct {
		name     string
		expected uint8
		actual   uint8
	}{
		{"A", l.A, h.mc.A},
		{"X", l.X, h.mc.X},
		{"Y", l.Y, h.mc.Y},
		{"P", l.P, h.mc.P.Value()},
		{"SP", l.SP, h.mc.SP},
	} {
		if r.expected != r.actual {
			return fmt.Sprintf("%s Expected: %02X Actual: %02X", r.name, r.expected, r.actual)
		}
	}

	return ""
}

// instruction runs the CPU until the next instruction boundary
func (h *Harness) instruction() error {
	for i := 0; i < maxInstructionCycles; i++ {
		if err := h.mc.Pulse(); err != nil {
			return err
		}
		if h.mc.InstructionBoundary() {
			return nil
		}
	}
	return curated.Errorf("nestest: instruction at %#04x did not complete", h.mc.PC)
}

// Run the CPU against the trace log. The state of the CPU before the first
// instruction is compared with the first line of the log.
//
// Returns a Mismatch error if any line failed. The Result is valid even if an
// error is returned.
func (h *Harness) Run(log io.Reader) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(log)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return res, curated.Errorf("nestest: %v", err)
		}
		return res, curated.Errorf(MalformedLine, "empty log")
	}

	res.Lines++
	prevText := scanner.Text()
	prev, err := ParseLine(prevText)
	if err != nil {
		return res, curated.Errorf("nestest: line 1: %v", err)
	}

	var firstFail error
	var fails int

	// the first line describes the state of the CPU before any instruction
	if diff := h.compare(prev, 0); diff != "" {
		return res, curated.Errorf(Mismatch, 1, diff)
	}

	lastCycles := h.mc.Cycles

	for scanner.Scan() {
		res.Lines++
		text := scanner.Text()
		start := time.Now()

		l, err := ParseLine(text)
		if err != nil {
			return res, curated.Errorf("nestest: line %d: %v", res.Lines, err)
		}

		var diff string

		if h.mc.PC != prev.PC {
			diff = fmt.Sprintf("PC Expected: %04X Actual: %04X", prev.PC, h.mc.PC)
		} else {
			if err := h.instruction(); err != nil {
				return res, err
			}
			diff = h.compare(l, lastCycles)
		}

		elapsed := time.Since(start)

		if diff != "" {
			res.Failed++
			fails++
			fmt.Fprintf(h.Output, "%s[Failed] %s in %v\n    %s%s\n", h.pen("red"), summary(prevText), elapsed, diff, h.normal())
			logger.Logf(logger.Allow, "nestest", "line %d: %s", res.Lines, diff)

			if firstFail == nil {
				firstFail = curated.Errorf(Mismatch, res.Lines, diff)
			}

			limit := h.MaxFailures
			if limit == 0 {
				limit = 1
			}
			if limit > 0 && fails >= limit {
				return res, firstFail
			}

			// the CPU may no longer agree with the log. resynchronise with the
			// line so that later lines can be checked
			if err := h.mc.LoadPC(l.PC); err != nil {
				return res, err
			}
			h.mc.A = l.A
			h.mc.X = l.X
			h.mc.Y = l.Y
			h.mc.SP = l.SP
			h.mc.P.Pull(l.P)
			h.mc.Cycles = l.Cycles / max(h.Scale, 1)
		} else {
			res.Passed++
			fails = 0
			if h.ReportPasses {
				fmt.Fprintf(h.Output, "%s[Passed] %s in %v%s\n", h.pen("green"), summary(prevText), elapsed, h.normal())
			}
		}

		prev = l
		prevText = text
		lastCycles = h.mc.Cycles
	}

	if err := scanner.Err(); err != nil {
		return res, curated.Errorf("nestest: %v", err)
	}

	fmt.Fprintf(h.Output, "%s\n", res)

	return res, firstFail
}
