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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pulse6502/debugger"
)

// NTSCClock is the clock rate of the CPU in an NTSC NES, in Hz.
const NTSCClock = 1789773

// the number of instructions between checks of the timer
const performanceBrake = 1000

// Result of a performance check.
type Result struct {
	Cycles   uint64
	Duration time.Duration
}

// MHz returns the effective clock rate of the emulation.
func (r Result) MHz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds() / 1000000
}

// Accuracy returns the speed of the emulation as a percentage of the speed
// of an NTSC NES.
func (r Result) Accuracy() float64 {
	return 100 * r.MHz() * 1000000 / NTSCClock
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%",
		r.MHz(), r.Cycles, r.Duration.Seconds(), r.Accuracy())
}

// Check runs the Session for the duration and writes the Result to output.
// The check ends early if the CPU is killed.
func Check(output io.Writer, sess *debugger.Session, profile Profile, duration time.Duration) (Result, error) {
	var res Result

	runner := func() error {
		start := time.Now()
		startCycles := sess.CPU.Cycles
		timer := time.After(duration)

		defer func() {
			res.Duration = time.Since(start)
			res.Cycles = sess.CPU.Cycles - startCycles
		}()

		for {
			for i := 0; i < performanceBrake; i++ {
				if sess.CPU.Killed {
					return nil
				}
				if err := sess.StepInstruction(); err != nil {
					return err
				}
			}

			select {
			case <-timer:
				return nil
			default:
			}
		}
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return res, err
	}

	fmt.Fprintln(output, res)

	return res, nil
}
