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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runCycles(cyclesPerTick)
//	}
package limiter

import (
	"time"
)

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	tick chan bool
	done chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of ticks per second and must be greater than zero.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		done: make(chan bool),
	}

	period := time.Second / time.Duration(max(rate, 1))

	go func() {
		adjusted := period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()

			// the next sleep is shortened by the amount the previous sleep
			// overran
			adjusted -= nt.Sub(t) - period
			t = nt
		}
	}()

	return lim
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.done)
}

// Wait will block until the next tick.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the next tick has already happened. It does not
// block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
