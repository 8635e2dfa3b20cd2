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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/statsview"
	"github.com/jetsetilly/pulse6502/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())
	w := &test.CompareWriter{}
	stop := statsview.Launch(w)
	stop()
	test.ExpectSuccess(t, w.Compare(""))
}
