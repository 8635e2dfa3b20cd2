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

package monitor

import (
	"github.com/gdamore/tcell"
)

var (
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHeading = tcell.StyleDefault.Foreground(tcell.ColorWhite).Underline(true)
	styleValue   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBreak   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func drawString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, c := range str {
		s.SetContent(x, y, c, nil, style)
		x++
	}
}

// box with a label in the top border. the interior of the box is cleared
func drawBox(s tcell.Screen, x, y, w, h int, label string) {
	s.SetContent(x, y, tcell.RuneULCorner, nil, styleBox)
	s.SetContent(x+w, y, tcell.RuneURCorner, nil, styleBox)
	s.SetContent(x, y+h, tcell.RuneLLCorner, nil, styleBox)
	s.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, styleBox)

	for col := x + 1; col < x+w; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, styleBox)
		s.SetContent(col, y+h, tcell.RuneHLine, nil, styleBox)
	}
	for row := y + 1; row < y+h; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, styleBox)
		s.SetContent(x+w, row, tcell.RuneVLine, nil, styleBox)
	}

	for col := x + 1; col < x+w; col++ {
		for row := y + 1; row < y+h; row++ {
			s.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}

	drawString(s, x+2, y, styleLabel, " "+label+" ")
}

func clearLine(s tcell.Screen, y int) {
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
