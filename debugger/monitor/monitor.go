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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger"
	"github.com/jetsetilly/pulse6502/disassembly"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
	"github.com/jetsetilly/pulse6502/logger"
)

// MonitorError is the sentinal error pattern for the monitor package.
const MonitorError = "monitor: %v"

// the default number of cycles the run commands will run for before giving
// control back to the user
const defaultRunLimit = 10000000

// number of instructions in the disassembly panel
const disasmLines = 20

// number of rows in the memory panel. each row is sixteen bytes
const memoryRows = 8

// Monitor is a full screen interface to a debugger Session.
type Monitor struct {
	sess   *debugger.Session
	screen tcell.Screen

	// the maximum number of cycles to run for with the c and r keys. a value
	// of zero means no limit
	RunLimit uint64

	// the file written to with the d key
	DumpFile string

	// first address shown in the memory panel
	memAddr uint16

	// the address of the instruction being executed. only changes at
	// instruction boundaries
	insPC uint16

	// address input for the r key
	prompting bool
	input     strings.Builder

	status    string
	statusErr bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The screen is initialised by Run().
func NewMonitor(sess *debugger.Session, screen tcell.Screen) *Monitor {
	return &Monitor{
		sess:     sess,
		screen:   screen,
		RunLimit: defaultRunLimit,
		DumpFile: "pulse6502.dot",
		insPC:    sess.CPU.PC,
	}
}

// AllowLogging implements the logger.Permission interface.
func (m *Monitor) AllowLogging() bool {
	return true
}

// Run initialises the screen and runs the monitor until the user quits.
func (m *Monitor) Run() error {
	if err := m.screen.Init(); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer m.screen.Fini()

	for {
		m.Draw()
		m.screen.Show()

		ev := m.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if m.HandleEvent(ev) {
			return nil
		}
	}
}

// SetMemoryAddress changes the first address shown in the memory panel. The
// address is rounded down to a multiple of sixteen.
func (m *Monitor) SetMemoryAddress(address uint16) {
	m.memAddr = address &^ 0x0f
}

// Status returns the most recent status message.
func (m *Monitor) Status() string {
	return m.status
}

func (m *Monitor) setStatus(err bool, s string, args ...any) {
	m.status = fmt.Sprintf(s, args...)
	m.statusErr = err
}

// HandleEvent processes a single tcell event. Returns true if the monitor
// should quit.
func (m *Monitor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.screen.Sync()
	case *tcell.EventKey:
		if m.prompting {
			m.handlePrompt(ev)
			return false
		}
		return m.handleKey(ev)
	}
	return false
}

func (m *Monitor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyUp:
		m.memAddr -= 0x10
	case tcell.KeyDown:
		m.memAddr += 0x10
	case tcell.KeyPgUp:
		m.memAddr -= 0x10 * memoryRows
	case tcell.KeyPgDn:
		m.memAddr += 0x10 * memoryRows
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			m.noteBoundary()
			m.result(m.sess.Pulse())
		case 'n':
			m.noteBoundary()
			m.result(m.sess.StepInstruction())
		case 'c':
			m.noteBoundary()
			m.halt(m.cont())
		case 'r':
			m.prompting = true
			m.input.Reset()
			m.setStatus(false, "run to $")
		case 'b':
			pc := m.currentPC()
			if m.sess.IsBreak(pc) {
				m.sess.DropBreak(pc)
				m.setStatus(false, "breakpoint at $%04x dropped", pc)
			} else {
				m.sess.AddBreak(pc)
				m.setStatus(false, "breakpoint at $%04x added", pc)
			}
		case 'd':
			m.dump()
		}
	}

	m.noteBoundary()
	return false
}

func (m *Monitor) handlePrompt(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.prompting = false
		m.setStatus(false, "")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s := m.input.String()
		if len(s) > 0 {
			m.input.Reset()
			m.input.WriteString(s[:len(s)-1])
		}
		m.setStatus(false, "run to $%s", m.input.String())
	case tcell.KeyEnter:
		m.prompting = false
		target, err := strconv.ParseUint(m.input.String(), 16, 16)
		if err != nil {
			m.setStatus(true, "not an address: %s", m.input.String())
			return
		}
		m.noteBoundary()
		m.halt(m.sess.RunUntil(uint16(target), m.RunLimit))
		m.noteBoundary()
	case tcell.KeyRune:
		if m.input.Len() < 4 && strings.ContainsRune("0123456789abcdefABCDEF", ev.Rune()) {
			m.input.WriteRune(ev.Rune())
		}
		m.setStatus(false, "run to $%s", m.input.String())
	}
}

func (m *Monitor) result(err error) {
	if err != nil {
		m.setStatus(true, "%v", err)
		return
	}
	if m.sess.CPU.Killed {
		m.setStatus(true, "cpu killed")
		return
	}
	m.setStatus(false, "")
}

func (m *Monitor) halt(h debugger.Halt, err error) {
	if err != nil {
		m.setStatus(true, "%v", err)
		return
	}
	m.setStatus(h.Reason == debugger.HaltKilled, "%s", h)
}

// continue from the current position. a breakpoint at the current PC is
// stepped over
func (m *Monitor) cont() (debugger.Halt, error) {
	if m.sess.CPU.InstructionBoundary() && m.sess.IsBreak(m.sess.CPU.PC) {
		if err := m.sess.StepInstruction(); err != nil {
			return debugger.Halt{}, err
		}
	}
	return m.sess.Run(m.RunLimit)
}

func (m *Monitor) dump() {
	f, err := os.Create(m.DumpFile)
	if err != nil {
		m.setStatus(true, "%v", err)
		return
	}
	defer f.Close()

	m.sess.Dump(f)
	m.setStatus(false, "cpu dumped to %s", m.DumpFile)
	logger.Logf(m, "monitor", "cpu dumped to %s", m.DumpFile)
}

// the instruction being executed only changes at an instruction boundary
func (m *Monitor) noteBoundary() {
	if m.sess.CPU.InstructionBoundary() {
		m.insPC = m.sess.CPU.PC
	}
}

func (m *Monitor) currentPC() uint16 {
	if m.sess.CPU.InstructionBoundary() {
		return m.sess.CPU.PC
	}
	return m.insPC
}

// Draw the monitor to the screen. The caller is responsible for calling the
// screen's Show() function.
func (m *Monitor) Draw() {
	m.drawRegisters(1, 1)
	m.drawPPU(1, 14)
	m.drawDisassembly(25, 1)
	m.drawMemory(1, 24)

	_, h := m.screen.Size()
	y := max(min(36, h-2), 0)

	clearLine(m.screen, y)
	if m.statusErr {
		drawString(m.screen, 1, y, styleError, m.status)
	} else {
		drawString(m.screen, 1, y, styleStatus, m.status)
	}

	clearLine(m.screen, y+1)
	drawString(m.screen, 1, y+1, styleDim, "space:pulse n:step c:continue r:run to b:break d:dump q:quit")
}

func (m *Monitor) drawRegisters(x, y int) {
	mc := m.sess.CPU
	drawBox(m.screen, x, y, 22, 11, "6502")

	rows := []struct {
		label string
		value string
	}{
		{"PC", fmt.Sprintf("$%04X", mc.PC)},
		{"A", fmt.Sprintf("$%02X", mc.A)},
		{"X", fmt.Sprintf("$%02X", mc.X)},
		{"Y", fmt.Sprintf("$%02X", mc.Y)},
		{"SP", fmt.Sprintf("$%02X", mc.SP)},
		{"P", mc.P.String()},
		{"CYC", fmt.Sprintf("%d", mc.Cycles)},
		{"TCU", fmt.Sprintf("%d", mc.TCU)},
		{"BUS", fmt.Sprintf("$%04X %02X %s", mc.AddressBus, mc.DataBus, readWrite(mc.Read))},
	}

	for i, r := range rows {
		drawString(m.screen, x+2, y+1+i, styleDim, r.label)
		drawString(m.screen, x+6, y+1+i, styleValue, r.value)
	}

	drawString(m.screen, x+2, y+10, styleDim, mc.MicroOp())
}

func readWrite(read bool) string {
	if read {
		return "R"
	}
	return "W"
}

func (m *Monitor) drawPPU(x, y int) {
	drawBox(m.screen, x, y, 22, 9, "PPU")
	if m.sess.PPU == nil {
		drawString(m.screen, x+2, y+1, styleDim, "not present")
		return
	}
	for i, reg := range cpubus.PPURegisters {
		drawString(m.screen, x+2, y+1+i, styleDim, string(reg))
		drawString(m.screen, x+13, y+1+i, styleValue, fmt.Sprintf("$%02X", m.sess.PPU.Value(reg)))
	}
}

func (m *Monitor) drawDisassembly(x, y int) {
	drawBox(m.screen, x, y, 40, disasmLines+1, "Disassembly")

	pc := m.currentPC()
	for i, e := range disassembly.Sequence(m.sess.Mem, pc, disasmLines) {
		style := styleValue
		if i == 0 {
			style = styleCurrent
			drawString(m.screen, x+1, y+1+i, style, ">")
		}
		if m.sess.IsBreak(e.Address) {
			drawString(m.screen, x+2, y+1+i, styleBreak, "*")
		}
		drawString(m.screen, x+4, y+1+i, style, e.String())
	}
}

func (m *Monitor) drawMemory(x, y int) {
	drawBox(m.screen, x, y, 57, memoryRows+3, "Memory")
	drawString(m.screen, x+8, y+1, styleHeading, "x0 x1 x2 x3 x4 x5 x6 x7  x8 x9 xA xB xC xD xE xF")

	addr := m.memAddr &^ 0x0f
	for row := 0; row < memoryRows; row++ {
		drawString(m.screen, x+2, y+2+row, styleValue, fmt.Sprintf("$%04X", addr))
		for low := 0; low < 16; low++ {
			col := x + 8 + low*3
			if low >= 8 {
				col++
			}
			if v, err := m.sess.Mem.Peek(addr); err != nil {
				drawString(m.screen, col, y+2+row, styleDim, "--")
			} else {
				drawString(m.screen, col, y+2+row, styleValue, fmt.Sprintf("%02X", v))
			}
			addr++
		}
	}
}
