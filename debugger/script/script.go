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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger"
	"github.com/jetsetilly/pulse6502/disassembly"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns for the script package.
const (
	ScriptError = "script: %v"
)

// Script is a Lua interpreter bound to a debugger Session.
type Script struct {
	sess   *debugger.Session
	state  *lua.LState
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is written to output.
func NewScript(sess *debugger.Session, output io.Writer) *Script {
	scr := &Script{
		sess:   sess,
		state:  lua.NewState(),
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":      scr.print,
		"pulse":      scr.pulse,
		"step":       scr.step,
		"run":        scr.run,
		"rununtil":   scr.runUntil,
		"reset":      scr.reset,
		"reg":        scr.reg,
		"setreg":     scr.setReg,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"cycles":     scr.cycles,
		"tcu":        scr.tcu,
		"killed":     scr.killed,
		"breakpoint": scr.breakpoint,
		"disasm":     scr.disasm,
		"trace":      scr.trace,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua interpreter. The Script can not be used after Close().
func (scr *Script) Close() {
	scr.state.Close()
}

// Run the Lua source.
func (scr *Script) Run(src string) error {
	if err := scr.state.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) raise(L *lua.LState, err error) int {
	L.RaiseError("%v", err)
	return 0
}

func (scr *Script) pulse(L *lua.LState) int {
	if err := scr.sess.Pulse(); err != nil {
		return scr.raise(L, err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	if err := scr.sess.StepInstruction(); err != nil {
		return scr.raise(L, err)
	}
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	h, err := scr.sess.Run(optLimit(L, 1))
	if err != nil {
		return scr.raise(L, err)
	}
	L.Push(lua.LString(h.String()))
	return 1
}

func (scr *Script) runUntil(L *lua.LState) int {
	target := checkAddress(L, 1)
	h, err := scr.sess.RunUntil(target, optLimit(L, 2))
	if err != nil {
		return scr.raise(L, err)
	}
	L.Push(lua.LString(h.String()))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	if err := scr.sess.Reset(); err != nil {
		return scr.raise(L, err)
	}
	return 0
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

// optional cycle limit. zero or absent is no limit
func optLimit(L *lua.LState, n int) uint64 {
	v := L.OptInt64(n, 0)
	if v < 0 {
		L.ArgError(n, "cycle limit cannot be negative")
	}
	return uint64(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.sess.CPU

	var v int
	switch strings.ToLower(L.CheckString(1)) {
	case "pc":
		v = int(mc.PC)
	case "a":
		v = int(mc.A)
	case "x":
		v = int(mc.X)
	case "y":
		v = int(mc.Y)
	case "sp":
		v = int(mc.SP)
	case "p":
		v = int(mc.P.Value())
	case "ir":
		v = int(mc.IR)
	case "tcu":
		v = int(mc.TCU)
	default:
		L.ArgError(1, "unknown register")
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setReg(L *lua.LState) int {
	mc := scr.sess.CPU

	switch strings.ToLower(L.CheckString(1)) {
	case "pc":
		if err := mc.LoadPC(checkAddress(L, 2)); err != nil {
			return scr.raise(L, err)
		}
	case "a":
		mc.A = checkByte(L, 2)
	case "x":
		mc.X = checkByte(L, 2)
	case "y":
		mc.Y = checkByte(L, 2)
	case "sp":
		mc.SP = checkByte(L, 2)
	case "p":
		mc.P.Load(checkByte(L, 2))
	default:
		L.ArgError(1, "unknown or read-only register")
	}

	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sess.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.sess.Poke(checkAddress(L, 1), checkByte(L, 2)); err != nil {
		return scr.raise(L, err)
	}
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sess.CPU.Cycles))
	return 1
}

func (scr *Script) tcu(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sess.CPU.TCU))
	return 1
}

func (scr *Script) killed(L *lua.LState) int {
	L.Push(lua.LBool(scr.sess.CPU.Killed))
	return 1
}

func (scr *Script) breakpoint(L *lua.LState) int {
	L.Push(lua.LBool(scr.sess.AddBreak(checkAddress(L, 1))))
	return 1
}

func (scr *Script) disasm(L *lua.LState) int {
	e := disassembly.Disassemble(scr.sess.Mem, checkAddress(L, 1))
	L.Push(lua.LString(e.String()))
	return 1
}

func (scr *Script) trace(L *lua.LState) int {
	L.Push(lua.LString(debugger.TraceLine(scr.sess.CPU, scr.sess.Mem)))
	return 1
}
