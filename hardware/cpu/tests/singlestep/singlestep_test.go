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

package singlestep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
	"github.com/jetsetilly/pulse6502/hardware/cpu/registers"
	"github.com/jetsetilly/pulse6502/test"
)

// the possible bus events recorded by the memory implementation
type busEvent string

const (
	read  = busEvent("read")
	write = busEvent("write")
)

type testMem struct {
	internal []uint8
	cycles   []busCycle
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	v := mem.internal[address]
	mem.cycles = append(mem.cycles, busCycle{Address: address, Data: v, Event: read})
	return v, nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	mem.cycles = append(mem.cycles, busCycle{Address: address, Data: data, Event: write})
	return nil
}

type ramEntry struct {
	Address uint16
	Value   uint8
}

func (r *ramEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type busCycle struct {
	Address uint16
	Data    uint8
	Event   busEvent
}

func (b *busCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = busEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected bus event: %q", b.Event)
	}

	return nil
}

func (b busCycle) String() string {
	return fmt.Sprintf("%s %04x %02x", b.Event, b.Address, b.Data)
}

type state struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []ramEntry `json:"ram"`
}

type singleStep struct {
	Name    string     `json:"name"`
	Initial state      `json:"initial"`
	Final   state      `json:"final"`
	Cycles  []busCycle `json:"cycles"`
}

var testsPath = filepath.Join("6502", "v1")

func TestSingleStep(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Skipf("no single step tests: %v", err)
	}

	var n int
	for _, e := range d {
		if e.Name() == ".gitkeep" || !e.Type().IsRegular() {
			continue
		}
		n++
		t.Run(e.Name(), func(t *testing.T) {
			testFile(t, filepath.Join(testsPath, e.Name()))
		})
	}

	if n == 0 {
		t.Skip("no single step tests")
	}
}

// skip returns true if the test relies on behaviour that is not emulated
func skip(defn instructions.Definition, s singleStep) bool {
	if defn.Jams() {
		return true
	}

	switch defn.Operator {
	case instructions.SHA, instructions.SHX, instructions.SHY, instructions.TAS:
		return true
	case instructions.ADC, instructions.SBC, instructions.ISC, instructions.RRA, instructions.ARR:
		return s.Initial.P&uint64(registers.Decimal) != 0
	}

	return false
}

func testFile(t *testing.T, filename string) {
	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []singleStep
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", filename, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(mem)
	mc.Logging = false

	for i, s := range tests {
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		defn := instructions.Lookup(mem.internal[uint16(s.Initial.PC)])
		if skip(defn, s) {
			continue
		}

		test.DemandSuccess(t, mc.LoadPC(uint16(s.Initial.PC)))
		mc.A = uint8(s.Initial.A)
		mc.X = uint8(s.Initial.X)
		mc.Y = uint8(s.Initial.Y)
		mc.SP = uint8(s.Initial.S)
		mc.P.Load(uint8(s.Initial.P))
		mem.cycles = mem.cycles[:0]

		for {
			if err := mc.Pulse(); err != nil {
				t.Fatalf("%s: %v", s.Name, err)
			}
			if mc.InstructionBoundary() {
				break
			}
		}

		var fail bool

		if !test.ExpectEquality(t, len(mem.cycles), len(s.Cycles), s.Name, i, "cycles") {
			fail = true
		} else {
			for c := range s.Cycles {
				fail = !test.ExpectEquality(t, mem.cycles[c], s.Cycles[c], s.Name, i, "cycle", c) || fail
			}
		}

		fail = !test.ExpectEquality(t, mc.PC, uint16(s.Final.PC), s.Name, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A, uint8(s.Final.A), s.Name, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X, uint8(s.Final.X), s.Name, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y, uint8(s.Final.Y), s.Name, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP, uint8(s.Final.S), s.Name, i, "SP") || fail
		fail = !test.ExpectEquality(t, uint8(mc.P)&0xcf, uint8(s.Final.P)&0xcf, s.Name, i, "P") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, s.Name, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Fatalf("%s: failed on test %d (%s)", filename, i, defn)
		}
	}
}
