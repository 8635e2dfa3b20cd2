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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
	"github.com/jetsetilly/pulse6502/test"
)

// busAccess records a single bus transaction
type busAccess struct {
	address uint16
	data    uint8
	read    bool
}

func (b busAccess) String() string {
	if b.read {
		return fmt.Sprintf("read %04x %02x", b.address, b.data)
	}
	return fmt.Sprintf("write %04x %02x", b.address, b.data)
}

// mockMem is a flat 64KB memory that records every access
type mockMem struct {
	internal [0x10000]uint8
	log      []busAccess
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	v := mem.internal[address]
	mem.log = append(mem.log, busAccess{address: address, data: v, read: true})
	return v, nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	mem.log = append(mem.log, busAccess{address: address, data: data})
	return nil
}

// putInstructions places the bytes in memory starting at origin and sets the
// reset vector to point to origin.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	mem.internal[cpubus.Reset] = uint8(origin)
	mem.internal[cpubus.Reset+1] = uint8(origin >> 8)
}

func (mem *mockMem) clearLog() {
	mem.log = mem.log[:0]
}

// newTestCPU creates a CPU attached to a mockMem with the program placed at
// origin. the CPU has been reset and the bus log is empty.
func newTestCPU(t *testing.T, origin uint16, bytes ...uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.putInstructions(origin, bytes...)
	mc := cpu.NewCPU(mem)
	mc.Logging = false
	test.DemandSuccess(t, mc.Reset())
	mem.clearLog()
	return mc, mem
}

// step runs the CPU until the next instruction boundary and returns the
// number of cycles taken.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	n := 0
	for {
		test.DemandSuccess(t, mc.Pulse())
		n++
		if mc.TCU == 0 {
			return n
		}
		if n > 10 {
			t.Fatalf("instruction %#02x did not complete", mc.IR)
		}
	}
}
