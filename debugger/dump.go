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

package debugger

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
)

type dumpCPU struct {
	PC      uint16
	A       uint8
	X       uint8
	Y       uint8
	SP      uint8
	P       string
	IR      uint8
	TCU     uint8
	MicroOp string
	Cycles  uint64
	Killed  bool
}

type dumpState struct {
	CPU     dumpCPU
	Regions []string
	PPU     map[string]uint8
}

// Dump writes a graphviz description of the CPU and the memory map to
// io.Writer. The contents of memory are not included.
func (s *Session) Dump(w io.Writer) {
	mc := s.CPU.Snapshot()

	st := &dumpState{
		CPU: dumpCPU{
			PC:      mc.PC,
			A:       mc.A,
			X:       mc.X,
			Y:       mc.Y,
			SP:      mc.SP,
			P:       mc.P.String(),
			IR:      mc.IR,
			TCU:     mc.TCU,
			MicroOp: mc.MicroOp(),
			Cycles:  mc.Cycles,
			Killed:  mc.Killed,
		},
	}

	for _, r := range s.Mem.Regions() {
		st.Regions = append(st.Regions, r.String())
	}

	if s.PPU != nil {
		st.PPU = make(map[string]uint8)
		for _, reg := range cpubus.PPURegisters {
			st.PPU[string(reg)] = s.PPU.Value(reg)
		}
	}

	memviz.Map(w, st)
}
