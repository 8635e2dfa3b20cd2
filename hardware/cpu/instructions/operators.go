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

package instructions

// Operator is the operation performed by an instruction. Several opcodes share
// the same Operator, differing only in addressing mode.
type Operator int

// List of operators. Undocumented operators follow the documented operators
// and are named as they are most commonly named.
const (
	NoOperator Operator = iota

	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// undocumented
	ALR
	ANC
	ARR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	LXA
	RLA
	RRA
	SAX
	SHA
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA
)

var operatorNames = [...]string{
	NoOperator: "???",
	ADC:        "ADC",
	AND:        "AND",
	ASL:        "ASL",
	BCC:        "BCC",
	BCS:        "BCS",
	BEQ:        "BEQ",
	BIT:        "BIT",
	BMI:        "BMI",
	BNE:        "BNE",
	BPL:        "BPL",
	BRK:        "BRK",
	BVC:        "BVC",
	BVS:        "BVS",
	CLC:        "CLC",
	CLD:        "CLD",
	CLI:        "CLI",
	CLV:        "CLV",
	CMP:        "CMP",
	CPX:        "CPX",
	CPY:        "CPY",
	DEC:        "DEC",
	DEX:        "DEX",
	DEY:        "DEY",
	EOR:        "EOR",
	INC:        "INC",
	INX:        "INX",
	INY:        "INY",
	JMP:        "JMP",
	JSR:        "JSR",
	LDA:        "LDA",
	LDX:        "LDX",
	LDY:        "LDY",
	LSR:        "LSR",
	NOP:        "NOP",
	ORA:        "ORA",
	PHA:        "PHA",
	PHP:        "PHP",
	PLA:        "PLA",
	PLP:        "PLP",
	ROL:        "ROL",
	ROR:        "ROR",
	RTI:        "RTI",
	RTS:        "RTS",
	SBC:        "SBC",
	SEC:        "SEC",
	SED:        "SED",
	SEI:        "SEI",
	STA:        "STA",
	STX:        "STX",
	STY:        "STY",
	TAX:        "TAX",
	TAY:        "TAY",
	TSX:        "TSX",
	TXA:        "TXA",
	TXS:        "TXS",
	TYA:        "TYA",
	ALR:        "ALR",
	ANC:        "ANC",
	ARR:        "ARR",
	AXS:        "AXS",
	DCP:        "DCP",
	ISC:        "ISB",
	KIL:        "KIL",
	LAS:        "LAS",
	LAX:        "LAX",
	LXA:        "LXA",
	RLA:        "RLA",
	RRA:        "RRA",
	SAX:        "SAX",
	SHA:        "SHA",
	SHX:        "SHX",
	SHY:        "SHY",
	SLO:        "SLO",
	SRE:        "SRE",
	TAS:        "TAS",
	XAA:        "XAA",
}

// String returns the mnemonic for the operator. The mnemonics for
// undocumented operators are those used by the nestest log.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return operatorNames[NoOperator]
	}
	return operatorNames[o]
}
