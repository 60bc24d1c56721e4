package asm

// OperandKind classifies the operand field of an instruction.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE          = OperandKind(0) // none
	OPERAND_REGISTER      = OperandKind(1) // register
	OPERAND_REGISTER_PAIR = OperandKind(2) // pair
	OPERAND_IMMEDIATE     = OperandKind(3) // immediate
	OPERAND_ADDRESS       = OperandKind(4) // address
	OPERAND_CONDITION     = OperandKind(5) // condition
	OPERAND_DATA_BYTE     = OperandKind(6) // data (DB directive)
)

// Encoding is the byte layout strategy of an instruction. The strategy is
// assigned once per table entry, so irregular mnemonics (ISZ, FIM) carry
// their own layout instead of being special-cased by name at encode time.
type Encoding int

//go:generate go tool stringer -linecomment -type=Encoding
const (
	ENC_PLAIN     = Encoding(0) // op
	ENC_REG       = Encoding(1) // op|reg
	ENC_PAIR      = Encoding(2) // op|pair
	ENC_IMM       = Encoding(3) // op|imm4
	ENC_COND_ADDR = Encoding(4) // op|cond,addr8
	ENC_ADDR12    = Encoding(5) // op|addr12
	ENC_REG_ADDR  = Encoding(6) // op|reg,addr8
	ENC_PAIR_IMM  = Encoding(7) // op|pair,imm8
)

// Size is the number of output bytes the encoding occupies. Pass 1 relies
// on this being fixed per encoding, independent of operand values.
func (enc Encoding) Size() int {
	switch enc {
	case ENC_COND_ADDR, ENC_ADDR12, ENC_REG_ADDR, ENC_PAIR_IMM:
		return 2
	}
	return 1
}

// Spec describes one instruction of the 4004 table.
type Spec struct {
	Opcode  byte        // Base opcode byte.
	Operand OperandKind // Operand classification.
	Bits    int         // Operand field width in bits, informational.
	Enc     Encoding    // Byte layout strategy.
}

// instructionSet is the full 4004 mnemonic table.
var instructionSet = map[string]Spec{
	// No operand
	"NOP": {0x00, OPERAND_NONE, 0, ENC_PLAIN},
	"WRM": {0xE0, OPERAND_NONE, 0, ENC_PLAIN},
	"WMP": {0xE1, OPERAND_NONE, 0, ENC_PLAIN},
	"WRR": {0xE2, OPERAND_NONE, 0, ENC_PLAIN},
	"WR0": {0xE4, OPERAND_NONE, 0, ENC_PLAIN},
	"WR1": {0xE5, OPERAND_NONE, 0, ENC_PLAIN},
	"WR2": {0xE6, OPERAND_NONE, 0, ENC_PLAIN},
	"WR3": {0xE7, OPERAND_NONE, 0, ENC_PLAIN},
	"SBM": {0xE8, OPERAND_NONE, 0, ENC_PLAIN},
	"RDM": {0xE9, OPERAND_NONE, 0, ENC_PLAIN},
	"RDR": {0xEA, OPERAND_NONE, 0, ENC_PLAIN},
	"ADM": {0xEB, OPERAND_NONE, 0, ENC_PLAIN},
	"RD0": {0xEC, OPERAND_NONE, 0, ENC_PLAIN},
	"RD1": {0xED, OPERAND_NONE, 0, ENC_PLAIN},
	"RD2": {0xEE, OPERAND_NONE, 0, ENC_PLAIN},
	"RD3": {0xEF, OPERAND_NONE, 0, ENC_PLAIN},
	"CLB": {0xF0, OPERAND_NONE, 0, ENC_PLAIN},
	"CLC": {0xF1, OPERAND_NONE, 0, ENC_PLAIN},
	"IAC": {0xF2, OPERAND_NONE, 0, ENC_PLAIN},
	"CMC": {0xF3, OPERAND_NONE, 0, ENC_PLAIN},
	"CMA": {0xF4, OPERAND_NONE, 0, ENC_PLAIN},
	"RAL": {0xF5, OPERAND_NONE, 0, ENC_PLAIN},
	"RAR": {0xF6, OPERAND_NONE, 0, ENC_PLAIN},
	"TCC": {0xF7, OPERAND_NONE, 0, ENC_PLAIN},
	"DAC": {0xF8, OPERAND_NONE, 0, ENC_PLAIN},
	"TCS": {0xF9, OPERAND_NONE, 0, ENC_PLAIN},
	"STC": {0xFA, OPERAND_NONE, 0, ENC_PLAIN},
	"DAA": {0xFB, OPERAND_NONE, 0, ENC_PLAIN},
	"KBP": {0xFC, OPERAND_NONE, 0, ENC_PLAIN},
	"DCL": {0xFD, OPERAND_NONE, 0, ENC_PLAIN},

	// Register pair, one byte
	"SRC": {0x21, OPERAND_REGISTER_PAIR, 0, ENC_PAIR},
	"JIN": {0x31, OPERAND_REGISTER_PAIR, 0, ENC_PAIR},
	"FIN": {0x30, OPERAND_REGISTER_PAIR, 4, ENC_PAIR},

	// Register, one byte
	"INC": {0x60, OPERAND_REGISTER, 4, ENC_REG},
	"ADD": {0x80, OPERAND_REGISTER, 4, ENC_REG},
	"SUB": {0x90, OPERAND_REGISTER, 4, ENC_REG},
	"LD":  {0xA0, OPERAND_REGISTER, 4, ENC_REG},
	"XCH": {0xB0, OPERAND_REGISTER, 4, ENC_REG},

	// Immediate, one byte
	"BBL": {0xC0, OPERAND_IMMEDIATE, 4, ENC_IMM},
	"LDM": {0xD0, OPERAND_IMMEDIATE, 4, ENC_IMM},

	// Two byte forms
	"FIM": {0x20, OPERAND_REGISTER_PAIR, 4, ENC_PAIR_IMM},
	"JCN": {0x10, OPERAND_CONDITION, 4, ENC_COND_ADDR},
	"JUN": {0x40, OPERAND_ADDRESS, 12, ENC_ADDR12},
	"JMS": {0x50, OPERAND_ADDRESS, 12, ENC_ADDR12},
	"ISZ": {0x70, OPERAND_REGISTER, 8, ENC_REG_ADDR},
}

// InstructionSpec looks up the table entry for a mnemonic.
func InstructionSpec(mnemonic string) (spec Spec, ok bool) {
	spec, ok = instructionSet[Normalize(mnemonic)]
	return
}
