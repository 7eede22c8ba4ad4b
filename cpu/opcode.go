package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an instruction byte.
type Opcode byte

//go:generate go tool stringer -type=Opcode
const (
	NOP = Opcode(0x0) // No operation.
	LDX = Opcode(0x1) // Load X from [SP].
	LDY = Opcode(0x2) // Load Y from [SP].
	STX = Opcode(0x3) // Store X to [SP].
	STY = Opcode(0x4) // Store Y to [SP].
	ADD = Opcode(0x5) // Tmp = X + Y.
	SUB = Opcode(0x6) // Tmp = X - Y.
	JMP = Opcode(0x7) // PC = SP.
)

// Instruction is an entry of the dispatch table.
type Instruction struct {
	Opcode    Opcode
	Operation func(cpu *Cpu) // nil for no operation.
}

// instructions is indexed by opcode.
var instructions = [...]Instruction{
	{NOP, nil},
	{LDX, (*Cpu).ldx},
	{LDY, (*Cpu).ldy},
	{STX, (*Cpu).stx},
	{STY, (*Cpu).sty},
	{ADD, (*Cpu).add},
	{SUB, (*Cpu).sub},
	{JMP, (*Cpu).jmp},
}

// Valid returns true if the opcode has a dispatch table entry.
func (op Opcode) Valid() bool {
	return int(op) < len(instructions)
}

// Mnemonic returns the lower-case assembler name of the opcode.
func (op Opcode) Mnemonic() string {
	if !op.Valid() {
		return fmt.Sprintf(".byte %#x", byte(op))
	}
	return strings.ToLower(op.String())
}

// opcodeMap maps assembler mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(instructions))
	for _, in := range instructions {
		mnemonics[in.Opcode.Mnemonic()] = in.Opcode
	}
	return mnemonics
}()
