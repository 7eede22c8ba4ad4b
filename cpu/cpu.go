package cpu

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/ezrec/turing/internal"
	"github.com/ezrec/turing/ram"
)

const (
	PROGRAM_LIMIT = 0x10 // Programs must be strictly shorter than this.
)

var _cpu_defines = func() map[string]string {
	defines := map[string]string{
		"PROGRAM_LIMIT": fmt.Sprintf("%#x", PROGRAM_LIMIT),
	}
	for _, in := range instructions {
		defines[in.Opcode.String()] = fmt.Sprintf("%#x", byte(in.Opcode))
	}
	return defines
}()

// Cpu is the simulation context for the processor.
type Cpu struct {
	_ internal.NoCopy

	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of Dump(), os.Stdout if nil.

	Ram *ram.Ram // Memory bank, owned by the caller.

	RegisterX byte // X accumulator.
	RegisterY byte // Y accumulator.

	Overflow  bool // Sticky; set when an ADD exceeded 0xff.
	Underflow bool // Sticky; set when a SUB went below zero.

	Fetched        byte // Last operand read from [StackPointer].
	StackPointer   byte // Operand address of LDX, LDY, STX, STY and JMP.
	ProgramCounter byte // Address of the next instruction.
	OpCode         byte // Last instruction fetched.

	Tmp int // Unclamped result of the last ADD or SUB.
}

// NewCpu creates a new CPU attached to a memory bank.
func NewCpu(r *ram.Ram) (cpu *Cpu) {
	cpu = &Cpu{
		Ram: r,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the registers and flags. Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.RegisterX = 0
	cpu.RegisterY = 0
	cpu.Overflow = false
	cpu.Underflow = false
	cpu.Fetched = 0
	cpu.StackPointer = 0
	cpu.ProgramCounter = 0
	cpu.OpCode = 0
	cpu.Tmp = 0
}

// Load writes a program into memory, byte n at address n.
// Nothing is written if the program is not shorter than PROGRAM_LIMIT.
func (cpu *Cpu) Load(program []byte) (err error) {
	if len(program) >= PROGRAM_LIMIT {
		err = ErrProgramSize(len(program))
		return
	}

	for addr, data := range program {
		cpu.Ram.Write(byte(addr), data)
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// Run loads a program, then dumps the loaded memory and the CPU state.
// No instructions are executed; use Tick() to step the program.
func (cpu *Cpu) Run(program []byte) (err error) {
	err = cpu.Load(program)
	if err != nil {
		return
	}

	cpu.Ram.Dump(0, byte(len(program)))
	cpu.Dump()

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() {
	pc := cpu.ProgramCounter

	cpu.OpCode = cpu.Ram.Read(pc)
	cpu.ProgramCounter++

	op := Opcode(cpu.OpCode)
	if cpu.Verbose {
		log.Printf("cpu: %02x: %v", pc, op.Mnemonic())
	}

	if !op.Valid() {
		return
	}

	if operation := instructions[op].Operation; operation != nil {
		operation(cpu)
	}
}

// Fetch reads the operand at the stack pointer.
func (cpu *Cpu) Fetch() {
	cpu.Fetched = cpu.Ram.Read(cpu.StackPointer)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	b2i := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	regs := []struct {
		label string
		value int
	}{
		{"Register X", int(cpu.RegisterX)},
		{"Register Y", int(cpu.RegisterY)},
		{"Overflow", b2i(cpu.Overflow)},
		{"Underflow", b2i(cpu.Underflow)},
		{"Fetched", int(cpu.Fetched)},
		{"Stack Pointer", int(cpu.StackPointer)},
		{"Program Counter", int(cpu.ProgramCounter)},
		{"Op Code", int(cpu.OpCode)},
		{"Tmp", cpu.Tmp},
	}

	var sb strings.Builder
	for _, reg := range regs {
		fmt.Fprintf(&sb, "%v: %d\n", reg.label, reg.value)
	}

	return sb.String()
}

// Dump prints the CPU state followed by an empty line.
func (cpu *Cpu) Dump() {
	out := cpu.Output
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%v\n", cpu.String())
}

func (cpu *Cpu) ldx() {
	cpu.Fetch()
	cpu.RegisterX = cpu.Fetched
}

func (cpu *Cpu) ldy() {
	cpu.Fetch()
	cpu.RegisterY = cpu.Fetched
}

func (cpu *Cpu) stx() {
	cpu.Ram.Write(cpu.StackPointer, cpu.RegisterX)
}

func (cpu *Cpu) sty() {
	cpu.Ram.Write(cpu.StackPointer, cpu.RegisterY)
}

// add leaves X and Y untouched; the sum is only visible in Tmp.
func (cpu *Cpu) add() {
	cpu.Tmp = int(cpu.RegisterX) + int(cpu.RegisterY)
	if cpu.Tmp > 0xff {
		cpu.Overflow = true
	}
}

// sub leaves X and Y untouched; the difference is only visible in Tmp.
func (cpu *Cpu) sub() {
	cpu.Tmp = int(cpu.RegisterX) - int(cpu.RegisterY)
	if cpu.Tmp < 0 {
		cpu.Underflow = true
	}
}

func (cpu *Cpu) jmp() {
	cpu.ProgramCounter = cpu.StackPointer
}
