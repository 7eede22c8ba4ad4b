// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/turing/cpu"
	"github.com/ezrec/turing/internal"
	"github.com/ezrec/turing/ram"
)

// Emulator state. CPU + RAM + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Ram      *ram.Ram     // Memory bank the CPU is attached to.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Ticks int // Instructions executed since the last reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	r := &ram.Ram{}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(r),
		Ram:     r,
		Program: &cpu.Program{},
	}

	return
}

// SetOutput directs the memory and CPU dumps to out.
func (emu *Emulator) SetOutput(out io.Writer) {
	emu.Ram.Output = out
	emu.Cpu.Output = out
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Ram.Defines(),
	)
}

// Reset clears the memory and CPU, then loads the program and dumps
// the machine state.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Ram.Reset()
	emu.Cpu.Reset()
	emu.Ticks = 0

	err = emu.Cpu.Run(emu.Program.Binary())
	if err != nil {
		err = &ErrProgram{LineNo: emu.Program.Debug(cpu.PROGRAM_LIMIT - 1).LineNo, Err: err}
		return
	}

	return
}

// LineNo returns the source line number of the next instruction, or
// zero if the program counter is outside the program.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(int(emu.Cpu.ProgramCounter))
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick executes a single instruction. It reports done, without
// executing anything, once the program counter has left the program.
func (emu *Emulator) Tick() (done bool) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if int(emu.Cpu.ProgramCounter) >= len(emu.Program.Binary()) {
		if emu.Verbose {
			log.Printf("emulator: done after %d ticks", emu.Ticks)
		}
		done = true
		return
	}

	if emu.Verbose {
		log.Printf("emulator: line %d", emu.LineNo())
	}

	emu.Cpu.Tick()
	emu.Ticks++

	return
}
