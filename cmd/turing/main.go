// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/turing/cpu"
	"github.com/ezrec/turing/emulator"
	"github.com/ezrec/turing/translate"
)

// defaultProgram loads X and Y, then adds them.
var defaultProgram = []string{
	"ldx 1",
	"ldy 2",
	"add",
}

func main() {
	var compile string
	var ticks int
	var lang string
	var verbose bool

	flag.StringVar(&compile, "c", "", "assembly file to load")
	flag.IntVar(&ticks, "n", 0, "Ticks to execute after loading, -1 to run to completion")
	flag.StringVar(&lang, "lang", "", "Message language, defaults to the host locale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.SetOutput(os.Stdout)

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	source := "default"
	var input io.Reader = strings.NewReader(strings.Join(defaultProgram, "\n"))

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		source = compile

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		input = inf
	}

	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	emu.Program = prog

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	for n := 0; ticks < 0 || n < ticks; n++ {
		if emu.Tick() {
			break
		}
		emu.Cpu.Dump()
	}
}
