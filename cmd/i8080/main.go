// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/io"
	"github.com/ezrec/i8080/translate"
)

func main() {
	var compile string
	var binary string
	var origin uint
	var limit int
	var input string
	var output string
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&binary, "b", "", "Binary image to load")
	flag.UintVar(&origin, "org", 0, "Load and start address of the binary image")
	flag.IntVar(&limit, "n", 100_000_000, "Instruction limit")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message locale (default: host locale)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	if origin > 0xffff {
		log.Fatalf("%v: origin 0x%x out of range", os.Args[0], origin)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	defer emu.Close()

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Or load a binary image.
	if len(binary) != 0 {
		inf, err := os.Open(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		defer inf.Close()

		rom, err := io.ReadRom(inf, uint16(origin))
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		emu.Rom = *rom
		emu.Program = &cpu.Program{}
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		emu.Tape.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}
	emu.Cpu.PC = uint16(origin)

	steps, err := emu.Run(limit)
	if verbose {
		log.Printf("%v: %v instructions, %v unimplemented", os.Args[0], steps, emu.Unimplemented)
		log.Print(emu.Cpu.String())
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
