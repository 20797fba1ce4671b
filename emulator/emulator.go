// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
	"github.com/ezrec/i8080/io"
)

const (
	TAPE_PORT     = 0x10 // Base port of the tape.
	TEMP_PORT     = 0x20 // Base port of the temporary buffer.
	ALERT_PORT    = 0x30 // Port of the interrupt request queue.
	LATCH_PORT    = 0x80 // First port of the general purpose latches.
	TEMP_CAPACITY = 4096 // Temporary buffer size, in bytes.
)

var _emulator_defines = map[string]string{
	"LATCH_PORT":    fmt.Sprintf("0x%02x", LATCH_PORT),
	"TEMP_CAPACITY": fmt.Sprintf("0x%x", TEMP_CAPACITY),
}

// Emulator state. CPU + memory image + port devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Rom      io.Rom       // Memory image, loaded on reset.

	Bus       io.Bus       // Port bus, routing IN and OUT to the devices.
	Tape      io.Tape      // Tape device.
	Temporary io.Temporary // Temporary buffer device.
	Alert     io.Alert     // Interrupt request queue.
	Latch     io.Ports     // General purpose port latches.

	Unimplemented int // Unimplemented opcodes executed since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Tape.Port = TAPE_PORT
	emu.Temporary.Port = TEMP_PORT
	emu.Temporary.Capacity = TEMP_CAPACITY
	emu.Alert.Port = ALERT_PORT

	for _, mapping := range []struct {
		base   byte
		count  int
		device io.Device
	}{
		{TAPE_PORT, 2, &emu.Tape},
		{TEMP_PORT, 2, &emu.Temporary},
		{ALERT_PORT, 1, &emu.Alert},
		{LATCH_PORT, 0x100 - LATCH_PORT, &emu.Latch},
	} {
		err := emu.Bus.Map(mapping.base, mapping.count, mapping.device)
		if err != nil {
			panic(err)
		}
	}

	emu.Cpu.Device = &emu.Bus

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Bus.Defines(),
	)
}

// Close the emulator, closing any tape streams that can be closed.
func (emu *Emulator) Close() (err error) {
	var errs []error
	if closer, ok := emu.Tape.Input.(goio.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if closer, ok := emu.Tape.Output.(goio.Closer); ok {
		errs = append(errs, closer.Close())
	}

	return errors.Join(errs...)
}

// Reset the emulator state, and load the memory image.
// If the Program has any code, it replaces the Rom image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	emu.Cpu.Reset()
	emu.Tape.Rewind()
	emu.Temporary.Rewind()
	emu.Alert.Reset()
	emu.Latch.Reset()
	emu.Unimplemented = 0

	if emu.Program != nil {
		origin, data := emu.Program.Binary()
		if len(data) > 0 {
			emu.Rom = io.Rom{Origin: origin, Data: data}
		}
	}

	err = emu.Rom.Load(emu.Cpu.Memory[:])
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.PC)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Interrupt delivers an RST vector to the CPU.
// Returns false if interrupts are disabled.
func (emu *Emulator) Interrupt(vector int) bool {
	if !emu.Cpu.Inte {
		return false
	}

	if emu.Verbose {
		log.Printf("emulator: interrupt RST %v", vector&0x7)
	}

	emu.Cpu.Push(emu.Cpu.PC)
	emu.Cpu.PC = uint16(vector&0x7) * 8
	emu.Cpu.Inte = false
	emu.Cpu.Resume()

	return true
}

// waiting is true when the CPU is halted, and no interrupt can wake it.
func (emu *Emulator) waiting() bool {
	return emu.Cpu.Halted() && !(emu.Cpu.Inte && emu.Alert.Pending())
}

// Tick performs a single tick of the emulator.
// A pending alert is delivered first, if interrupts are enabled.
// Returns done once the CPU is halted with nothing left to wake it.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.waiting() {
		done = true
		return
	}

	if emu.Cpu.Inte {
		vector, ok := emu.Alert.Next()
		if ok {
			emu.Interrupt(vector)
		}
	}

	address := emu.Cpu.PC
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrOpcodeUnimplemented) {
		log.Printf("emulator: line %v: %v", lineno, err)
		emu.Unimplemented++
		err = nil
	}
	if err != nil {
		return
	}

	done = emu.waiting()

	return
}

// Run ticks the emulator until done, or until limit instructions have
// been executed.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	start := emu.Cpu.Ticks
	defer func() {
		steps = emu.Cpu.Ticks - start
	}()

	for emu.Cpu.Ticks-start < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	if !emu.waiting() {
		err = ErrStepLimit
	}

	return
}
