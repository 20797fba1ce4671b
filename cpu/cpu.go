package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/i8080/io"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("0x%x", MEMORY_SIZE),
	"RST_0":       "0x00",
	"RST_1":       "0x08",
	"RST_2":       "0x10",
	"RST_3":       "0x18",
	"RST_4":       "0x20",
	"RST_5":       "0x28",
	"RST_6":       "0x30",
	"RST_7":       "0x38",
}

// Cpu is the simulation context for an 8080 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	State // Architectural state.

	Device io.Device // Target of IN and OUT; may be nil.

	Ticks int // Instructions executed.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, flags, PC, SP and memory.
// - Clears INTE and sets the run state to running.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.State.String()
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)
	return
}

// Fetch decodes the instruction at an address. Operand bytes wrap
// around the end of memory.
func (cpu *Cpu) Fetch(addr uint16) (inst Instruction) {
	inst.Opcode = cpu.Memory[addr]

	length := LengthOf(inst.Opcode)
	if length > 1 {
		inst.Operands = make([]byte, length-1)
		for n := range inst.Operands {
			inst.Operands[n] = cpu.Memory[addr+uint16(n+1)]
		}
	}

	return
}

// Step executes a single instruction.
// A stopped CPU does nothing. Otherwise the PC is advanced past the
// instruction before its handler runs, and a taken branch from the
// handler then overrides the PC.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted() {
		return
	}

	addr := cpu.PC
	inst := cpu.Fetch(addr)
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Opcode: inst.Opcode, Address: addr}, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04X: %v", addr, inst)
	}

	cpu.PC = addr + uint16(inst.Length())
	cpu.Ticks++

	branch, err := HandlerFor(inst.Opcode)(cpu, inst)
	if err != nil {
		return
	}

	if branch.Taken {
		cpu.PC = branch.Target
	}

	return
}
