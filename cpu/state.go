package cpu

import (
	"fmt"
)

const (
	MEMORY_SIZE = 1 << 16 // Full 16-bit address space.
)

// RunState is the execution state of the processor.
type RunState int

//go:generate go tool stringer -linecomment -type=RunState
const (
	RUN_RUNNING = RunState(0) // running
	RUN_STOPPED = RunState(1) // stopped
)

// State is the complete architectural state of the processor.
type State struct {
	Register [8]byte // Indexed by Register; REG_M is never used.
	Flags    Flags   // Condition flags.
	PC       uint16  // Program counter.
	SP       uint16  // Stack pointer.
	Inte     bool    // Interrupt enable flip-flop.
	Run      RunState

	Memory [MEMORY_SIZE]byte
}

// Reset zeroes the registers, flags, PC, SP and memory, clears INTE and
// sets the run state to running.
func (state *State) Reset() {
	clear(state.Register[:])
	clear(state.Memory[:])
	state.Flags = Flags{}
	state.PC = 0
	state.SP = 0
	state.Inte = false
	state.Run = RUN_RUNNING
}

// Halted returns true if the processor has executed HLT.
func (state *State) Halted() bool {
	return state.Run == RUN_STOPPED
}

// Resume sets the run state back to running.
func (state *State) Resume() {
	state.Run = RUN_RUNNING
}

// A returns the accumulator.
func (state *State) A() byte {
	return state.Register[REG_A]
}

// SetA sets the accumulator.
func (state *State) SetA(value byte) {
	state.Register[REG_A] = value
}

// Read a byte of memory.
func (state *State) Read(addr uint16) byte {
	return state.Memory[addr]
}

// Write a byte of memory.
func (state *State) Write(addr uint16, value byte) {
	state.Memory[addr] = value
}

// ReadWord reads a little-endian 16-bit value. The high byte address wraps.
func (state *State) ReadWord(addr uint16) uint16 {
	return uint16(state.Memory[addr]) | uint16(state.Memory[addr+1])<<8
}

// WriteWord writes a little-endian 16-bit value. The high byte address wraps.
func (state *State) WriteWord(addr uint16, value uint16) {
	state.Memory[addr] = byte(value)
	state.Memory[addr+1] = byte(value >> 8)
}

// String returns the register file as text.
func (state *State) String() (text string) {
	for _, reg := range []Register{REG_A, REG_B, REG_C, REG_D, REG_E, REG_H, REG_L} {
		text += fmt.Sprintf("% 5s: %02X\n", reg.String(), state.Register[reg])
	}
	text += fmt.Sprintf("% 5s: %v\n", "flags", state.Flags)
	text += fmt.Sprintf("% 5s: %04X\n", "pc", state.PC)
	text += fmt.Sprintf("% 5s: %04X\n", "sp", state.SP)
	text += fmt.Sprintf("% 5s: %v\n", "inte", state.Inte)
	text += fmt.Sprintf("% 5s: %v\n", "run", state.Run)

	return
}
