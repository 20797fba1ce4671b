package cpu

import (
	"iter"
)

// Link is a reference from assembled bytes to a label, resolved after the
// whole source has been read.
type Link struct {
	Label  string // Label name.
	Offset int    // Offset into Codes of the patched value.
	Size   int    // 1 for a byte (low half of the address), 2 for a word.
}

// Opcode is one assembled source line.
type Opcode struct {
	LineNo  int      // Source line number.
	Address int      // Address of the first byte.
	Words   []string // Source words, after equate and macro expansion.
	Codes   []byte   // Assembled bytes.
	Links   []Link   // Label references in Codes.
}

// Program is an assembled 8080 program.
type Program struct {
	Opcodes []Opcode
}

// Debug maps a memory address back to its source.
type Debug struct {
	*Opcode
	Index int // Byte index of the address within the opcode.
}

// Debug finds the opcode that assembled the byte at an address.
// The returned Debug has a nil Opcode if no opcode covers the address.
func (prog *Program) Debug(address uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		start := uint16(op.Address)
		if address >= start && int(address) < op.Address+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(address - start),
			}
			break
		}
	}

	return
}

// Codes iterates over each assembled (address, byte).
func (prog *Program) Codes() iter.Seq2[uint16, byte] {
	return func(yield func(address uint16, code byte) bool) {
		for _, op := range prog.Opcodes {
			address := uint16(op.Address)
			for n, code := range op.Codes {
				if !yield(address+uint16(n), code) {
					return
				}
			}
		}
	}
}

// Binary returns the program as a contiguous image starting at its lowest
// address. Gaps between opcodes are zero filled.
func (prog *Program) Binary() (origin uint16, data []byte) {
	low, high := MEMORY_SIZE, 0
	for _, op := range prog.Opcodes {
		if len(op.Codes) == 0 {
			continue
		}
		low = min(low, op.Address)
		high = max(high, op.Address+len(op.Codes))
	}

	if high <= low {
		return
	}

	origin = uint16(low)
	data = make([]byte, high-low)
	for address, code := range prog.Codes() {
		data[int(address)-low] = code
	}

	return
}

// Load copies the program into memory.
func (prog *Program) Load(memory []byte) (err error) {
	for address, code := range prog.Codes() {
		if int(address) >= len(memory) {
			err = ErrProgramRange
			return
		}
		memory[address] = code
	}

	return
}
