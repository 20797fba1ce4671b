package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction: the opcode byte and its operand
// bytes, exactly as they appear in memory.
type Instruction struct {
	Opcode   byte
	Operands []byte
}

// MakeInstruction creates an instruction from its raw bytes.
func MakeInstruction(opcode byte, operands ...byte) Instruction {
	return Instruction{
		Opcode:   opcode,
		Operands: operands,
	}
}

// Length returns the total instruction length in bytes.
func (inst Instruction) Length() int {
	return 1 + len(inst.Operands)
}

// Immediate returns the first operand byte.
func (inst Instruction) Immediate() byte {
	if len(inst.Operands) < 1 {
		panic(ErrOperandMissing)
	}
	return inst.Operands[0]
}

// Word returns the two operand bytes as a little-endian 16-bit value.
func (inst Instruction) Word() uint16 {
	if len(inst.Operands) < 2 {
		panic(ErrOperandMissing)
	}
	return uint16(inst.Operands[0]) | uint16(inst.Operands[1])<<8
}

// Dst decodes the destination operand from bits 5-3.
func (inst Instruction) Dst() Operand {
	return DecodeOperand(inst.Opcode >> 3)
}

// Src decodes the source operand from bits 2-0.
func (inst Instruction) Src() Operand {
	return DecodeOperand(inst.Opcode)
}

// Pair decodes the register pair from bits 5-4. Pair 3 is SP, or PSW for
// PUSH and POP (see PushPair).
func (inst Instruction) Pair() Pair {
	return Pair((inst.Opcode >> 4) & 0x3)
}

// PushPair decodes the register pair from bits 5-4 for PUSH and POP,
// where pair 3 is PSW.
func (inst Instruction) PushPair() Pair {
	pair := inst.Pair()
	if pair == PAIR_SP {
		pair = PAIR_PSW
	}
	return pair
}

// Cond decodes the branch condition from bits 5-3.
func (inst Instruction) Cond() Condition {
	return Condition((inst.Opcode >> 3) & 0x7)
}

// Vector decodes the RST restart address from bits 5-3.
func (inst Instruction) Vector() uint16 {
	return uint16(inst.Opcode&0x38)
}

// String returns the instruction bytes and mnemonic.
func (inst Instruction) String() string {
	desc := Describe(inst.Opcode)

	hex := []string{fmt.Sprintf("%02X", inst.Opcode)}
	for _, operand := range inst.Operands {
		hex = append(hex, fmt.Sprintf("%02X", operand))
	}

	text := desc.Mnemonic
	switch desc.Mode {
	case ADDR_IMMEDIATE:
		if len(inst.Operands) == 1 {
			text += fmt.Sprintf(" #%02X", inst.Immediate())
		} else if len(inst.Operands) == 2 {
			text += fmt.Sprintf(" #%04X", inst.Word())
		}
	case ADDR_ADDRESS:
		if len(inst.Operands) == 2 {
			text += fmt.Sprintf(" $%04X", inst.Word())
		}
	}

	return fmt.Sprintf("%-8v %v", strings.Join(hex, " "), text)
}
