package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Total(t *testing.T) {
	assert := assert.New(t)

	for opcode := range 256 {
		desc := Describe(byte(opcode))
		assert.Equal(byte(opcode), desc.Opcode)
		assert.Contains([]int{1, 2, 3}, LengthOf(byte(opcode)), "opcode 0x%02x", opcode)
		assert.NotNil(HandlerFor(byte(opcode)), "opcode 0x%02x", opcode)
		assert.NotEmpty(desc.Mnemonic)

		switch desc.Mode {
		case ADDR_NONE:
			assert.Equal(1, desc.Length, desc.Mnemonic)
		case ADDR_IMMEDIATE:
			assert.Contains([]int{2, 3}, desc.Length, desc.Mnemonic)
		case ADDR_ADDRESS:
			assert.Equal(3, desc.Length, desc.Mnemonic)
		}
	}
}

func TestTable_Undocumented(t *testing.T) {
	assert := assert.New(t)

	var reserved []byte
	for opcode, desc := range Descriptors() {
		if !desc.Implemented {
			reserved = append(reserved, opcode)
			assert.Equal("-", desc.Mnemonic)
			assert.Equal(1, desc.Length)
		}
	}

	assert.Equal([]byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd}, reserved)
}

func TestTable_Mnemonics(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		opcode   byte
		mnemonic string
		length   int
	}){
		{0x00, "NOP", 1},
		{0x01, "LXI B", 3},
		{0x31, "LXI SP", 3},
		{0x36, "MVI M", 2},
		{0x3e, "MVI A", 2},
		{0x76, "HLT", 1},
		{0x7e, "MOV A,M", 1},
		{0x41, "MOV B,C", 1},
		{0x86, "ADD M", 1},
		{0xbf, "CMP A", 1},
		{0xc2, "JNZ", 3},
		{0xc3, "JMP", 3},
		{0xcd, "CALL", 3},
		{0xc9, "RET", 1},
		{0xf5, "PUSH PSW", 1},
		{0xf1, "POP PSW", 1},
		{0xff, "RST 7", 1},
		{0xfe, "CPI", 2},
		{0xd3, "OUT", 2},
		{0xdb, "IN", 2},
		{0xeb, "XCHG", 1},
	}

	for _, entry := range table {
		desc := Describe(entry.opcode)
		assert.Equal(entry.mnemonic, desc.Mnemonic)
		assert.Equal(entry.length, desc.Length, entry.mnemonic)
	}

	assert.Equal("MOV", Describe(0x7e).Name())
}

func TestTable_MnemonicsUnique(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for _, desc := range Descriptors() {
		if desc.Implemented {
			names = append(names, desc.Mnemonic)
		}
	}

	slices.Sort(names)
	assert.Equal(len(names), len(slices.Compact(slices.Clone(names))))
	assert.Equal(244, len(names))
}

func TestTable_Define(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { define(0x00, 1, ADDR_NONE, "NOP", opNop) })
}
