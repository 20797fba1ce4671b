package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Byte(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(byte(0x02), Flags{}.Byte())
	assert.Equal(byte(0xd7), Flags{Carry: true, Zero: true, Sign: true, Parity: true, AuxCarry: true}.Byte())
	assert.Equal(byte(0x03), Flags{Carry: true}.Byte())

	// Fixed bits are restored, whatever the input.
	for value := range 256 {
		flags := FlagsFromByte(byte(value))
		out := flags.Byte()
		assert.Equal(FLAG_ONE, out&FLAG_ONE)
		assert.Equal(byte(0), out&(FLAG_ZERO3|FLAG_ZERO5))
		assert.Equal((byte(value)|FLAG_ONE)&^(FLAG_ZERO3|FLAG_ZERO5), out)
	}
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("..-.-.-.", Flags{}.String())
	assert.Equal("SZ-A-P-C", Flags{Carry: true, Zero: true, Sign: true, Parity: true, AuxCarry: true}.String())
}

func TestState_Reset(t *testing.T) {
	assert := assert.New(t)

	state := &State{}
	state.Register[REG_A] = 0x12
	state.Flags.Carry = true
	state.PC = 0x100
	state.SP = 0x200
	state.Inte = true
	state.Run = RUN_STOPPED
	state.Memory[0x1234] = 0x56

	state.Reset()
	assert.Equal([8]byte{}, state.Register)
	assert.Equal(Flags{}, state.Flags)
	assert.Equal(uint16(0), state.PC)
	assert.Equal(uint16(0), state.SP)
	assert.False(state.Inte)
	assert.False(state.Halted())
	assert.Equal(byte(0), state.Memory[0x1234])
}

func TestState_Word(t *testing.T) {
	assert := assert.New(t)

	state := &State{}
	state.WriteWord(0x1000, 0xbeef)
	assert.Equal(byte(0xef), state.Memory[0x1000])
	assert.Equal(byte(0xbe), state.Memory[0x1001])
	assert.Equal(uint16(0xbeef), state.ReadWord(0x1000))

	// High byte wraps around the top of memory.
	state.WriteWord(0xffff, 0x1234)
	assert.Equal(byte(0x34), state.Memory[0xffff])
	assert.Equal(byte(0x12), state.Memory[0x0000])
	assert.Equal(uint16(0x1234), state.ReadWord(0xffff))
}

func TestState_Pair(t *testing.T) {
	assert := assert.New(t)

	state := &State{}
	state.SetPair(PAIR_BC, 0x1234)
	state.SetPair(PAIR_DE, 0x5678)
	state.SetPair(PAIR_HL, 0x9abc)
	state.SetPair(PAIR_SP, 0xdef0)

	assert.Equal(byte(0x12), state.Register[REG_B])
	assert.Equal(byte(0x34), state.Register[REG_C])
	assert.Equal(byte(0x56), state.Register[REG_D])
	assert.Equal(byte(0x78), state.Register[REG_E])
	assert.Equal(byte(0x9a), state.Register[REG_H])
	assert.Equal(byte(0xbc), state.Register[REG_L])
	assert.Equal(uint16(0xdef0), state.SP)

	assert.Equal(uint16(0x1234), state.PairAddress(PAIR_BC))
	assert.Equal(uint16(0x5678), state.PairAddress(PAIR_DE))
	assert.Equal(uint16(0x9abc), state.PairAddress(PAIR_HL))
	assert.Equal(uint16(0xdef0), state.PairAddress(PAIR_SP))

	// PSW writes restore the fixed flag bits.
	state.SetPair(PAIR_PSW, 0x42ff)
	assert.Equal(byte(0x42), state.A())
	assert.Equal(uint16(0x42d7), state.PairAddress(PAIR_PSW))

	assert.PanicsWithValue(ErrPairInvalid, func() { state.PairAddress(Pair(5)) })
	assert.PanicsWithValue(ErrPairInvalid, func() { state.SetPair(Pair(-1), 0) })
}

func TestState_Operand(t *testing.T) {
	assert := assert.New(t)

	state := &State{}
	state.SetPair(PAIR_HL, 0x2000)
	state.Memory[0x2000] = 0x99

	assert.Equal(byte(0x99), state.ReadOperand(int(REG_M)))
	state.WriteOperand(int(REG_M), 0x11)
	assert.Equal(byte(0x11), state.Memory[0x2000])

	state.WriteOperand(int(REG_E), 0x22)
	assert.Equal(byte(0x22), state.Register[REG_E])
	assert.Equal(byte(0x22), state.ReadOperand(int(REG_E)))

	assert.PanicsWithValue(ErrRegisterInvalid, func() { state.ReadOperand(8) })
	assert.PanicsWithValue(ErrRegisterInvalid, func() { state.WriteOperand(-1, 0) })
}

func TestRegister_Invalid(t *testing.T) {
	assert := assert.New(t)

	state := &State{}

	assert.PanicsWithValue(ErrRegisterInvalid, func() { REG_M.Read(state) })
	assert.PanicsWithValue(ErrRegisterInvalid, func() { Register(8).Write(state, 0) })
	assert.NotPanics(func() { REG_A.Write(state, 1) })
}

func TestDecodeOperand(t *testing.T) {
	assert := assert.New(t)

	for code := range byte(8) {
		op := DecodeOperand(code)
		if code == 6 {
			assert.Equal(MemoryHL{}, op)
		} else {
			assert.Equal(Register(code), op)
		}
		// Upper bits are ignored.
		assert.Equal(op, DecodeOperand(code|0xf8))
	}

	assert.Equal("M", MemoryHL{}.String())
	assert.Equal("A", DecodeOperand(7).String())
}

func TestCondition_Holds(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cond  Condition
		flags Flags
		holds bool
	}){
		{COND_NZ, Flags{}, true},
		{COND_NZ, Flags{Zero: true}, false},
		{COND_Z, Flags{Zero: true}, true},
		{COND_NC, Flags{Carry: true}, false},
		{COND_C, Flags{Carry: true}, true},
		{COND_PO, Flags{Parity: true}, false},
		{COND_PE, Flags{Parity: true}, true},
		{COND_P, Flags{Sign: true}, false},
		{COND_M, Flags{Sign: true}, true},
		// Each condition tests exactly one flag.
		{COND_NZ, Flags{Carry: true, Sign: true, Parity: true, AuxCarry: true}, true},
		{COND_C, Flags{Zero: true, Sign: true, Parity: true, AuxCarry: true}, false},
	}

	for _, entry := range table {
		assert.Equal(entry.holds, entry.cond.Holds(entry.flags), entry.cond.String())
	}

	assert.PanicsWithValue(ErrConditionInvalid, func() { Condition(8).Holds(Flags{}) })
}
