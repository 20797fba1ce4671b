package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Load(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Origin: 0x100, Data: []byte{0x3e, 0x05, 0x76}}

	memory := make([]byte, ROM_SIZE)
	assert.NoError(rom.Load(memory))
	assert.Equal([]byte{0x3e, 0x05, 0x76}, memory[0x100:0x103])
	assert.Equal(byte(0), memory[0xff])

	small := make([]byte, 0x101)
	assert.ErrorIs(rom.Load(small), ErrRomSize)
}

func TestRom_Read(t *testing.T) {
	assert := assert.New(t)

	rom, err := ReadRom(strings.NewReader("\x3e\x05\x76"), 0x10)
	assert.NoError(err)
	assert.Equal(uint16(0x10), rom.Origin)
	assert.Equal([]byte{0x3e, 0x05, 0x76}, rom.Data)

	_, err = ReadRom(bytes.NewReader(make([]byte, 0x10)), 0xfff8)
	assert.ErrorIs(err, ErrRomSize)

	_, err = ReadRom(bytes.NewReader(make([]byte, ROM_SIZE+1)), 0)
	assert.ErrorIs(err, ErrRomSize)

	rom, err = ReadRom(bytes.NewReader(make([]byte, ROM_SIZE)), 0)
	assert.NoError(err)
	assert.Equal(ROM_SIZE, len(rom.Data))
}

type errorReader struct{}

func (errorReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestTape_Read(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Port: 0x10, Input: strings.NewReader("Hi")}

	assert.Equal(TAPE_STATUS_READY, tape.ReadPort(0x11))
	assert.Equal(byte('H'), tape.ReadPort(0x10))
	assert.Equal(byte('i'), tape.ReadPort(0x10))
	assert.Equal(TAPE_STATUS_EOF, tape.ReadPort(0x11))
	assert.Equal(byte(0), tape.ReadPort(0x10))

	tape = &Tape{Port: 0x10, Input: errorReader{}}
	assert.Equal(TAPE_STATUS_EOF, tape.ReadPort(0x11))

	tape = &Tape{}
	assert.Equal(TAPE_STATUS_EOF, tape.ReadPort(TAPE_STATUS))
	assert.Equal(byte(0), tape.ReadPort(TAPE_DATA))
}

func TestTape_Write(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &Tape{Port: 0x10, Output: &out}

	tape.WritePort(0x10, 'O')
	tape.WritePort(0x11, 'X')
	tape.WritePort(0x10, 'K')
	assert.Equal("OK", out.String())

	// No output: writes are discarded.
	tape = &Tape{}
	assert.NotPanics(func() { tape.WritePort(0, 'X') })
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("A")}
	assert.Equal(TAPE_STATUS_READY, tape.ReadPort(TAPE_STATUS))
	tape.Rewind()
	assert.Equal(TAPE_STATUS_EOF, tape.ReadPort(TAPE_STATUS))
}

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Port: 0x20, Capacity: 3}
	temp.Rewind()

	assert.Equal(byte(0), temp.ReadPort(0x21))
	assert.Equal(byte(0), temp.ReadPort(0x20))

	for _, value := range []byte{1, 2, 3, 4} {
		temp.WritePort(0x20, value)
	}
	assert.Equal(byte(3), temp.ReadPort(0x21))

	assert.Equal(byte(1), temp.ReadPort(0x20))
	temp.WritePort(0x20, 5)
	assert.Equal(byte(2), temp.ReadPort(0x20))
	assert.Equal(byte(3), temp.ReadPort(0x20))
	assert.Equal(byte(5), temp.ReadPort(0x20))
	assert.Equal(byte(0), temp.ReadPort(0x21))
	assert.Equal(byte(0), temp.ReadPort(0x20))

	// Writes to the count port are ignored.
	temp.WritePort(0x21, 9)
	assert.Equal(0, temp.Size)
}

func TestTemporary_Lazy(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	assert.True(temp.Push(0xaa))
	value, ok := temp.Pop()
	assert.True(ok)
	assert.Equal(byte(0xaa), value)
}
