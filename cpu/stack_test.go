package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &State{SP: 0x2000}
	s.Push(0x3f16)
	assert.Equal(uint16(0x1ffe), s.SP)
	assert.Equal(byte(0x16), s.Memory[0x1ffe])
	assert.Equal(byte(0x3f), s.Memory[0x1fff])
	assert.Equal(uint16(0x3f16), s.Peek())
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &State{SP: 0x2000}
	s.Push(0x1234)
	s.Push(0xabcd)

	assert.Equal(uint16(0xabcd), s.Pop())
	assert.Equal(uint16(0x1ffe), s.SP)
	assert.Equal(uint16(0x1234), s.Pop())
	assert.Equal(uint16(0x2000), s.SP)
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	s := &State{SP: 0x0000}
	s.Push(0x55aa)
	assert.Equal(uint16(0xfffe), s.SP)
	assert.Equal(byte(0xaa), s.Memory[0xfffe])
	assert.Equal(byte(0x55), s.Memory[0xffff])

	s.SP = 0xffff
	s.Memory[0xffff] = 0x01
	s.Memory[0x0000] = 0x02
	assert.Equal(uint16(0x0201), s.Pop())
	assert.Equal(uint16(0x0001), s.SP)
}
