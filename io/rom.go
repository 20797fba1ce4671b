package io

import (
	"io"
)

// ROM_SIZE is the largest image that fits the address space.
const ROM_SIZE = 1 << 16

// Rom is a memory image, loaded at an origin address.
type Rom struct {
	Origin uint16
	Data   []byte
}

// ReadRom reads a memory image from a reader.
func ReadRom(r io.Reader, origin uint16) (rom *Rom, err error) {
	data, err := io.ReadAll(io.LimitReader(r, ROM_SIZE+1))
	if err != nil {
		return
	}

	if int(origin)+len(data) > ROM_SIZE {
		err = ErrRomSize
		return
	}

	rom = &Rom{
		Origin: origin,
		Data:   data,
	}

	return
}

// Load copies the image into memory.
func (rc *Rom) Load(memory []byte) (err error) {
	if int(rc.Origin)+len(rc.Data) > len(memory) {
		err = ErrRomSize
		return
	}

	copy(memory[rc.Origin:], rc.Data)

	return
}
