package io

import (
	"fmt"
	"iter"
	"maps"
)

// Temporary port offsets.
const (
	TEMP_DATA  = 0 // Data port offset.
	TEMP_COUNT = 1 // Count port offset.
)

// Temporary implements a circular buffer for temporary byte storage.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
// Writes to the data port push a byte, and are dropped when full. Reads of
// the data port pop a byte, or return 0 when empty. Reads of the count port
// return the number of bytes queued.
type Temporary struct {
	Port     byte // Base port.
	Capacity int  // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Device = (*Temporary)(nil)

// Defines returns an iter of defines for the device.
func (temp *Temporary) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TEMP_DATA":  fmt.Sprintf("0x%02x", temp.Port+TEMP_DATA),
		"TEMP_COUNT": fmt.Sprintf("0x%02x", temp.Port+TEMP_COUNT),
	})
}

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]byte, temp.Capacity)
}

// Push writes a byte to the buffer at the current write position.
// Returns false if the buffer has reached capacity.
func (temp *Temporary) Push(value byte) (ok bool) {
	if temp.Size >= temp.Capacity {
		return
	}

	if len(temp.Data) != temp.Capacity {
		temp.Rewind()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return true
}

// Pop reads a byte from the buffer.
// The buffer wraps around at the capacity boundary.
func (temp *Temporary) Pop() (value byte, ok bool) {
	if temp.Size == 0 {
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++
	if temp.ReadIndex == temp.Capacity {
		temp.ReadIndex = 0
	}
	temp.Size--

	return value, true
}

// ReadPort pops from the data port, or reads the count port.
func (temp *Temporary) ReadPort(port byte) (value byte) {
	switch port - temp.Port {
	case TEMP_DATA:
		value, _ = temp.Pop()
	case TEMP_COUNT:
		value = byte(min(temp.Size, 0xff))
	}
	return
}

// WritePort pushes to the data port.
func (temp *Temporary) WritePort(port byte, value byte) {
	if port-temp.Port == TEMP_DATA {
		temp.Push(value)
	}
}
