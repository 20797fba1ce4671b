package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Tape port offsets, and status bits.
const (
	TAPE_DATA   = 0 // Data port offset.
	TAPE_STATUS = 1 // Status port offset.

	TAPE_STATUS_READY = byte(1 << 0) // An input byte is available.
	TAPE_STATUS_EOF   = byte(1 << 1) // The input is exhausted.
)

// Tape provides sequential I/O operations for reading and writing byte streams.
// It wraps an io.Reader for input and io.Writer for output.
// Reads of the data port return the next input byte, or 0 at end of input.
// Writes to the data port are written to the output.
type Tape struct {
	Port   byte // Base port.
	Input  io.Reader
	Output io.Writer

	hasInput  bool
	lastInput byte
	eof       bool
}

var _ Device = (*Tape)(nil)

// Defines returns an iter of defines for the device.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TAPE_DATA":         fmt.Sprintf("0x%02x", tc.Port+TAPE_DATA),
		"TAPE_STATUS":       fmt.Sprintf("0x%02x", tc.Port+TAPE_STATUS),
		"TAPE_STATUS_READY": fmt.Sprintf("0x%02x", TAPE_STATUS_READY),
		"TAPE_STATUS_EOF":   fmt.Sprintf("0x%02x", TAPE_STATUS_EOF),
	})
}

// Rewind forgets any buffered input. The streams themselves cannot be
// rewound.
func (tc *Tape) Rewind() {
	tc.hasInput = false
	tc.eof = false
}

// fill reads ahead one input byte, if none is buffered.
func (tc *Tape) fill() {
	if tc.hasInput || tc.eof {
		return
	}

	if tc.Input == nil {
		tc.eof = true
		return
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	if n == 1 {
		tc.lastInput = one[0]
		tc.hasInput = true
	} else if err != nil {
		tc.eof = true
	}
}

// ReadPort reads the data or status port.
func (tc *Tape) ReadPort(port byte) (value byte) {
	tc.fill()

	switch port - tc.Port {
	case TAPE_DATA:
		if tc.hasInput {
			value = tc.lastInput
			tc.hasInput = false
		}
	case TAPE_STATUS:
		if tc.hasInput {
			value |= TAPE_STATUS_READY
		}
		if tc.eof {
			value |= TAPE_STATUS_EOF
		}
	}

	return
}

// WritePort writes a byte to the output stream.
func (tc *Tape) WritePort(port byte, value byte) {
	if port-tc.Port != TAPE_DATA || tc.Output == nil {
		return
	}

	tc.Output.Write([]byte{value})
}
