// Package io provides the port devices behind the 8080 IN and OUT
// instructions, and the ROM image loader.
// It includes a port latch (Ports), sequential byte I/O (Tape), a FIFO
// loopback (Temporary), an interrupt request queue (Alert), and a Bus
// that maps port windows to devices.
package io

import (
	"iter"
)

// Device is the target of the IN and OUT instructions.
type Device interface {
	// ReadPort returns the byte read from a port.
	ReadPort(port byte) byte
	// WritePort writes a byte to a port.
	WritePort(port byte, value byte)
}

// Definer is a device that exports its port assignments as equates.
type Definer interface {
	Defines() iter.Seq2[string, string]
}
