package io

import (
	"iter"
	"maps"
)

// Ports is a set of 256 input latches and 256 output latches.
// IN reads the input latch, OUT sets the output latch.
type Ports struct {
	In  [256]byte
	Out [256]byte
}

var _ Device = (*Ports)(nil)

// Defines returns an iter of defines for the device.
func (pc *Ports) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Reset clears all latches.
func (pc *Ports) Reset() {
	clear(pc.In[:])
	clear(pc.Out[:])
}

// ReadPort returns the input latch.
func (pc *Ports) ReadPort(port byte) byte {
	return pc.In[port]
}

// WritePort sets the output latch.
func (pc *Ports) WritePort(port byte, value byte) {
	pc.Out[port] = value
}
