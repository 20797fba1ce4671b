package io

import (
	"iter"
	"maps"

	"github.com/ezrec/i8080/internal"
)

// window is a range of ports mapped to a device.
type window struct {
	base   int
	count  int
	device Device
}

// Bus maps windows of ports to devices.
// Reads of unmapped ports return 0, and writes to them are discarded.
type Bus struct {
	windows []window
}

var _ Device = (*Bus)(nil)

// Map assigns count ports starting at base to a device.
// The device is called with the absolute port number.
func (bus *Bus) Map(base byte, count int, device Device) (err error) {
	if count < 1 || int(base)+count > 256 {
		err = ErrPortRange
		return
	}

	for _, w := range bus.windows {
		if int(base) < w.base+w.count && w.base < int(base)+count {
			err = ErrPortConflict
			return
		}
	}

	bus.windows = append(bus.windows, window{base: int(base), count: count, device: device})

	return
}

// Device returns the device mapped at a port, or nil.
func (bus *Bus) Device(port byte) Device {
	for _, w := range bus.windows {
		if int(port) >= w.base && int(port) < w.base+w.count {
			return w.device
		}
	}

	return nil
}

// Defines returns the concatenated defines of all mapped devices.
func (bus *Bus) Defines() iter.Seq2[string, string] {
	seqs := []iter.Seq2[string, string]{maps.All(map[string]string{})}
	for _, w := range bus.windows {
		if definer, ok := w.device.(Definer); ok {
			seqs = append(seqs, definer.Defines())
		}
	}

	return internal.IterSeq2Concat(seqs...)
}

// ReadPort reads from the device mapped at the port.
func (bus *Bus) ReadPort(port byte) (value byte) {
	device := bus.Device(port)
	if device != nil {
		value = device.ReadPort(port)
	}
	return
}

// WritePort writes to the device mapped at the port.
func (bus *Bus) WritePort(port byte, value byte) {
	device := bus.Device(port)
	if device != nil {
		device.WritePort(port, value)
	}
}
