package io

import (
	"fmt"
	"iter"
	"maps"
)

// Alert is a queue of pending interrupt requests.
// Each request names an RST vector, 0 through 7. Writes to the alert port
// raise a request, and reads return the number pending.
type Alert struct {
	Port     byte  // Alert port.
	Requests []int // Pending RST vectors, oldest first.
}

var _ Device = (*Alert)(nil)

// Defines returns an iter of defines for the device.
func (ac *Alert) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ALERT_PORT": fmt.Sprintf("0x%02x", ac.Port),
	})
}

// Reset drops all pending requests.
func (ac *Alert) Reset() {
	ac.Requests = nil
}

// Raise queues an interrupt request for an RST vector.
func (ac *Alert) Raise(vector int) {
	ac.Requests = append(ac.Requests, vector&0x7)
}

// Pending returns true if any requests are queued.
func (ac *Alert) Pending() bool {
	return len(ac.Requests) > 0
}

// Peek returns the oldest request, without removing it.
func (ac *Alert) Peek() (vector int, ok bool) {
	if len(ac.Requests) > 0 {
		ok = true
		vector = ac.Requests[0]
	}
	return
}

// Next removes and returns the oldest request.
func (ac *Alert) Next() (vector int, ok bool) {
	vector, ok = ac.Peek()
	if ok {
		ac.Requests = ac.Requests[1:]
	}

	return
}

// ReadPort returns the count of pending requests.
func (ac *Alert) ReadPort(port byte) byte {
	return byte(min(len(ac.Requests), 0xff))
}

// WritePort raises a request for the RST vector in the low 3 bits.
func (ac *Alert) WritePort(port byte, value byte) {
	ac.Raise(int(value))
}
