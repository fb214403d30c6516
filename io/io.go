// Package io defines the basic interface for working with a Hack
// memory-mapped input port. It's intended that an external driver
// (a demo harness, a test) poke the current value on every cycle and
// that the memory-mapped peripheral (mem.Keyboard) simply surfaces
// whatever was last poked.
package io

// Port16 defines a 16-bit read-only input port, the shape of the
// Hack keyboard memory location: always readable, never writable by
// the running program.
type Port16 interface {
	// Input returns the value currently present on the port.
	Input() uint16
}

// StaticPort16 is the simplest Port16: a value set directly by the
// caller (a test, or a demo driver wiring a terminal/keyboard reader).
type StaticPort16 struct {
	Value uint16
}

// Input implements Port16.
func (p *StaticPort16) Input() uint16 {
	return p.Value
}
