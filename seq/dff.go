// Package seq implements the Hack sequential element library: the
// edge-triggered DFF, 1-bit and 16-bit registers built from it, the
// gate-tree RAM hierarchy (RAM8 through RAM16K), and the program
// counter.
package seq

import "github.com/hack-sim/hack/fabric"

// DFF is an edge-triggered D flip-flop. It owns an internal "state"
// cell and an "out" cell, and is the only element in the library that
// is not a pure function of its current inputs: ClockUp samples the
// input into state on the rising edge; ClockDown publishes state to
// out on the falling edge. Recompute is a no-op — DFF output is not a
// combinational function of its input.
//
// This two-phase contract is what makes feedback loops (a register's
// output feeding its own input mux) safe: the output does not change
// during the combinational settle in which the new input is computed.
type DFF struct {
	in    fabric.Bus
	state fabric.Bus
	out   fabric.Bus
}

// NewDFF wires a DFF over a 1-bit input bus.
func NewDFF(f *fabric.Fabric, in fabric.Bus) *DFF {
	return &DFF{
		in:    in,
		state: fabric.All0(f, 1),
		out:   fabric.All0(f, 1),
	}
}

// Out returns the DFF's published output bus.
func (d *DFF) Out() fabric.Bus { return d.out }

// Recompute implements gate.Gate; DFF output is not combinational.
func (d *DFF) Recompute() {}

// ClockUp samples the current input value into internal state.
func (d *DFF) ClockUp() {
	d.state.Set(0, d.in.Get(0))
}

// ClockDown publishes the sampled state to the output.
func (d *DFF) ClockDown() {
	d.out.Set(0, d.state.Get(0))
}
