package gate

import "github.com/hack-sim/hack/fabric"

// Nand is the sole primitive gate. For each bit i in [0,N): out[i] =
// NAND(a[i], b[i]). No other gate may bypass Nand — every combinational
// function in the gates/arith/seq packages is defined as a composition
// of Nand gates (widening a 1-bit selector across a wide bus is done by
// aliasing via fabric.Bus.Widen, never by fan-out gates).
type Nand struct {
	a, b, out fabric.Bus
}

// NewNand wires a Nand gate over input buses a and b, which must be the
// same width. The output bus is freshly fabricated at construction.
func NewNand(f *fabric.Fabric, a, b fabric.Bus) *Nand {
	if a.Width() != b.Width() {
		panic(fabric.WidthMismatchError{Dst: a.Width(), Src: b.Width()})
	}
	return &Nand{a: a, b: b, out: fabric.All0(f, a.Width())}
}

// Out returns the gate's output bus.
func (n *Nand) Out() fabric.Bus {
	return n.out
}

// Recompute implements gate.Gate.
func (n *Nand) Recompute() {
	for i := 0; i < n.a.Width(); i++ {
		n.out.Set(i, fabric.Nand(n.a.Get(i), n.b.Get(i)))
	}
}

// ClockUp implements gate.Gate. Nand is purely combinational.
func (n *Nand) ClockUp() {}

// ClockDown implements gate.Gate. Nand is purely combinational.
func (n *Nand) ClockDown() {}
