package gates

import (
	"github.com/hack-sim/hack/fabric"
)

// Not16 is NOT applied across a 16-wide bus. It's the same Not gate;
// width is carried by the input bus, so no separate wiring is needed.
func NewNot16(f *fabric.Fabric, a fabric.Bus) *Not { return NewNot(f, a) }

// And16 is AND applied across two 16-wide buses.
func NewAnd16(f *fabric.Fabric, a, b fabric.Bus) *And { return NewAnd(f, a, b) }

// Or16 is OR applied across two 16-wide buses.
func NewOr16(f *fabric.Fabric, a, b fabric.Bus) *Or { return NewOr(f, a, b) }

// Mux16 selects between two 16-wide buses on a 1-bit selector.
func NewMux16(f *fabric.Fabric, a, b, sel fabric.Bus) *Mux { return NewMux(f, a, b, sel) }

// Or8Way is a balanced OR tree reducing an 8-wide bus to a single bit:
// out = in[0] | in[1] | ... | in[7].
type Or8Way struct {
	or01, or23, or45, or67 *Or
	or0123, or4567         *Or
	or                     *Or
}

func NewOr8Way(f *fabric.Fabric, in fabric.Bus) *Or8Way {
	bit := func(i int) fabric.Bus { return in.MustReconnect(i) }
	or01 := NewOr(f, bit(0), bit(1))
	or23 := NewOr(f, bit(2), bit(3))
	or45 := NewOr(f, bit(4), bit(5))
	or67 := NewOr(f, bit(6), bit(7))
	or0123 := NewOr(f, or01.Out(), or23.Out())
	or4567 := NewOr(f, or45.Out(), or67.Out())
	or := NewOr(f, or0123.Out(), or4567.Out())
	return &Or8Way{or01: or01, or23: or23, or45: or45, or67: or67, or0123: or0123, or4567: or4567, or: or}
}

func (g *Or8Way) Out() fabric.Bus { return g.or.Out() }
func (g *Or8Way) Recompute() {
	g.or01.Recompute()
	g.or23.Recompute()
	g.or45.Recompute()
	g.or67.Recompute()
	g.or0123.Recompute()
	g.or4567.Recompute()
	g.or.Recompute()
}
func (g *Or8Way) ClockUp()   {}
func (g *Or8Way) ClockDown() {}

// Mux4Way16 selects among four 16-wide inputs using a 2-bit selector
// (sel[0] is the low bit), built as a tree of Mux16.
type Mux4Way16 struct {
	lo, hi, top *Mux
}

func NewMux4Way16(f *fabric.Fabric, a, b, c, d, sel fabric.Bus) *Mux4Way16 {
	s0 := sel.MustReconnect(0)
	s1 := sel.MustReconnect(1)
	lo := NewMux16(f, a, b, s0)
	hi := NewMux16(f, c, d, s0)
	top := NewMux16(f, lo.Out(), hi.Out(), s1)
	return &Mux4Way16{lo: lo, hi: hi, top: top}
}

func (g *Mux4Way16) Out() fabric.Bus { return g.top.Out() }
func (g *Mux4Way16) Recompute() {
	g.lo.Recompute()
	g.hi.Recompute()
	g.top.Recompute()
}
func (g *Mux4Way16) ClockUp()   {}
func (g *Mux4Way16) ClockDown() {}

// Mux8Way16 selects among eight 16-wide inputs using a 3-bit selector,
// built as two Mux4Way16 trees joined by a final Mux16.
type Mux8Way16 struct {
	lo, hi *Mux4Way16
	top    *Mux
}

func NewMux8Way16(f *fabric.Fabric, a, b, c, d, e, g2, h, i, sel fabric.Bus) *Mux8Way16 {
	low2 := sel.MustReconnect(0, 1)
	s2 := sel.MustReconnect(2)
	lo := NewMux4Way16(f, a, b, c, d, low2)
	hi := NewMux4Way16(f, e, g2, h, i, low2)
	top := NewMux16(f, lo.Out(), hi.Out(), s2)
	return &Mux8Way16{lo: lo, hi: hi, top: top}
}

func (g *Mux8Way16) Out() fabric.Bus { return g.top.Out() }
func (g *Mux8Way16) Recompute() {
	g.lo.Recompute()
	g.hi.Recompute()
	g.top.Recompute()
}
func (g *Mux8Way16) ClockUp()   {}
func (g *Mux8Way16) ClockDown() {}

// DMux4Way routes in to exactly one of four outputs based on a 2-bit
// selector, built as a tree of Dmux.
type DMux4Way struct {
	top    *Dmux
	lo, hi *Dmux
}

func NewDMux4Way(f *fabric.Fabric, in, sel fabric.Bus) *DMux4Way {
	s0 := sel.MustReconnect(0)
	s1 := sel.MustReconnect(1)
	top := NewDmux(f, in, s1)
	lo := NewDmux(f, top.A(), s0)
	hi := NewDmux(f, top.B(), s0)
	return &DMux4Way{top: top, lo: lo, hi: hi}
}

// A, B, C, D return the four routed outputs in selector order 00,01,10,11.
func (g *DMux4Way) A() fabric.Bus { return g.lo.A() }
func (g *DMux4Way) B() fabric.Bus { return g.lo.B() }
func (g *DMux4Way) C() fabric.Bus { return g.hi.A() }
func (g *DMux4Way) D() fabric.Bus { return g.hi.B() }

func (g *DMux4Way) Recompute() {
	g.top.Recompute()
	g.lo.Recompute()
	g.hi.Recompute()
}
func (g *DMux4Way) ClockUp()   {}
func (g *DMux4Way) ClockDown() {}

// DMux8Way routes in to exactly one of eight outputs based on a 3-bit
// selector, built from two DMux4Way trees fed by a top-level Dmux.
type DMux8Way struct {
	top    *Dmux
	lo, hi *DMux4Way
}

func NewDMux8Way(f *fabric.Fabric, in, sel fabric.Bus) *DMux8Way {
	low2 := sel.MustReconnect(0, 1)
	s2 := sel.MustReconnect(2)
	top := NewDmux(f, in, s2)
	lo := NewDMux4Way(f, top.A(), low2)
	hi := NewDMux4Way(f, top.B(), low2)
	return &DMux8Way{top: top, lo: lo, hi: hi}
}

// A, B, C, D, E, G, H, J return the eight routed outputs in selector
// order 000..111.
func (g *DMux8Way) A() fabric.Bus { return g.lo.A() }
func (g *DMux8Way) B() fabric.Bus { return g.lo.B() }
func (g *DMux8Way) C() fabric.Bus { return g.lo.C() }
func (g *DMux8Way) D() fabric.Bus { return g.lo.D() }
func (g *DMux8Way) E() fabric.Bus { return g.hi.A() }
func (g *DMux8Way) G() fabric.Bus { return g.hi.B() }
func (g *DMux8Way) H() fabric.Bus { return g.hi.C() }
func (g *DMux8Way) J() fabric.Bus { return g.hi.D() }

func (g *DMux8Way) Recompute() {
	g.top.Recompute()
	g.lo.Recompute()
	g.hi.Recompute()
}
func (g *DMux8Way) ClockUp()   {}
func (g *DMux8Way) ClockDown() {}
