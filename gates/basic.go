// Package gates implements the standard combinational gate library
// (NOT, AND, OR, XOR, MUX, DMUX and their wide/fan variants) as
// compositions of gate.Nand. None of these bypass Nand.
package gates

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gate"
)

// Not wires NOT(a) = NAND(a,a) over an N-wide bus.
type Not struct {
	nand *gate.Nand
}

func NewNot(f *fabric.Fabric, a fabric.Bus) *Not {
	return &Not{nand: gate.NewNand(f, a, a)}
}

func (g *Not) Out() fabric.Bus { return g.nand.Out() }
func (g *Not) Recompute()      { g.nand.Recompute() }
func (g *Not) ClockUp()        {}
func (g *Not) ClockDown()      {}

// And wires AND(a,b) = NOT(NAND(a,b)).
type And struct {
	nand *gate.Nand
	not  *Not
}

func NewAnd(f *fabric.Fabric, a, b fabric.Bus) *And {
	n := gate.NewNand(f, a, b)
	return &And{nand: n, not: NewNot(f, n.Out())}
}

func (g *And) Out() fabric.Bus { return g.not.Out() }
func (g *And) Recompute() {
	g.nand.Recompute()
	g.not.Recompute()
}
func (g *And) ClockUp()   {}
func (g *And) ClockDown() {}

// Or wires OR(a,b) = NAND(NOT(a),NOT(b)).
type Or struct {
	notA, notB *Not
	nand       *gate.Nand
}

func NewOr(f *fabric.Fabric, a, b fabric.Bus) *Or {
	notA := NewNot(f, a)
	notB := NewNot(f, b)
	return &Or{notA: notA, notB: notB, nand: gate.NewNand(f, notA.Out(), notB.Out())}
}

func (g *Or) Out() fabric.Bus { return g.nand.Out() }
func (g *Or) Recompute() {
	g.notA.Recompute()
	g.notB.Recompute()
	g.nand.Recompute()
}
func (g *Or) ClockUp()   {}
func (g *Or) ClockDown() {}

// Xor wires the standard 4-NAND construction:
// nand1 = NAND(a,b); nand2 = NAND(a,nand1); nand3 = NAND(b,nand1);
// out = NAND(nand2,nand3).
type Xor struct {
	nand1, nand2, nand3, out *gate.Nand
}

func NewXor(f *fabric.Fabric, a, b fabric.Bus) *Xor {
	nand1 := gate.NewNand(f, a, b)
	nand2 := gate.NewNand(f, a, nand1.Out())
	nand3 := gate.NewNand(f, b, nand1.Out())
	out := gate.NewNand(f, nand2.Out(), nand3.Out())
	return &Xor{nand1: nand1, nand2: nand2, nand3: nand3, out: out}
}

func (g *Xor) Out() fabric.Bus { return g.out.Out() }
func (g *Xor) Recompute() {
	g.nand1.Recompute()
	g.nand2.Recompute()
	g.nand3.Recompute()
	g.out.Recompute()
}
func (g *Xor) ClockUp()   {}
func (g *Xor) ClockDown() {}

// Mux wires out = (NOT(sel) AND a) OR (sel AND b), with the 1-bit sel
// widened to the width of a/b before combining.
type Mux struct {
	notSel   *Not
	andA     *And
	andB     *And
	or       *Or
	selWidth fabric.Bus
}

func NewMux(f *fabric.Fabric, a, b, sel fabric.Bus) *Mux {
	wide := sel.Widen(a.Width())
	notSel := NewNot(f, wide)
	andA := NewAnd(f, a, notSel.Out())
	andB := NewAnd(f, b, wide)
	or := NewOr(f, andA.Out(), andB.Out())
	return &Mux{notSel: notSel, andA: andA, andB: andB, or: or, selWidth: wide}
}

func (g *Mux) Out() fabric.Bus { return g.or.Out() }
func (g *Mux) Recompute() {
	g.notSel.Recompute()
	g.andA.Recompute()
	g.andB.Recompute()
	g.or.Recompute()
}
func (g *Mux) ClockUp()   {}
func (g *Mux) ClockDown() {}

// Dmux wires (a, b) = (NOT(sel) AND in, sel AND in).
type Dmux struct {
	notSel *Not
	andA   *And
	andB   *And
}

func NewDmux(f *fabric.Fabric, in, sel fabric.Bus) *Dmux {
	wide := sel.Widen(in.Width())
	notSel := NewNot(f, wide)
	andA := NewAnd(f, in, notSel.Out())
	andB := NewAnd(f, in, wide)
	return &Dmux{notSel: notSel, andA: andA, andB: andB}
}

func (g *Dmux) A() fabric.Bus { return g.andA.Out() }
func (g *Dmux) B() fabric.Bus { return g.andB.Out() }
func (g *Dmux) Recompute() {
	g.notSel.Recompute()
	g.andA.Recompute()
	g.andB.Recompute()
}
func (g *Dmux) ClockUp()   {}
func (g *Dmux) ClockDown() {}
