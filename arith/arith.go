// Package arith implements the Hack arithmetic library — HalfAdder,
// FullAdder, the 16-bit ripple-carry Add16, Inc16, and the ALU — as
// compositions of the gates package.
package arith

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
)

// HalfAdder computes sum = XOR(a,b), carry = AND(a,b) over 1-bit a,b.
type HalfAdder struct {
	xor *gates.Xor
	and *gates.And
}

func NewHalfAdder(f *fabric.Fabric, a, b fabric.Bus) *HalfAdder {
	return &HalfAdder{xor: gates.NewXor(f, a, b), and: gates.NewAnd(f, a, b)}
}

func (g *HalfAdder) Sum() fabric.Bus   { return g.xor.Out() }
func (g *HalfAdder) Carry() fabric.Bus { return g.and.Out() }
func (g *HalfAdder) Recompute() {
	g.xor.Recompute()
	g.and.Recompute()
}
func (g *HalfAdder) ClockUp()   {}
func (g *HalfAdder) ClockDown() {}

// FullAdder computes sum and carry for three 1-bit inputs (a, b, and a
// carry-in c) from two HalfAdders and an OR of the two partial carries.
type FullAdder struct {
	h1, h2 *HalfAdder
	orC    *gates.Or
}

func NewFullAdder(f *fabric.Fabric, a, b, c fabric.Bus) *FullAdder {
	h1 := NewHalfAdder(f, a, b)
	h2 := NewHalfAdder(f, h1.Sum(), c)
	orC := gates.NewOr(f, h1.Carry(), h2.Carry())
	return &FullAdder{h1: h1, h2: h2, orC: orC}
}

func (g *FullAdder) Sum() fabric.Bus   { return g.h2.Sum() }
func (g *FullAdder) Carry() fabric.Bus { return g.orC.Out() }
func (g *FullAdder) Recompute() {
	g.h1.Recompute()
	g.h2.Recompute()
	g.orC.Recompute()
}
func (g *FullAdder) ClockUp()   {}
func (g *FullAdder) ClockDown() {}

// Add16 is a 16-bit ripple-carry adder: bit 0 uses a HalfAdder (no
// carry-in), bits 1-15 each use a FullAdder chained on the previous
// bit's carry-out. Little-endian: bit 0 is the LSB.
type Add16 struct {
	half  *HalfAdder
	fulls [15]*FullAdder
	out   fabric.Bus
}

func NewAdd16(f *fabric.Fabric, x, y fabric.Bus) *Add16 {
	a := &Add16{out: fabric.All0(f, 16)}
	a.half = NewHalfAdder(f, x.MustReconnect(0), y.MustReconnect(0))
	carry := a.half.Carry()
	for i := 1; i < 16; i++ {
		a.fulls[i-1] = NewFullAdder(f, x.MustReconnect(i), y.MustReconnect(i), carry)
		carry = a.fulls[i-1].Carry()
	}
	return a
}

// Out returns the 16-bit sum bus (the final carry-out is discarded, as
// per the spec's Add16 definition).
func (a *Add16) Out() fabric.Bus { return a.out }

func (a *Add16) Recompute() {
	a.half.Recompute()
	a.out.Set(0, a.half.Sum().Get(0))
	for i, fa := range a.fulls {
		fa.Recompute()
		a.out.Set(i+1, fa.Sum().Get(0))
	}
}
func (a *Add16) ClockUp()   {}
func (a *Add16) ClockDown() {}

// Inc16 computes x+1 as Add16(x, constant 1).
type Inc16 struct {
	add *Add16
}

func NewInc16(f *fabric.Fabric, x fabric.Bus) *Inc16 {
	one := fabric.FromUint16(f, 16, 1)
	return &Inc16{add: NewAdd16(f, x, one)}
}

func (g *Inc16) Out() fabric.Bus { return g.add.Out() }
func (g *Inc16) Recompute()      { g.add.Recompute() }
func (g *Inc16) ClockUp()        {}
func (g *Inc16) ClockDown()      {}
