package arith

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
)

// ALU implements the Hack arithmetic-logic unit: given 16-bit x and y
// and six control bits (zx, nx, zy, ny, f, no), it applies, in order:
// conditional zero of x, conditional negation of x, the same pair for
// y, then AND (f=0) or Add (f=1) of the two results, then a
// conditional bitwise negation of the output. It also exposes the zr
// (zero) and ng (negative/sign-bit) status flags.
type ALU struct {
	zeroX, zeroY  *gates.Mux
	notX, notY    *gates.Not
	negX, negY    *gates.Mux
	andXY         *gates.And
	addXY         *Add16
	selFunc       *gates.Mux
	notOut        *gates.Not
	selNeg        *gates.Mux
	orLow, orHigh *gates.Or8Way
	orCombined    *gates.Or
	notCombined   *gates.Not

	out fabric.Bus
	zr  fabric.Bus
	ng  fabric.Bus
}

// NewALU wires an ALU over 16-bit x, y and six 1-bit control buses.
func NewALU(f *fabric.Fabric, x, y, zx, nx, zy, ny, fsel, no fabric.Bus) *ALU {
	a := &ALU{}

	zeroBus := fabric.All0(f, 16)

	a.zeroX = gates.NewMux16(f, x, zeroBus, zx)
	a.notX = gates.NewNot16(f, a.zeroX.Out())
	a.negX = gates.NewMux16(f, a.zeroX.Out(), a.notX.Out(), nx)

	a.zeroY = gates.NewMux16(f, y, zeroBus, zy)
	a.notY = gates.NewNot16(f, a.zeroY.Out())
	a.negY = gates.NewMux16(f, a.zeroY.Out(), a.notY.Out(), ny)

	a.andXY = gates.NewAnd16(f, a.negX.Out(), a.negY.Out())
	a.addXY = NewAdd16(f, a.negX.Out(), a.negY.Out())
	a.selFunc = gates.NewMux16(f, a.andXY.Out(), a.addXY.Out(), fsel)

	a.notOut = gates.NewNot16(f, a.selFunc.Out())
	a.selNeg = gates.NewMux16(f, a.selFunc.Out(), a.notOut.Out(), no)

	a.out = fabric.All0(f, 16)

	low8 := a.selNeg.Out().MustReconnect(0, 1, 2, 3, 4, 5, 6, 7)
	high8 := a.selNeg.Out().MustReconnect(8, 9, 10, 11, 12, 13, 14, 15)
	a.orLow = gates.NewOr8Way(f, low8)
	a.orHigh = gates.NewOr8Way(f, high8)
	a.orCombined = gates.NewOr(f, a.orLow.Out(), a.orHigh.Out())
	a.notCombined = gates.NewNot(f, a.orCombined.Out())

	a.zr = fabric.All0(f, 1)
	a.ng = a.selNeg.Out().MustReconnect(15)

	return a
}

// Out returns the 16-bit result bus.
func (a *ALU) Out() fabric.Bus { return a.out }

// Zr returns the zr status flag: I iff Out()==0.
func (a *ALU) Zr() fabric.Bus { return a.zr }

// Ng returns the ng status flag: I iff bit 15 of Out() is set.
func (a *ALU) Ng() fabric.Bus { return a.ng }

func (a *ALU) Recompute() {
	a.zeroX.Recompute()
	a.notX.Recompute()
	a.negX.Recompute()
	a.zeroY.Recompute()
	a.notY.Recompute()
	a.negY.Recompute()
	a.andXY.Recompute()
	a.addXY.Recompute()
	a.selFunc.Recompute()
	a.notOut.Recompute()
	a.selNeg.Recompute()
	a.out.Overwrite(a.selNeg.Out())

	a.orLow.Recompute()
	a.orHigh.Recompute()
	a.orCombined.Recompute()
	a.notCombined.Recompute()
	a.zr.Set(0, a.notCombined.Out().Get(0))
}
func (a *ALU) ClockUp()   {}
func (a *ALU) ClockDown() {}
