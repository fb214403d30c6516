package seq

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
)

// RAM8 is eight Register16s addressed by a 3-bit address: a
// DMux8Way routes load to exactly one child register, and a
// Mux8Way16 selects which child's output is visible. This is the base
// case of the gate-tree RAM hierarchy; RAM64, RAM512 and RAM4K each
// compose eight of the level below the same way, and RAM16KTree
// composes four RAM4Ks.
type RAM8 struct {
	dmux *gates.DMux8Way
	regs [8]*Register16
	mux  *gates.Mux8Way16
}

func NewRAM8(f *fabric.Fabric, in, load, addr fabric.Bus) *RAM8 {
	r := &RAM8{}
	r.dmux = gates.NewDMux8Way(f, load, addr)
	loads := []fabric.Bus{r.dmux.A(), r.dmux.B(), r.dmux.C(), r.dmux.D(), r.dmux.E(), r.dmux.G(), r.dmux.H(), r.dmux.J()}
	for i := range r.regs {
		r.regs[i] = NewRegister16(f, in, loads[i])
	}
	r.mux = gates.NewMux8Way16(f, r.regs[0].Out(), r.regs[1].Out(), r.regs[2].Out(), r.regs[3].Out(),
		r.regs[4].Out(), r.regs[5].Out(), r.regs[6].Out(), r.regs[7].Out(), addr)
	return r
}

func (r *RAM8) Out() fabric.Bus { return r.mux.Out() }

func (r *RAM8) Recompute() {
	r.dmux.Recompute()
	for _, reg := range r.regs {
		reg.Recompute()
	}
	r.mux.Recompute()
}
func (r *RAM8) ClockUp() {
	for _, reg := range r.regs {
		reg.ClockUp()
	}
}
func (r *RAM8) ClockDown() {
	for _, reg := range r.regs {
		reg.ClockDown()
	}
}

// ramBank is the shape the 8-way RAM tree levels after RAM8 share:
// eight children of the level below, selected the same way RAM8
// selects eight registers. The interface lets RAM64/512/4K be built
// generically from whatever level sits below them; RAM16KTree is
// wired separately (see below).
type ramBank interface {
	Out() fabric.Bus
	Recompute()
	ClockUp()
	ClockDown()
}

type ramTree struct {
	dmux     *gates.DMux8Way
	children [8]ramBank
	mux      *gates.Mux8Way16
}

func newRAMTree(f *fabric.Fabric, in, load, addr fabric.Bus, makeChild func(in, load, lowAddr fabric.Bus) ramBank) *ramTree {
	// addr is split: low-order bits (all but the top 3) pass unchanged
	// to every child; the top 3 bits select which child's load/output
	// is active.
	n := addr.Width()
	low := addr.MustReconnect(indexRange(0, n-3)...)
	high := addr.MustReconnect(n-3, n-2, n-1)

	r := &ramTree{}
	r.dmux = gates.NewDMux8Way(f, load, high)
	loads := []fabric.Bus{r.dmux.A(), r.dmux.B(), r.dmux.C(), r.dmux.D(), r.dmux.E(), r.dmux.G(), r.dmux.H(), r.dmux.J()}
	for i := range r.children {
		r.children[i] = makeChild(in, loads[i], low)
	}
	r.mux = gates.NewMux8Way16(f, r.children[0].Out(), r.children[1].Out(), r.children[2].Out(), r.children[3].Out(),
		r.children[4].Out(), r.children[5].Out(), r.children[6].Out(), r.children[7].Out(), high)
	return r
}

func indexRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func (r *ramTree) Out() fabric.Bus { return r.mux.Out() }
func (r *ramTree) Recompute() {
	r.dmux.Recompute()
	for _, c := range r.children {
		c.Recompute()
	}
	r.mux.Recompute()
}
func (r *ramTree) ClockUp() {
	for _, c := range r.children {
		c.ClockUp()
	}
}
func (r *ramTree) ClockDown() {
	for _, c := range r.children {
		c.ClockDown()
	}
}

// RAM64 is eight RAM8s addressed by a 6-bit address (3 low bits to
// every child, 3 high bits selecting the child).
type RAM64 struct{ *ramTree }

func NewRAM64(f *fabric.Fabric, in, load, addr fabric.Bus) *RAM64 {
	return &RAM64{newRAMTree(f, in, load, addr, func(in, load, lowAddr fabric.Bus) ramBank {
		return NewRAM8(f, in, load, lowAddr)
	})}
}

// RAM512 is eight RAM64s addressed by a 9-bit address.
type RAM512 struct{ *ramTree }

func NewRAM512(f *fabric.Fabric, in, load, addr fabric.Bus) *RAM512 {
	return &RAM512{newRAMTree(f, in, load, addr, func(in, load, lowAddr fabric.Bus) ramBank {
		return NewRAM64(f, in, load, lowAddr)
	})}
}

// RAM4K is eight RAM512s addressed by a 12-bit address.
type RAM4K struct{ *ramTree }

func NewRAM4K(f *fabric.Fabric, in, load, addr fabric.Bus) *RAM4K {
	return &RAM4K{newRAMTree(f, in, load, addr, func(in, load, lowAddr fabric.Bus) ramBank {
		return NewRAM512(f, in, load, lowAddr)
	})}
}

// RAM16KTree is the gate-tree form of the 16K RAM bank: functionally
// identical to mem.FastRAM16K but built entirely from NAND-derived
// gates. Kept as the pedagogical/reference path; mem.Memory can be
// constructed in "gate mode" to exercise this instead of the
// word-array fast path.
//
// Unlike every level below it, RAM16K is four RAM4Ks addressed by a
// 14-bit address (2-bit top selector + 12 low bits), not eight of the
// level below addressed by 3: 16K = 4*4K, and an 8-way split would
// need 15 address bits (3 top + 12 low) where only 14 exist. It is
// therefore built directly from DMux4Way/Mux4Way16 rather than
// through the generic 8-way ramTree the smaller levels share.
type RAM16KTree struct {
	dmux     *gates.DMux4Way
	children [4]*RAM4K
	mux      *gates.Mux4Way16
}

func NewRAM16KTree(f *fabric.Fabric, in, load, addr fabric.Bus) *RAM16KTree {
	n := addr.Width()
	low := addr.MustReconnect(indexRange(0, n-2)...)
	high := addr.MustReconnect(n-2, n-1)

	r := &RAM16KTree{}
	r.dmux = gates.NewDMux4Way(f, load, high)
	loads := []fabric.Bus{r.dmux.A(), r.dmux.B(), r.dmux.C(), r.dmux.D()}
	for i := range r.children {
		r.children[i] = NewRAM4K(f, in, loads[i], low)
	}
	r.mux = gates.NewMux4Way16(f, r.children[0].Out(), r.children[1].Out(), r.children[2].Out(), r.children[3].Out(), high)
	return r
}

func (r *RAM16KTree) Out() fabric.Bus { return r.mux.Out() }
func (r *RAM16KTree) Recompute() {
	r.dmux.Recompute()
	for _, c := range r.children {
		c.Recompute()
	}
	r.mux.Recompute()
}
func (r *RAM16KTree) ClockUp() {
	for _, c := range r.children {
		c.ClockUp()
	}
}
func (r *RAM16KTree) ClockDown() {
	for _, c := range r.children {
		c.ClockDown()
	}
}
