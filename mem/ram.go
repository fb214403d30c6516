package mem

import "github.com/hack-sim/hack/fabric"

// FastRAM16K is the word-array form of the 16K-word RAM bank. It
// implements the same two-phase contract as the gate-tree seq.RAM16KTree
// but stores a dense []uint16 instead of one cell per bit, which is
// what keeps a full 16K address space simulating at interactive speed.
//
// ClockUp latches the numeric value of in into a pending "next" slot
// when load=I (not yet visible); ClockDown commits that value into the
// array; Recompute republishes array[addr] to out.
type FastRAM16K struct {
	words [16384]uint16
	in    fabric.Bus
	load  fabric.Bus
	addr  fabric.Bus
	out   fabric.Bus

	pendingAddr uint16
	pendingVal  uint16
	pendingSet  bool
}

// NewFastRAM16K wires a FastRAM16K over a 16-bit in bus, 1-bit load,
// and 14-bit addr bus.
func NewFastRAM16K(f *fabric.Fabric, in, load, addr fabric.Bus) *FastRAM16K {
	return &FastRAM16K{in: in, load: load, addr: addr, out: fabric.All0(f, 16)}
}

// Out returns the 16-bit output bus.
func (r *FastRAM16K) Out() fabric.Bus { return r.out }

func (r *FastRAM16K) Recompute() {
	r.out.SetUint16(r.words[r.addr.ToUint16()&0x3FFF])
}

func (r *FastRAM16K) ClockUp() {
	if r.load.Get(0) {
		r.pendingAddr = r.addr.ToUint16() & 0x3FFF
		r.pendingVal = r.in.ToUint16()
		r.pendingSet = true
	}
}

func (r *FastRAM16K) ClockDown() {
	if r.pendingSet {
		r.words[r.pendingAddr] = r.pendingVal
		r.pendingSet = false
	}
}

// Peek returns the current value stored at addr without going through
// the gate interface, for tests and demo-harness observability (spec
// §6 "observable state for tests").
func (r *FastRAM16K) Peek(addr uint16) uint16 {
	return r.words[addr&0x3FFF]
}
