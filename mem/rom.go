// Package mem implements the fast word-array memories (spec §4.5): the
// 32K ROM, 16K RAM, 8K screen bank, and read-only keyboard port, plus
// the top-level Memory that maps them into the 16-bit Hack address
// space. These expose the same gate.Gate lifecycle as the gate-tree
// elements in seq, but store a dense []uint16 internally instead of
// one cell per bit, which is what makes simulating 32K/16K address
// spaces at interactive speed feasible.
package mem

import "github.com/hack-sim/hack/fabric"

// ROM32K is a 32768-word read-only memory. Recompute reads the word at
// addr and publishes its 16 little-endian bits to Out; there is no
// clocked behavior.
type ROM32K struct {
	words [32768]uint16
	addr  fabric.Bus
	out   fabric.Bus
}

// NewROM32K wires a ROM32K over a 15-bit address bus.
func NewROM32K(f *fabric.Fabric, addr fabric.Bus) *ROM32K {
	return &ROM32K{addr: addr, out: fabric.All0(f, 16)}
}

// Load copies prog into the ROM starting at word 0. prog must not be
// longer than 32768 words.
func (r *ROM32K) Load(prog []uint16) {
	copy(r.words[:], prog)
}

// Out returns the 16-bit output bus.
func (r *ROM32K) Out() fabric.Bus { return r.out }

func (r *ROM32K) Recompute() {
	r.out.SetUint16(r.words[r.addr.ToUint16()&0x7FFF])
}
func (r *ROM32K) ClockUp()   {}
func (r *ROM32K) ClockDown() {}
