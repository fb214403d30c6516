package mem

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
	"github.com/hack-sim/hack/io"
	"github.com/hack-sim/hack/seq"
)

// ramBank is the two-phase memory element shape shared by the fast
// word-array RAM16K and the gate-tree seq.RAM16KTree, letting Memory
// pick either backing store at construction time (spec §9: "the
// gate-tree form is optional").
type ramBank interface {
	Out() fabric.Bus
	Recompute()
	ClockUp()
	ClockDown()
}

// Memory is the top-level 16-bit address space mapper binding RAM,
// Screen, and Keyboard (spec §4.5):
//
//	addr[14:13] == 00 or 01 -> RAM16K (bit 13 does double duty as both
//	                            the low bit of this 2-bit selector and
//	                            the top bit of RAM16K's own 14-bit
//	                            address; the two selector branches are
//	                            wired to the same RAM gate, so they
//	                            cover disjoint halves of the 16K array
//	                            rather than one address aliasing
//	                            another — see spec §9 and DESIGN.md)
//	addr[14:13] == 10        -> Screen (low 13 bits)
//	addr[14:13] == 11        -> Keyboard (read-only, no write)
//
// A DMux4Way on load routes the write enable, with RAM's own load
// OR-combined across the two selector branches it's wired under; a
// Mux4Way16 selects the read output.
type Memory struct {
	in, load, addr fabric.Bus

	dmux     *gates.DMux4Way
	ramLoad  *gates.Or
	ram      ramBank
	screen   *Screen
	keyboard *Keyboard
	mux      *gates.Mux4Way16
}

// NewMemory wires a Memory over a 16-bit in bus, 1-bit load, and
// 15-bit addr bus (bit 15 of the full 16-bit address space is unused
// here, per spec §6). kbd may be nil (keyboard reads as all-zero).
func NewMemory(f *fabric.Fabric, in, load, addr fabric.Bus, kbd io.Port16) *Memory {
	m := &Memory{in: in, load: load, addr: addr}

	sel := addr.MustReconnect(13, 14)
	ramAddr := addr.MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)
	screenAddr := addr.MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	m.dmux = gates.NewDMux4Way(f, load, sel)
	m.ramLoad = gates.NewOr(f, m.dmux.A(), m.dmux.B())

	m.ram = NewFastRAM16K(f, in, m.ramLoad.Out(), ramAddr)
	m.screen = NewScreen(f, in, m.dmux.C(), screenAddr)
	m.keyboard = NewKeyboard(f, kbd)

	m.mux = gates.NewMux4Way16(f, m.ram.Out(), m.ram.Out(), m.screen.Out(), m.keyboard.Out(), sel)
	return m
}

// NewMemoryGateTree is NewMemory but backs the RAM range with the
// gate-tree seq.RAM16KTree instead of the fast word-array form,
// exercising the pedagogical path spec §9 calls optional.
func NewMemoryGateTree(f *fabric.Fabric, in, load, addr fabric.Bus, kbd io.Port16) *Memory {
	m := &Memory{in: in, load: load, addr: addr}

	sel := addr.MustReconnect(13, 14)
	ramAddr := addr.MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)
	screenAddr := addr.MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	m.dmux = gates.NewDMux4Way(f, load, sel)
	m.ramLoad = gates.NewOr(f, m.dmux.A(), m.dmux.B())

	m.ram = seq.NewRAM16KTree(f, in, m.ramLoad.Out(), ramAddr)
	m.screen = NewScreen(f, in, m.dmux.C(), screenAddr)
	m.keyboard = NewKeyboard(f, kbd)

	m.mux = gates.NewMux4Way16(f, m.ram.Out(), m.ram.Out(), m.screen.Out(), m.keyboard.Out(), sel)
	return m
}

// Out returns the memory map's 16-bit read output.
func (m *Memory) Out() fabric.Bus { return m.mux.Out() }

// Screen returns the screen bank for rendering (mem.Screen.Image()).
func (m *Memory) Screen() *Screen { return m.screen }

// PeekRAM returns the word stored at a RAM address without going
// through the gate interface, for tests and demo-harness observability
// (spec §6 "observable state for tests": Memory[0] is R0). ok is false
// when Memory was built over the gate-tree RAM, which has no
// out-of-band peek path.
func (m *Memory) PeekRAM(addr uint16) (word uint16, ok bool) {
	if fast, isFast := m.ram.(*FastRAM16K); isFast {
		return fast.Peek(addr), true
	}
	return 0, false
}

func (m *Memory) Recompute() {
	m.dmux.Recompute()
	m.ramLoad.Recompute()
	m.ram.Recompute()
	m.screen.Recompute()
	m.keyboard.Recompute()
	m.mux.Recompute()
}
func (m *Memory) ClockUp() {
	m.ram.ClockUp()
	m.screen.ClockUp()
	m.keyboard.ClockUp()
}
func (m *Memory) ClockDown() {
	m.ram.ClockDown()
	m.screen.ClockDown()
	m.keyboard.ClockDown()
}
