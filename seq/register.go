package seq

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
)

// Register1 is a 1-bit clocked register: a 2-to-1 mux selects between
// a feedback of the DFF's own output and the fresh input, controlled
// by load, feeding a DFF. Recompute refreshes the feedback cell from
// the DFF output *before* re-muxing, which is what breaks the would-be
// combinational cycle through the DFF's own output — the feedback
// cell is updated once per Recompute and then treated as a plain input
// by the mux.
type Register1 struct {
	in, load fabric.Bus
	feedback fabric.Bus
	mux      *gates.Mux
	dff      *DFF
}

// NewRegister1 wires a 1-bit register over 1-bit input and load buses.
func NewRegister1(f *fabric.Fabric, in, load fabric.Bus) *Register1 {
	feedback := fabric.All0(f, 1)
	mux := gates.NewMux(f, feedback, in, load)
	dff := NewDFF(f, mux.Out())
	return &Register1{in: in, load: load, feedback: feedback, mux: mux, dff: dff}
}

// Out returns the register's current (previously clocked) output.
func (r *Register1) Out() fabric.Bus { return r.dff.Out() }

func (r *Register1) Recompute() {
	r.feedback.Overwrite(r.dff.Out())
	r.mux.Recompute()
	r.dff.Recompute()
}
func (r *Register1) ClockUp()   { r.dff.ClockUp() }
func (r *Register1) ClockDown() { r.dff.ClockDown() }

// Register16 is sixteen independent Register1s sharing one load
// signal. Its output bus bundles the sixteen per-bit DFF outputs.
type Register16 struct {
	bits [16]*Register1
	out  fabric.Bus
}

// NewRegister16 wires a 16-bit register over a 16-bit input bus and a
// 1-bit load signal (the same load bus drives all sixteen bit
// registers).
func NewRegister16(f *fabric.Fabric, in, load fabric.Bus) *Register16 {
	r := &Register16{}
	for i := 0; i < 16; i++ {
		bit := in.MustReconnect(i)
		r.bits[i] = NewRegister1(f, bit, load)
	}
	out := fabric.All0(f, 16)
	for i, b := range r.bits {
		out.Set(i, b.Out().Get(0))
	}
	r.out = out
	return r
}

// Out returns the register's current 16-bit output.
func (r *Register16) Out() fabric.Bus { return r.out }

func (r *Register16) Recompute() {
	for _, b := range r.bits {
		b.Recompute()
	}
	for i, b := range r.bits {
		r.out.Set(i, b.Out().Get(0))
	}
}
func (r *Register16) ClockUp() {
	for _, b := range r.bits {
		b.ClockUp()
	}
}
func (r *Register16) ClockDown() {
	for _, b := range r.bits {
		b.ClockDown()
	}
	for i, b := range r.bits {
		r.out.Set(i, b.Out().Get(0))
	}
}
