package seq

import (
	"github.com/hack-sim/hack/arith"
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
)

// PC is the 16-bit program counter. It composes Inc16 and three Mux16
// stages selecting, in priority order: reset -> 0, else load -> input,
// else inc -> Inc16(current), else hold; the result is clocked into an
// always-loaded 16-bit register. Like Register1, it exposes a feedback
// bus refreshed from the register's output at the top of Recompute to
// avoid constructing a true combinational cycle.
type PC struct {
	feedback   fabric.Bus
	incGate    *arith.Inc16
	selInc     *gates.Mux
	selLoad    *gates.Mux
	selReset   *gates.Mux
	alwaysLoad fabric.Bus
	reg        *Register16
}

// NewPC wires a program counter over a 16-bit input bus and 1-bit
// load/inc/reset control buses.
func NewPC(f *fabric.Fabric, in, load, inc, reset fabric.Bus) *PC {
	p := &PC{}
	p.feedback = fabric.All0(f, 16)

	p.incGate = arith.NewInc16(f, p.feedback)
	p.selInc = gates.NewMux16(f, p.feedback, p.incGate.Out(), inc)
	p.selLoad = gates.NewMux16(f, p.selInc.Out(), in, load)
	zero := fabric.All0(f, 16)
	p.selReset = gates.NewMux16(f, p.selLoad.Out(), zero, reset)

	p.alwaysLoad = fabric.All1(f, 1)
	p.reg = NewRegister16(f, p.selReset.Out(), p.alwaysLoad)
	return p
}

// Out returns the PC's current (previously clocked) 16-bit value.
func (p *PC) Out() fabric.Bus { return p.reg.Out() }

func (p *PC) Recompute() {
	p.feedback.Overwrite(p.reg.Out())
	p.incGate.Recompute()
	p.selInc.Recompute()
	p.selLoad.Recompute()
	p.selReset.Recompute()
	p.reg.Recompute()
}
func (p *PC) ClockUp()   { p.reg.ClockUp() }
func (p *PC) ClockDown() { p.reg.ClockDown() }
