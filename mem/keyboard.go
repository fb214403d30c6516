package mem

import (
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/io"
)

// Keyboard is the read-only memory-mapped input port at 0x6000. Its
// output tracks whatever value an external io.Port16 currently reports
// (a test, or a demo harness reading a real keyboard); writes to it
// are not wired at all — there is no load/in bus.
type Keyboard struct {
	port io.Port16
	out  fabric.Bus
}

// NewKeyboard wires a Keyboard that surfaces port's current value. A
// nil port reads as all-zero.
func NewKeyboard(f *fabric.Fabric, port io.Port16) *Keyboard {
	return &Keyboard{port: port, out: fabric.All0(f, 16)}
}

func (k *Keyboard) Out() fabric.Bus { return k.out }

func (k *Keyboard) Recompute() {
	var v uint16
	if k.port != nil {
		v = k.port.Input()
	}
	k.out.SetUint16(v)
}
func (k *Keyboard) ClockUp()   {}
func (k *Keyboard) ClockDown() {}
