package computer

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/io"
)

// r0Plus23 is ROM S1 from the spec: @2, D=A, @3, D=D+A, @0, M=D.
var r0Plus23 = []uint16{0x0002, 0xEC10, 0x0003, 0xE090, 0x0000, 0xE308}

func TestR0EqualsTwoPlusThree(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{})
	c.Load(r0Plus23)
	c.Recompute()

	wantPC := []uint16{1, 2, 3, 4, 5, 6}
	wantA := []uint16{2, 2, 3, 3, 0, 0}
	wantD := []uint16{0, 2, 2, 5, 5, 5}

	for i := 0; i < 6; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("cycle %d Tick: %v", i, err)
		}
		if err := c.Tock(); err != nil {
			t.Fatalf("cycle %d Tock: %v", i, err)
		}
		if got := c.CPU().Pc().ToUint16(); got != wantPC[i] {
			t.Errorf("cycle %d: Pc = %d, want %d\n%s", i, got, wantPC[i], spew.Sdump(c.CPU()))
		}
		if got := c.CPU().A().ToUint16(); got != wantA[i] {
			t.Errorf("cycle %d: A = %d, want %d", i, got, wantA[i])
		}
		if got := c.CPU().D().ToUint16(); got != wantD[i] {
			t.Errorf("cycle %d: D = %d, want %d", i, got, wantD[i])
		}
	}

	if got, ok := c.Memory().PeekRAM(0); !ok || got != 5 {
		t.Errorf("R0 = %d,%v, want 5,true", got, ok)
	}
	if got := c.CPU().D().ToUint16(); got != 5 {
		t.Errorf("final D = %d, want 5", got)
	}
	if got := c.CPU().A().ToUint16(); got != 0 {
		t.Errorf("final A = %d, want 0", got)
	}
	if got := c.CPU().Pc().ToUint16(); got != 6 {
		t.Errorf("final Pc = %d, want 6", got)
	}
}

func TestResetDominatesMidProgram(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{})
	c.Load(r0Plus23)
	c.Recompute()

	if err := c.Run(3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.CPU().Pc().ToUint16(); got != 3 {
		t.Fatalf("Pc before reset = %d, want 3", got)
	}

	reset.Set(0, fabric.I)
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := c.Tock(); err != nil {
		t.Fatalf("Tock: %v", err)
	}
	if got := c.CPU().Pc().ToUint16(); got != 0 {
		t.Fatalf("Pc after reset = %d, want 0", got)
	}
}

func TestTickWithoutMatchingTockIsProtocolError(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{})
	c.Load(r0Plus23)
	c.Recompute()

	if err := c.Tick(); err != nil {
		t.Fatalf("first Tick: %v", err)
	}
	if err := c.Tick(); err == nil {
		t.Fatal("second Tick without Tock did not return an error")
	}
}

func TestTockWithoutPriorTickIsProtocolError(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{})
	c.Load(r0Plus23)
	c.Recompute()

	if err := c.Tock(); err == nil {
		t.Fatal("Tock before any Tick did not return an error")
	}
}

func TestGateTreeRAMVariantProducesSameResult(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{GateTreeRAM: true})
	c.Load(r0Plus23)
	c.Recompute()
	if err := c.Run(6); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.CPU().D().ToUint16(); got != 5 {
		t.Fatalf("gate-tree RAM variant: final D = %d, want 5", got)
	}
	if _, ok := c.Memory().PeekRAM(0); ok {
		t.Fatalf("PeekRAM ok=true for gate-tree RAM, want false (no out-of-band peek path)")
	}
}

func TestKeyboardPortReachesCPUViaMemory(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	port := &io.StaticPort16{Value: 65}
	c := New(f, reset, Def{Keyboard: port})

	// @24576 (0x6000, the keyboard address), D=M
	c.Load([]uint16{0x6000, 0xFC10})
	c.Recompute()
	if err := c.Run(2); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.CPU().D().ToUint16(); got != 65 {
		t.Fatalf("D after reading keyboard = %d, want 65", got)
	}
}

func TestDebugEmptyWithoutCPUDebug(t *testing.T) {
	f := fabric.New()
	reset := fabric.All0(f, 1)
	c := New(f, reset, Def{})
	c.Load(r0Plus23)
	c.Recompute()
	if got := c.Debug(); got != "" {
		t.Fatalf("Debug() = %q, want empty", got)
	}
}
