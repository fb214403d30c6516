package mem

import (
	"testing"

	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/io"
)

func tick(g interface {
	Recompute()
	ClockUp()
	ClockDown()
}) {
	g.Recompute()
	g.ClockUp()
	g.ClockDown()
	g.Recompute()
}

func TestROM32KReadsLoadedProgram(t *testing.T) {
	f := fabric.New()
	addr := fabric.All0(f, 15)
	rom := NewROM32K(f, addr)
	rom.Load([]uint16{0x1111, 0x2222, 0x3333})

	addr.SetUint16(1)
	rom.Recompute()
	if got := rom.Out().ToUint16(); got != 0x2222 {
		t.Errorf("ROM32K[1] = %#x, want 0x2222", got)
	}
}

func TestFastRAM16KWriteReadAcrossCycles(t *testing.T) {
	f := fabric.New()
	in := fabric.All0(f, 16)
	load := fabric.All0(f, 1)
	addr := fabric.All0(f, 14)
	ram := NewFastRAM16K(f, in, load, addr)

	in.SetUint16(12345)
	addr.SetUint16(8192)
	load.Set(0, fabric.I)
	tick(ram)

	load.Set(0, fabric.O)
	tick(ram)
	if got := ram.Out().ToUint16(); got != 12345 {
		t.Errorf("RAM16K addr 8192 after write = %d, want 12345", got)
	}
}

func TestScreenImageReflectsWrittenBits(t *testing.T) {
	f := fabric.New()
	in := fabric.All0(f, 16)
	load := fabric.All0(f, 1)
	addr := fabric.All0(f, 13)
	scr := NewScreen(f, in, load, addr)

	in.SetUint16(0x0001) // bit 0 of word 0, row 0
	addr.SetUint16(0)
	load.Set(0, fabric.I)
	tick(scr)
	load.Set(0, fabric.O)
	tick(scr)

	img := scr.Image()
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel (0,0) not black for set bit")
	}
	if r, g, b, _ := img.At(1, 0).RGBA(); r == 0 && g == 0 && b == 0 {
		t.Errorf("pixel (1,0) should be white for unset bit")
	}
}

func TestKeyboardTracksExternalPort(t *testing.T) {
	f := fabric.New()
	port := &io.StaticPort16{Value: 65}
	kbd := NewKeyboard(f, port)
	kbd.Recompute()
	if got := kbd.Out().ToUint16(); got != 65 {
		t.Errorf("Keyboard.Out() = %d, want 65", got)
	}
	port.Value = 66
	kbd.Recompute()
	if got := kbd.Out().ToUint16(); got != 66 {
		t.Errorf("Keyboard.Out() after port change = %d, want 66", got)
	}
}

func TestMemoryMapRoutesRAMScreenKeyboard(t *testing.T) {
	f := fabric.New()
	in := fabric.All0(f, 16)
	load := fabric.All0(f, 1)
	addr := fabric.All0(f, 15)
	port := &io.StaticPort16{Value: 42}
	m := NewMemory(f, in, load, addr, port)

	// Write 99 to RAM address 0.
	in.SetUint16(99)
	addr.SetUint16(0)
	load.Set(0, fabric.I)
	tick(m)
	load.Set(0, fabric.O)
	tick(m)
	if got := m.Out().ToUint16(); got != 99 {
		t.Errorf("Memory[0] after write = %d, want 99", got)
	}
	if got, ok := m.PeekRAM(0); !ok || got != 99 {
		t.Errorf("PeekRAM(0) = %d,%v, want 99,true", got, ok)
	}

	// Keyboard at 0x6000.
	addr.SetUint16(0x6000)
	tick(m)
	if got := m.Out().ToUint16(); got != 42 {
		t.Errorf("Memory[0x6000] (keyboard) = %d, want 42", got)
	}

	// Screen at 0x4000.
	in.SetUint16(7)
	addr.SetUint16(0x4000)
	load.Set(0, fabric.I)
	tick(m)
	load.Set(0, fabric.O)
	tick(m)
	if got := m.Out().ToUint16(); got != 7 {
		t.Errorf("Memory[0x4000] (screen) after write = %d, want 7", got)
	}
}

func TestMemoryRAMSelectorBranchesCoverWholeRAMRange(t *testing.T) {
	// addr bit 13 is shared between the top 2-bit selector and
	// RAM16K's own 14-bit address (spec §9): selector values 00
	// (bit13=0) and 01 (bit13=1) both route to the same RAM gate, but
	// since bit13 also feeds RAM16K's own address, the two selector
	// branches address disjoint halves of the 16K array rather than
	// aliasing the same word. Writes through one branch must not
	// disturb the other.
	f := fabric.New()
	in := fabric.All0(f, 16)
	load := fabric.All0(f, 1)
	addr := fabric.All0(f, 15)
	m := NewMemory(f, in, load, addr, nil)

	in.SetUint16(111)
	addr.SetUint16(0x1000) // bit14=0,bit13=0 -> selector 00
	load.Set(0, fabric.I)
	tick(m)
	load.Set(0, fabric.O)
	tick(m)

	in.SetUint16(222)
	addr.SetUint16(0x3000) // bit14=0,bit13=1 -> selector 01
	load.Set(0, fabric.I)
	tick(m)
	load.Set(0, fabric.O)
	tick(m)

	addr.SetUint16(0x1000)
	tick(m)
	if got := m.Out().ToUint16(); got != 111 {
		t.Errorf("Memory[0x1000] after both writes = %d, want 111 (unaffected by 0x3000 write)", got)
	}
	addr.SetUint16(0x3000)
	tick(m)
	if got := m.Out().ToUint16(); got != 222 {
		t.Errorf("Memory[0x3000] after both writes = %d, want 222", got)
	}
}
