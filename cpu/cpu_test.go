package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hack-sim/hack/fabric"
)

// tickTock runs one full clock cycle: settle, sample rising edge,
// publish falling edge, settle again so observers see post-edge state
// (same shape as seq/mem's test helpers).
func tickTock(c *CPU) {
	c.Recompute()
	c.ClockUp()
	c.ClockDown()
	c.Recompute()
}

// cInstruction assembles a C-instruction word from its fields: comp is
// the 7-bit a/c1-c6 computation field, dest is the 3-bit d1-d3 field,
// jump is the 3-bit j1-j3 field.
func cInstruction(comp, dest, jump uint16) uint16 {
	return 0xE000 | (comp&0x7F)<<6 | (dest&0x7)<<3 | (jump & 0x7)
}

const (
	compZero   = 0x2A // 0101010: zx nx zy ny f no = 1 0 1 0 1 0 -> 0
	compOne    = 0x3F // 0111111 -> 1
	compMinus1 = 0x3A // 0111010 -> -1
	compD      = 0x0C // 0001100 -> D
	compA      = 0x30 // 0110000 -> A
	compDPlusA = 0x02 // 0000010 -> D+A
	compDMinus1 = 0x0E // 0001110 -> D-1
	compM      = 0x70 // 1110000 -> M (a=1)
	compDPlusM = 0x42 // 1000010 -> D+M (a=1)
)

func TestAInstructionLoadsAAndLeavesDUnchanged(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(42)
	tickTock(c)

	if got := c.A().ToUint16(); got != 42 {
		t.Fatalf("A = %d, want 42\n%s", got, spew.Sdump(c))
	}
	if got := c.D().ToUint16(); got != 0 {
		t.Fatalf("D = %d, want 0 (unchanged by A-instruction)", got)
	}
}

func TestCInstructionComputesDPlusAIntoD(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	// @5
	instruction.SetUint16(5)
	tickTock(c)
	// D=A (dest=010=D)
	instruction.SetUint16(cInstruction(compA, 0x2, 0))
	tickTock(c)
	if got := c.D().ToUint16(); got != 5 {
		t.Fatalf("D after D=A = %d, want 5", got)
	}
	// @3
	instruction.SetUint16(3)
	tickTock(c)
	// D=D+A (dest=010)
	instruction.SetUint16(cInstruction(compDPlusA, 0x2, 0))
	tickTock(c)
	if got := c.D().ToUint16(); got != 8 {
		t.Fatalf("D after D=D+A = %d, want 8", got)
	}
}

func TestCInstructionWritesMWhenDestMSet(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(100) // @100
	tickTock(c)

	// D=1 (dest=010)
	instruction.SetUint16(cInstruction(compOne, 0x2, 0))
	tickTock(c)

	// M=D (dest=001), comp=D
	instruction.SetUint16(cInstruction(compD, 0x1, 0))
	c.Recompute()
	if !c.WriteM().Get(0) {
		t.Fatalf("WriteM = false, want true for dest=M")
	}
	if got := c.OutM().ToUint16(); got != 1 {
		t.Fatalf("OutM = %d, want 1", got)
	}
	if got := c.AddressM().ToUint16(); got != 100 {
		t.Fatalf("AddressM = %d, want 100", got)
	}
}

func TestCInstructionReadsMIntoComputation(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(200) // @200
	tickTock(c)

	inM.SetUint16(9)
	// D=M (dest=010), comp=M (a=1)
	instruction.SetUint16(cInstruction(compM, 0x2, 0))
	tickTock(c)
	if got := c.D().ToUint16(); got != 9 {
		t.Fatalf("D after D=M = %d, want 9", got)
	}
}

func TestUnconditionalJumpLoadsPCFromA(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(10) // @10
	tickTock(c)

	// 0;JMP : comp=0, jump=111
	instruction.SetUint16(cInstruction(compZero, 0, 0x7))
	tickTock(c)
	if got := c.Pc().ToUint16(); got != 10 {
		t.Fatalf("Pc after 0;JMP = %d, want 10\n%s", got, spew.Sdump(c))
	}
}

func TestConditionalJumpOnlyFiresWhenConditionHolds(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(50) // @50
	tickTock(c)

	// comp=-1 (negative), JLT (j1 fires on ng)
	instruction.SetUint16(cInstruction(compMinus1, 0, 0x4))
	tickTock(c)
	if got := c.Pc().ToUint16(); got != 50 {
		t.Fatalf("Pc after -1;JLT = %d, want 50 (condition holds)", got)
	}

	// @60, then comp=1 (positive), JLT should NOT fire
	instruction.SetUint16(60)
	tickTock(c)
	pcBefore := c.Pc().ToUint16()
	instruction.SetUint16(cInstruction(compOne, 0, 0x4))
	tickTock(c)
	if got := c.Pc().ToUint16(); got != pcBefore+1 {
		t.Fatalf("Pc after 1;JLT = %d, want %d (condition false, PC just increments)", got, pcBefore+1)
	}
}

func TestResetForcesPCToZero(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	instruction.SetUint16(1000) // @1000
	tickTock(c)
	instruction.SetUint16(cInstruction(compZero, 0, 0x7)) // 0;JMP -> PC=1000
	tickTock(c)
	if got := c.Pc().ToUint16(); got != 1000 {
		t.Fatalf("Pc before reset = %d, want 1000", got)
	}

	reset.Set(0, fabric.I)
	tickTock(c)
	if got := c.Pc().ToUint16(); got != 0 {
		t.Fatalf("Pc after reset = %d, want 0", got)
	}
}

func TestPCIncrementsByDefault(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)
	c := New(f, instruction, inM, reset, Def{})

	for want := uint16(1); want <= 3; want++ {
		instruction.SetUint16(0) // @0, a no-op A-instruction
		tickTock(c)
		if got := c.Pc().ToUint16(); got != want {
			t.Fatalf("Pc after %d cycles = %d, want %d", want, got, want)
		}
	}
}

func TestDebugGatedByDef(t *testing.T) {
	f := fabric.New()
	instruction := fabric.All0(f, 16)
	inM := fabric.All0(f, 16)
	reset := fabric.All0(f, 1)

	quiet := New(f, instruction, inM, reset, Def{})
	if got := quiet.Debug(); got != "" {
		t.Fatalf("Debug() with Def{Debug:false} = %q, want empty", got)
	}

	f2 := fabric.New()
	instruction2 := fabric.All0(f2, 16)
	inM2 := fabric.All0(f2, 16)
	reset2 := fabric.All0(f2, 1)
	loud := New(f2, instruction2, inM2, reset2, Def{Debug: true})
	if got := loud.Debug(); got == "" {
		t.Fatalf("Debug() with Def{Debug:true} = %q, want non-empty", got)
	}
}
