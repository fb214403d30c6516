// Package cpu wires the Hack CPU: the ALU, the A and D registers, the
// PC, and the instruction-decode logic that drives them (spec §4.6).
package cpu

import (
	"fmt"

	"github.com/hack-sim/hack/arith"
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/gates"
	"github.com/hack-sim/hack/seq"
)

// Def configures a CPU at construction time.
type Def struct {
	// Debug, if true, makes Debug() emit a trace line every call
	// instead of an empty string, in the teacher's gated-accumulator
	// style (pia6532.Chip.Debug()): the caller decides whether/where
	// to log it.
	Debug bool
}

// CPU implements the Hack instruction-decode/execute wiring (spec
// §4.6). Inputs are instruction (16 bits), inM (current memory[A]
// value) and reset; outputs are OutM, WriteM, AddressM (15 bits) and
// Pc (15 bits).
//
// Because the ALU's output feeds both the A-register input (after a
// mux with the raw instruction) and the D-register input, Recompute
// runs in a fixed order so the next ClockUp samples consistent
// values: the Y-input mux and pre-ALU decode -> ALU -> post-ALU muxes
// (A/D register inputs, write enable) -> jump logic -> PC -> re-run
// the register-input staging so the edge latches correctly. A and D
// are read (their *previous* cycle's output, stable for the whole
// Recompute call since a DFF only changes at ClockDown) before the
// ALU runs, and only fed the *next* cycle's input after.
type CPU struct {
	def Def

	instruction, inM, reset fabric.Bus

	isC, opA                 fabric.Bus
	zx, nx, zy, ny, fsel, no fabric.Bus
	dA, dD, dM               fabric.Bus
	j1, j2, j3               fabric.Bus

	yMux *gates.Mux
	alu  *arith.ALU

	notIsC    *gates.Not
	isCAndDA  *gates.And
	aLoadGate *gates.Or
	dLoadGate *gates.And
	writeGate *gates.And
	aInstrMux *gates.Mux

	cond1, cond2, cond3 *gates.And
	notNg, notZr        *gates.Not
	bothNot             *gates.And
	or12, jumpOr        *gates.Or
	pcLoadGate          *gates.And

	aIn, aLoad fabric.Bus
	dIn, dLoad fabric.Bus
	a, d       *seq.Register16
	pc         *seq.PC

	addressM fabric.Bus
}

// New wires a CPU over 16-bit instruction/inM buses and a 1-bit reset
// bus.
func New(f *fabric.Fabric, instruction, inM, reset fabric.Bus, def Def) *CPU {
	c := &CPU{def: def, instruction: instruction, inM: inM, reset: reset}

	c.isC = instruction.MustReconnect(15)
	c.opA = instruction.MustReconnect(12)
	c.zx = instruction.MustReconnect(11)
	c.nx = instruction.MustReconnect(10)
	c.zy = instruction.MustReconnect(9)
	c.ny = instruction.MustReconnect(8)
	c.fsel = instruction.MustReconnect(7)
	c.no = instruction.MustReconnect(6)
	c.dA = instruction.MustReconnect(5)
	c.dD = instruction.MustReconnect(4)
	c.dM = instruction.MustReconnect(3)
	c.j1 = instruction.MustReconnect(2)
	c.j2 = instruction.MustReconnect(1)
	c.j3 = instruction.MustReconnect(0)

	// A/D registers are wired over staging buses (aIn/aLoad, dIn/dLoad)
	// that get Overwritten each Recompute once the values that depend
	// on them (the ALU output, which is in turn computed from the
	// registers' *own* previous output) are known — the same
	// feedback-cell technique seq.Register1/seq.PC use to avoid a true
	// combinational cycle through a register's own output.
	c.aIn = fabric.All0(f, 16)
	c.aLoad = fabric.All0(f, 1)
	c.a = seq.NewRegister16(f, c.aIn, c.aLoad)

	c.dIn = fabric.All0(f, 16)
	c.dLoad = fabric.All0(f, 1)
	c.d = seq.NewRegister16(f, c.dIn, c.dLoad)

	// Y-input to the ALU: A (opA=0) or inM (opA=1).
	c.yMux = gates.NewMux16(f, c.a.Out(), inM, c.opA)
	c.alu = arith.NewALU(f, c.d.Out(), c.yMux.Out(), c.zx, c.nx, c.zy, c.ny, c.fsel, c.no)

	// A-register input: raw instruction (A-instruction) or ALU output
	// (C-instruction with d1 set); load whenever it's an A-instruction
	// or a C-instruction with d1 set.
	c.aInstrMux = gates.NewMux16(f, instruction, c.alu.Out(), c.isC)
	c.notIsC = gates.NewNot(f, c.isC)
	c.isCAndDA = gates.NewAnd(f, c.isC, c.dA)
	c.aLoadGate = gates.NewOr(f, c.notIsC.Out(), c.isCAndDA.Out())

	// D-register input is always the ALU output; load only on a
	// C-instruction with d2 set.
	c.dLoadGate = gates.NewAnd(f, c.isC, c.dD)

	// writeM only on a C-instruction with d3 set.
	c.writeGate = gates.NewAnd(f, c.isC, c.dM)

	// Jump condition: j1 on ng, j2 on zr, j3 on (not ng and not zr);
	// any-of, gated to C-instructions only (an A-instruction's low bits
	// are address bits, not jump bits).
	c.cond1 = gates.NewAnd(f, c.j1, c.alu.Ng())
	c.cond2 = gates.NewAnd(f, c.j2, c.alu.Zr())
	c.notNg = gates.NewNot(f, c.alu.Ng())
	c.notZr = gates.NewNot(f, c.alu.Zr())
	c.bothNot = gates.NewAnd(f, c.notNg.Out(), c.notZr.Out())
	c.cond3 = gates.NewAnd(f, c.j3, c.bothNot.Out())
	c.or12 = gates.NewOr(f, c.cond1.Out(), c.cond2.Out())
	c.jumpOr = gates.NewOr(f, c.or12.Out(), c.cond3.Out())
	c.pcLoadGate = gates.NewAnd(f, c.isC, c.jumpOr.Out())

	// The PC is 16 bits wide and is fed A's full 16-bit value directly,
	// with no separate 15-bit staging bus; Pc() exposes only its low 15
	// bits.
	alwaysInc := fabric.All1(f, 1)
	c.pc = seq.NewPC(f, c.a.Out(), c.pcLoadGate.Out(), alwaysInc, reset)

	c.addressM = c.a.Out().MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)

	return c
}

// OutM returns the 16-bit ALU result written to memory when WriteM is
// set.
func (c *CPU) OutM() fabric.Bus { return c.alu.Out() }

// WriteM returns the 1-bit memory write-enable output.
func (c *CPU) WriteM() fabric.Bus { return c.writeGate.Out() }

// AddressM returns the 15-bit memory address output (the A register's
// low 15 bits).
func (c *CPU) AddressM() fabric.Bus { return c.addressM }

// Pc returns the 15-bit program counter output.
func (c *CPU) Pc() fabric.Bus {
	return c.pc.Out().MustReconnect(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
}

// A returns the A register's current value, for tests and demo
// harnesses (spec §6 "observable state for tests").
func (c *CPU) A() fabric.Bus { return c.a.Out() }

// D returns the D register's current value, for tests and demo
// harnesses.
func (c *CPU) D() fabric.Bus { return c.d.Out() }

func (c *CPU) Recompute() {
	c.yMux.Recompute()
	c.alu.Recompute()

	c.notIsC.Recompute()
	c.isCAndDA.Recompute()
	c.aLoadGate.Recompute()
	c.aInstrMux.Recompute()
	c.dLoadGate.Recompute()
	c.writeGate.Recompute()

	c.cond1.Recompute()
	c.cond2.Recompute()
	c.notNg.Recompute()
	c.notZr.Recompute()
	c.bothNot.Recompute()
	c.cond3.Recompute()
	c.or12.Recompute()
	c.jumpOr.Recompute()
	c.pcLoadGate.Recompute()

	c.pc.Recompute()

	c.aIn.Overwrite(c.aInstrMux.Out())
	c.aLoad.Overwrite(c.aLoadGate.Out())
	c.dIn.Overwrite(c.alu.Out())
	c.dLoad.Overwrite(c.dLoadGate.Out())
	c.a.Recompute()
	c.d.Recompute()
}

func (c *CPU) ClockUp() {
	c.a.ClockUp()
	c.d.ClockUp()
	c.pc.ClockUp()
}

func (c *CPU) ClockDown() {
	c.a.ClockDown()
	c.d.ClockDown()
	c.pc.ClockDown()
}

// Debug returns a one-line trace of register state, gated by Def.Debug
// (the teacher's pia6532.Chip.Debug() convention: an empty string when
// debugging is off, a formatted line otherwise, left to the caller to
// log — see computer.Computer.Debug() and cmd/hackrun).
func (c *CPU) Debug() string {
	if !c.def.Debug {
		return ""
	}
	return fmt.Sprintf("pc=%d a=%d d=%d instruction=%#04x addressM=%d writeM=%v",
		c.pc.Out().ToUint16(), c.a.Out().ToUint16(), c.d.Out().ToUint16(),
		c.instruction.ToUint16(), c.addressM.ToUint16(), c.writeGate.Out().Get(0))
}
