// Package computer binds the CPU, the instruction ROM, and the memory
// map into a runnable Hack machine (spec §4.7).
package computer

import (
	"fmt"

	"github.com/hack-sim/hack/cpu"
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/io"
	"github.com/hack-sim/hack/mem"
)

// InvalidComputerState reports a protocol violation: Tick()/Tock() are
// meant to alternate, one settle-and-sample followed by one
// publish-and-resettle, in the same way the teacher's cpu.Chip guards
// Tick() against a missing TickDone() from the previous cycle.
type InvalidComputerState struct {
	Msg string
}

func (e InvalidComputerState) Error() string {
	return fmt.Sprintf("invalid computer state: %s", e.Msg)
}

// Def configures a Computer at construction time.
type Def struct {
	// GateTreeRAM selects the pedagogical gate-tree RAM16K (seq.RAM16KTree)
	// instead of the default word-array FastRAM16K (spec §9, "optional").
	GateTreeRAM bool
	// CPUDebug is forwarded to cpu.Def.Debug.
	CPUDebug bool
	// Keyboard is the external input port backing the memory-mapped
	// keyboard at 0x6000. May be nil (reads as 0).
	Keyboard io.Port16
}

// Computer is the top-level Hack machine: ROM32K feeding instructions
// to a CPU, whose outputs drive a Memory, whose reads feed back into
// the CPU — closing the loop the same way CPU.pc feeds ROM's address.
// Two explicit feedback/staging buses (pcStage, inMStage) break the
// construction-order cycles this wiring would otherwise require (spec
// §4.7's "ROM's address ← CPU.pc via overwrite-style feedback" extends
// naturally to CPU.inM ← Memory.out, since Memory can only be built
// after the CPU outputs it's wired from exist).
type Computer struct {
	reset fabric.Bus

	pcStage   fabric.Bus
	instrStage fabric.Bus
	inMStage  fabric.Bus

	rom *mem.ROM32K
	cpu *cpu.CPU
	mem *mem.Memory

	tickDone bool
}

// New wires a Computer. reset is a caller-owned 1-bit bus (set it to I
// for the cycle(s) the machine should hold PC at 0, per spec S5).
func New(f *fabric.Fabric, reset fabric.Bus, def Def) *Computer {
	c := &Computer{reset: reset, tickDone: true}

	c.pcStage = fabric.All0(f, 15)
	c.rom = mem.NewROM32K(f, c.pcStage)

	c.instrStage = fabric.All0(f, 16)
	c.inMStage = fabric.All0(f, 16)
	c.cpu = cpu.New(f, c.instrStage, c.inMStage, reset, cpu.Def{Debug: def.CPUDebug})

	if def.GateTreeRAM {
		c.mem = mem.NewMemoryGateTree(f, c.cpu.OutM(), c.cpu.WriteM(), c.cpu.AddressM(), def.Keyboard)
	} else {
		c.mem = mem.NewMemory(f, c.cpu.OutM(), c.cpu.WriteM(), c.cpu.AddressM(), def.Keyboard)
	}

	return c
}

// Load installs a program image into the instruction ROM.
func (c *Computer) Load(prog []uint16) { c.rom.Load(prog) }

// CPU exposes the wired CPU for observability in tests and demo
// harnesses (spec §6 "observable state for tests").
func (c *Computer) CPU() *cpu.CPU { return c.cpu }

// Memory exposes the wired memory map for observability (PeekRAM,
// Screen()).
func (c *Computer) Memory() *mem.Memory { return c.mem }

// Recompute performs one full combinational settle: it addresses the
// ROM with the CPU's current PC, stages the fetched instruction,
// reads memory at the CPU's current addressM, stages that as inM,
// recomputes the CPU (now with a fresh instruction and inM), and
// finally re-settles Memory so its internal write-enable routing
// reflects the CPU's freshly computed WriteM/OutM ahead of the next
// ClockUp.
func (c *Computer) Recompute() {
	c.pcStage.Overwrite(c.cpu.Pc())
	c.rom.Recompute()
	c.instrStage.Overwrite(c.rom.Out())

	c.mem.Recompute()
	c.inMStage.Overwrite(c.mem.Out())

	c.cpu.Recompute()
	c.mem.Recompute()
}

func (c *Computer) clockUp() {
	c.cpu.ClockUp()
	c.mem.ClockUp()
}

func (c *Computer) clockDown() {
	c.cpu.ClockDown()
	c.mem.ClockDown()
}

// Tick performs a combinational settle followed by the rising-edge
// sample into every DFF (spec §4.7: "recompute(); clock_up()").
func (c *Computer) Tick() error {
	if !c.tickDone {
		return InvalidComputerState{"called Tick() without a matching Tock() from the previous cycle"}
	}
	c.Recompute()
	c.clockUp()
	c.tickDone = false
	return nil
}

// Tock performs the falling-edge publish followed by a combinational
// re-settle (spec §4.7: "clock_down(); recompute()").
func (c *Computer) Tock() error {
	if c.tickDone {
		return InvalidComputerState{"called Tock() without a matching Tick() first"}
	}
	c.clockDown()
	c.Recompute()
	c.tickDone = true
	return nil
}

// Run executes n tick/tock cycles, the way the teacher's
// atari2600.VCS.Tick() loop propagates the first error it hits instead
// of running degraded.
func (c *Computer) Run(cycles int) error {
	for i := 0; i < cycles; i++ {
		if err := c.Tick(); err != nil {
			return fmt.Errorf("cycle %d tick error: %v", i, err)
		}
		if err := c.Tock(); err != nil {
			return fmt.Errorf("cycle %d tock error: %v", i, err)
		}
	}
	return nil
}

// Debug returns the CPU's debug trace for the current cycle, or an
// empty string when debugging is off (see cpu.CPU.Debug).
func (c *Computer) Debug() string { return c.cpu.Debug() }
