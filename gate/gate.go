// Package gate defines the uniform lifecycle every circuit element in
// the simulator implements, and the single primitive — Nand — that
// every other combinational gate is composed from.
package gate

// Gate is the lifecycle every circuit element — combinational or
// clocked — implements. Wiring (which buses a gate reads and writes)
// is established once at construction; after that only cell values
// change, via these three calls.
type Gate interface {
	// Recompute refreshes all combinational outputs from current
	// input values. For purely combinational gates this is the only
	// meaningful call; for clocked gates it must be a pure function of
	// current cell values and must not depend on the gate's own
	// not-yet-published state.
	Recompute()
	// ClockUp samples inputs into internal state on the rising edge.
	// No-op for combinational gates.
	ClockUp()
	// ClockDown publishes internal state to outputs on the falling
	// edge. No-op for combinational gates.
	ClockDown()
}
