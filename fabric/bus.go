package fabric

import (
	"strconv"
	"strings"
)

// Bus is a fixed-width, ordered bundle of arena cell indices. Bit 0 is
// the least significant bit. A Bus does not own storage; it is a view
// into a Fabric, and two buses may share some or all of their indices
// (that sharing is the primary composition mechanism — see widen and
// Reconnect below).
type Bus struct {
	f   *Fabric
	idx []int
}

// Width returns the fixed number of bits in the bus.
func (b Bus) Width() int {
	return len(b.idx)
}

// All0 fabricates a new N-wide bus of fresh cells initialized to O.
func All0(f *Fabric, n int) Bus {
	return Bus{f: f, idx: f.alloc(n, O)}
}

// All1 fabricates a new N-wide bus of fresh cells initialized to I.
func All1(f *Fabric, n int) Bus {
	return Bus{f: f, idx: f.alloc(n, I)}
}

// Get returns the current value of bit i.
func (b Bus) Get(i int) Bit {
	return b.f.Get(b.idx[i])
}

// Set writes v into bit i.
func (b Bus) Set(i int, v Bit) {
	b.f.Set(b.idx[i], v)
}

// Widen takes a 1-bit bus and produces an M-wide bus whose M cells are
// all the same single cell, so every bit moves together. Used to
// broadcast a 1-bit selector across a wide datapath (e.g. Mux's sel
// input).
func (b Bus) Widen(m int) Bus {
	if b.Width() != 1 {
		panic(WidthMismatchError{Dst: 1, Src: b.Width()})
	}
	idx := make([]int, m)
	for i := range idx {
		idx[i] = b.idx[0]
	}
	return Bus{f: b.f, idx: idx}
}

// Reconnect produces an M-wide bus whose bit j is the source bus's bit
// sel[j]. Indices may permute, duplicate, or drop bits of the source.
// This is how components wire sub-fields without copying storage.
func (b Bus) Reconnect(sel ...int) (Bus, error) {
	idx := make([]int, len(sel))
	for j, i := range sel {
		if i < 0 || i >= b.Width() {
			return Bus{}, IndexOutOfRangeError{Index: i, Width: b.Width()}
		}
		idx[j] = b.idx[i]
	}
	return Bus{f: b.f, idx: idx}, nil
}

// MustReconnect is Reconnect for call sites wiring a fixed circuit
// topology with statically-known-valid indices, where an out-of-range
// index is a construction bug that should fail loudly rather than be
// threaded through every gate constructor's error return.
func (b Bus) MustReconnect(sel ...int) Bus {
	out, err := b.Reconnect(sel...)
	if err != nil {
		panic(err)
	}
	return out
}

// Overwrite copies each of the N values from src into self's cells.
// It rewires nothing; it mutates the cells self already references in
// place. src must have the same width as self.
func (b Bus) Overwrite(src Bus) error {
	if b.Width() != src.Width() {
		return WidthMismatchError{Dst: b.Width(), Src: src.Width()}
	}
	vals := make([]Bit, b.Width())
	for i := range vals {
		vals[i] = src.Get(i)
	}
	for i, v := range vals {
		b.Set(i, v)
	}
	return nil
}

// Equal reports whether every paired bit cell currently holds the same
// value. Per spec, bus/cell equality is defined on current value, not
// identity.
func (b Bus) Equal(other Bus) bool {
	if b.Width() != other.Width() {
		return false
	}
	for i := 0; i < b.Width(); i++ {
		if b.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// ToUint16 returns the bus's value interpreted as Σ bit[i]*2^i.
func (b Bus) ToUint16() uint16 {
	var v uint16
	for i := 0; i < b.Width(); i++ {
		if b.Get(i) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetUint16 writes the low Width() bits of v into the bus's own cells,
// little-endian, without allocating new storage.
func (b Bus) SetUint16(v uint16) {
	for i := 0; i < b.Width(); i++ {
		b.Set(i, v&(1<<uint(i)) != 0)
	}
}

// FromUint16 allocates a fresh N-wide bus and loads it with the low N
// bits of v, little-endian (bit 0 = LSB).
func FromUint16(f *Fabric, n int, v uint16) Bus {
	bus := All0(f, n)
	for i := 0; i < n; i++ {
		if v&(1<<uint(i)) != 0 {
			bus.Set(i, I)
		}
	}
	return bus
}

// ParseString parses an MSB-first string of '0'/'1' characters into a
// fresh bus of the string's length: the rightmost character becomes
// bit 0 (LSB), the leftmost becomes the highest bit.
func ParseString(f *Fabric, s string) (Bus, error) {
	n := len(s)
	bus := All0(f, n)
	for i := 0; i < n; i++ {
		c := s[n-1-i]
		switch c {
		case '0':
			bus.Set(i, O)
		case '1':
			bus.Set(i, I)
		default:
			return Bus{}, InvalidBitCharError{Char: rune(c), Pos: n - 1 - i}
		}
	}
	return bus, nil
}

// String renders the bus MSB-first with a parenthetical decimal value,
// e.g. "Bus[0101](5)", matching the debug format of the reference
// implementation this simulator is derived from.
func (b Bus) String() string {
	var sb strings.Builder
	sb.WriteString("Bus[")
	for i := b.Width() - 1; i >= 0; i-- {
		sb.WriteString(b.Get(i).String())
	}
	sb.WriteString("](")
	sb.WriteString(strconv.Itoa(int(b.ToUint16())))
	sb.WriteString(")")
	return sb.String()
}
