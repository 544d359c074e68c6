package addr

import "strings"

// Address identifies a single basic block visited by a concrete execution.
// It carries no structure beyond equality; the fuzzer never inspects its bits.
type Address uint64

// Path is the ordered sequence of Addresses a single concrete run visited,
// as reported by the trace runner's instrumentation stream.
type Path []Address

// Equal reports whether p and other have the same length and elements in
// the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, a := range p {
		if a != other[i] {
			return false
		}
	}
	return true
}

// key returns a value suitable for use as a map key, since Path itself
// (a slice) is not comparable.
func (p Path) key() string {
	var b strings.Builder
	b.Grow(len(p) * 9)
	for _, a := range p {
		// Fixed-width hex keeps keys unambiguous without a separator byte,
		// and cheaper to build than fmt.Sprintf per address.
		const hexDigits = "0123456789abcdef"
		for shift := 60; shift >= 0; shift -= 4 {
			b.WriteByte(hexDigits[(a>>uint(shift))&0xF])
		}
	}
	return b.String()
}

// First returns the path's first address and true, or the zero Address and
// false if the path is empty.
func (p Path) First() (Address, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// Last returns the path's final address and true, or the zero Address and
// false if the path is empty.
func (p Path) Last() (Address, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
