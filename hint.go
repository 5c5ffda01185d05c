package fastfmt

import "math"

// SizeHint estimates the length in bytes of output about to be produced.
//
// Lower is always a valid guarantee: the output is never shorter. When Bounded
// is true, Upper is a guarantee too: the output is never longer. The zero
// value means unknown: nothing is promised beyond empty output.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exact returns a hint for output of exactly n bytes.
func Exact(n int) SizeHint { return SizeHint{Lower: n, Upper: n, Bounded: true} }

// AtLeast returns a hint with lower bound n and no upper bound.
func AtLeast(n int) SizeHint { return SizeHint{Lower: n} }

// Between returns a hint bounded by lo and hi. hi is raised to lo if smaller.
func Between(lo, hi int) SizeHint {
	if hi < lo {
		hi = lo
	}
	return SizeHint{Lower: lo, Upper: hi, Bounded: true}
}

// Max returns the upper bound and whether one exists.
func (h SizeHint) Max() (int, bool) { return h.Upper, h.Bounded }

// Contains reports whether an output of n bytes is consistent with h.
func (h SizeHint) Contains(n int) bool {
	if n < h.Lower {
		return false
	}
	return !h.Bounded || n <= h.Upper
}

// Add combines the hints of two outputs written back to back.
// Lower bounds add; the upper bound exists only if both exist.
func (h SizeHint) Add(o SizeHint) SizeHint {
	return SizeHint{
		Lower:   satAdd(h.Lower, o.Lower),
		Upper:   satAdd(h.Upper, o.Upper),
		Bounded: h.Bounded && o.Bounded,
	}.normalize()
}

// Plus adds a literal of n bytes to the hint.
func (h SizeHint) Plus(n int) SizeHint { return h.Add(Exact(n)) }

// Or combines the hints of alternatives of which exactly one is written.
// Both bounds take the elementwise maximum; the upper bound exists only if
// every alternative has one.
func (h SizeHint) Or(o SizeHint) SizeHint {
	return SizeHint{
		Lower:   max(h.Lower, o.Lower),
		Upper:   max(h.Upper, o.Upper),
		Bounded: h.Bounded && o.Bounded,
	}.normalize()
}

// Sum concatenates hints. Sum() is Exact(0).
func Sum(hints ...SizeHint) SizeHint {
	out := Exact(0)
	for _, h := range hints {
		out = out.Add(h)
	}
	return out
}

// Alt combines the hints of alternatives. Alt() is Exact(0).
func Alt(hints ...SizeHint) SizeHint {
	if len(hints) == 0 {
		return Exact(0)
	}
	out := hints[0]
	for _, h := range hints[1:] {
		out = out.Or(h)
	}
	return out
}

// capacity picks how many bytes a sink should reserve for h.
func (h SizeHint) capacity() int {
	if h.Bounded && h.Upper <= maxEagerReserve {
		return h.Upper
	}
	return h.Lower
}

// maxEagerReserve caps reservations made from upper bounds; beyond it the
// lower bound is used.
const maxEagerReserve = 64 << 10

func (h SizeHint) normalize() SizeHint {
	if !h.Bounded {
		h.Upper = 0
	}
	return h
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
