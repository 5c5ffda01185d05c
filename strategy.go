package fastfmt

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// --- Per-kind capabilities ---
//
// A strategy supports a primitive kind by implementing the matching
// interface. The adapters in primitive.go require it in their type
// constraints, so formatting a kind the strategy does not support is a
// compile error.

// IntStrategy formats signed integers.
type IntStrategy interface {
	Strategy
	FmtInt(w *Writer, v int64) error
	IntHint(v int64) SizeHint
}

// UintStrategy formats unsigned integers.
type UintStrategy interface {
	Strategy
	FmtUint(w *Writer, v uint64) error
	UintHint(v uint64) SizeHint
}

// FloatStrategy formats floating-point numbers. bits is 32 or 64.
type FloatStrategy interface {
	Strategy
	FmtFloat(w *Writer, v float64, bits int) error
	FloatHint(v float64, bits int) SizeHint
}

// BoolStrategy formats booleans.
type BoolStrategy interface {
	Strategy
	FmtBool(w *Writer, v bool) error
	BoolHint(v bool) SizeHint
}

// StrStrategy formats text.
type StrStrategy interface {
	Strategy
	FmtStr(w *Writer, v string) error
	StrHint(v string) SizeHint
}

// RuneStrategy formats single characters.
type RuneStrategy interface {
	Strategy
	FmtRune(w *Writer, v rune) error
	RuneHint(v rune) SizeHint
}

// Primitive is a strategy that supports every primitive kind.
type Primitive interface {
	IntStrategy
	UintStrategy
	FloatStrategy
	BoolStrategy
	StrStrategy
	RuneStrategy
}

var (
	_ Primitive = Display{}
	_ Primitive = Debug{}
)

// floatHint bounds the shortest 'g' form of any float32 or float64, including
// the ".0" suffix Debug adds. Shortest 'g' switches to an exponent from seven
// integer digits on, so the longest form is a sign, 17 significant digits, a
// point and a three-digit exponent: "-1.2345678901234567e-308".
var floatHint = Between(1, 24)

// --- Display ---

// Display is the human-readable strategy: plain decimal numbers, shortest
// round-tripping floats, true/false, and text as is.
type Display struct{}

// Name returns "display".
func (Display) Name() string { return "display" }

// FmtInt writes v in decimal.
func (Display) FmtInt(w *Writer, v int64) error { return w.WriteStr(strconv.FormatInt(v, 10)) }

// IntHint is exact.
func (Display) IntHint(v int64) SizeHint { return Exact(intLen(v)) }

// FmtUint writes v in decimal.
func (Display) FmtUint(w *Writer, v uint64) error { return w.WriteStr(strconv.FormatUint(v, 10)) }

// UintHint is exact.
func (Display) UintHint(v uint64) SizeHint { return Exact(uintLen(v)) }

// FmtFloat writes the shortest form that round-trips at bits precision.
func (Display) FmtFloat(w *Writer, v float64, bits int) error {
	return w.WriteStr(strconv.FormatFloat(v, 'g', -1, bits))
}

// FloatHint bounds any shortest form.
func (Display) FloatHint(float64, int) SizeHint { return floatHint }

// FmtBool writes true or false.
func (Display) FmtBool(w *Writer, v bool) error { return w.WriteStr(strconv.FormatBool(v)) }

// BoolHint is exact.
func (Display) BoolHint(v bool) SizeHint { return Exact(boolLen(v)) }

// FmtStr writes v as is.
func (Display) FmtStr(w *Writer, v string) error { return w.WriteStr(v) }

// StrHint is exact.
func (Display) StrHint(v string) SizeHint { return Exact(len(v)) }

// FmtRune writes v UTF-8 encoded.
func (Display) FmtRune(w *Writer, v rune) error { return w.WriteRune(v) }

// RuneHint is exact; invalid runes count as U+FFFD.
func (Display) RuneHint(v rune) SizeHint { return Exact(runeLen(v)) }

// --- Debug ---

// Debug is the developer-oriented strategy: text and runes are quoted with Go
// escapes, and floats always show a fractional part or an exponent.
type Debug struct{}

// Name returns "debug".
func (Debug) Name() string { return "debug" }

// FmtInt writes v as [Display] does.
func (Debug) FmtInt(w *Writer, v int64) error { return Display{}.FmtInt(w, v) }

// IntHint is exact.
func (Debug) IntHint(v int64) SizeHint { return Display{}.IntHint(v) }

// FmtUint writes v as [Display] does.
func (Debug) FmtUint(w *Writer, v uint64) error { return Display{}.FmtUint(w, v) }

// UintHint is exact.
func (Debug) UintHint(v uint64) SizeHint { return Display{}.UintHint(v) }

// FmtFloat writes the shortest form, adding ".0" to whole numbers.
func (Debug) FmtFloat(w *Writer, v float64, bits int) error {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !hasFraction(s) {
		s += ".0"
	}
	return w.WriteStr(s)
}

// FloatHint bounds any shortest form.
func (Debug) FloatHint(float64, int) SizeHint { return floatHint }

// FmtBool writes true or false.
func (Debug) FmtBool(w *Writer, v bool) error { return Display{}.FmtBool(w, v) }

// BoolHint is exact.
func (Debug) BoolHint(v bool) SizeHint { return Display{}.BoolHint(v) }

// FmtStr writes v as a Go string literal.
func (Debug) FmtStr(w *Writer, v string) error { return w.WriteStr(strconv.Quote(v)) }

// StrHint: quoting adds two quotes and expands a byte to at most four
// (\xNN).
func (Debug) StrHint(v string) SizeHint { return Between(len(v)+2, 4*len(v)+2) }

// FmtRune writes v as a Go rune literal.
func (Debug) FmtRune(w *Writer, v rune) error { return w.WriteStr(strconv.QuoteRune(v)) }

// RuneHint: from 'a' to '\U0010ffff'.
func (Debug) RuneHint(rune) SizeHint { return Between(3, 12) }

// --- helpers ---

func hasFraction(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}

func uintLen(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

func intLen(v int64) int {
	if v < 0 {
		// -(v+1) avoids overflowing on math.MinInt64.
		return 1 + uintLen(uint64(-(v+1))+1)
	}
	return uintLen(uint64(v))
}

func boolLen(v bool) int {
	if v {
		return 4
	}
	return 5
}

func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}
