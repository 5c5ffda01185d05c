package fastfmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/unicode/norm"
)

// Locale selects the language a [Localized] strategy formats for.
// Implementations are zero-size types; the Tag is the only data.
type Locale interface {
	Tag() language.Tag
}

// BoolNamer is an optional interface for a Locale that spells booleans in its
// own language. Without it, booleans format as true/false.
type BoolNamer interface {
	BoolNames() (yes, no string)
}

// Shipped locales. Define another zero-size type with a Tag method to add one.
type (
	English struct{}
	German  struct{}
	French  struct{}
)

func (English) Tag() language.Tag { return language.English }
func (German) Tag() language.Tag  { return language.German }
func (French) Tag() language.Tag  { return language.French }

// Localized formats numbers with the digit grouping and decimal separators of
// locale L, and writes text in Unicode normalization form C.
//
// Floats keep at most three fractional digits, the default for decimal
// numbers in CLDR.
type Localized[L Locale] struct{}

var _ Primitive = Localized[English]{}

// Name returns "localized(<tag>)".
func (Localized[L]) Name() string {
	var l L
	return "localized(" + l.Tag().String() + ")"
}

func (Localized[L]) printer() *message.Printer {
	var l L
	return message.NewPrinter(l.Tag())
}

// FmtInt writes v with the locale's digit grouping.
func (z Localized[L]) FmtInt(w *Writer, v int64) error {
	return w.WriteStr(z.printer().Sprint(number.Decimal(v)))
}

// IntHint: every digit and the sign take at least one byte; grouping
// separators only add.
func (Localized[L]) IntHint(v int64) SizeHint { return AtLeast(intLen(v)) }

// FmtUint writes v with the locale's digit grouping.
func (z Localized[L]) FmtUint(w *Writer, v uint64) error {
	return w.WriteStr(z.printer().Sprint(number.Decimal(v)))
}

// UintHint is a lower bound: grouping only adds.
func (Localized[L]) UintHint(v uint64) SizeHint { return AtLeast(uintLen(v)) }

// FmtFloat writes v with the locale's separators. NaN and infinities are
// written as [Display] writes them.
func (z Localized[L]) FmtFloat(w *Writer, v float64, bits int) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Display{}.FmtFloat(w, v, bits)
	}
	return w.WriteStr(z.printer().Sprint(number.Decimal(v)))
}

// FloatHint promises one byte.
func (Localized[L]) FloatHint(float64, int) SizeHint { return AtLeast(1) }

// FmtBool writes the locale's names if L is a [BoolNamer], else true or false.
func (Localized[L]) FmtBool(w *Writer, v bool) error {
	var l L
	if n, ok := any(l).(BoolNamer); ok {
		yes, no := n.BoolNames()
		if v {
			return w.WriteStr(yes)
		}
		return w.WriteStr(no)
	}
	return w.WriteStr(strconv.FormatBool(v))
}

// BoolHint is exact.
func (Localized[L]) BoolHint(v bool) SizeHint {
	var l L
	if n, ok := any(l).(BoolNamer); ok {
		yes, no := n.BoolNames()
		if v {
			return Exact(len(yes))
		}
		return Exact(len(no))
	}
	return Exact(boolLen(v))
}

// FmtStr writes v in Unicode normalization form C.
func (Localized[L]) FmtStr(w *Writer, v string) error {
	if norm.NFC.IsNormalString(v) {
		return w.WriteStr(v)
	}
	return w.WriteStr(norm.NFC.String(v))
}

// StrHint is exact for text already in NFC. Normalizing can shrink or grow
// text, so nothing is promised otherwise.
func (Localized[L]) StrHint(v string) SizeHint {
	if norm.NFC.IsNormalString(v) {
		return Exact(len(v))
	}
	return SizeHint{}
}

// FmtRune writes v as [Display] does.
func (Localized[L]) FmtRune(w *Writer, v rune) error { return Display{}.FmtRune(w, v) }

// RuneHint is exact.
func (Localized[L]) RuneHint(v rune) SizeHint { return Display{}.RuneHint(v) }
