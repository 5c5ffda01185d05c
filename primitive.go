package fastfmt

import "unsafe"

// Type sets accepted by the primitive constructors.
type (
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
	Floating interface {
		~float32 | ~float64
	}
)

// Int is a signed integer formatted under S.
type Int[S IntStrategy] struct{ V int64 }

// IntOf wraps v for strategy S: IntOf[Display](int8(-128)).
func IntOf[S IntStrategy, T Signed](v T) Int[S] { return Int[S]{V: int64(v)} }

func (i Int[S]) Fmt(w *Writer, s S) error { return s.FmtInt(w, i.V) }
func (i Int[S]) SizeHint(s S) SizeHint    { return s.IntHint(i.V) }

// Uint is an unsigned integer formatted under S.
type Uint[S UintStrategy] struct{ V uint64 }

// UintOf wraps v for strategy S.
func UintOf[S UintStrategy, T Unsigned](v T) Uint[S] { return Uint[S]{V: uint64(v)} }

func (u Uint[S]) Fmt(w *Writer, s S) error { return s.FmtUint(w, u.V) }
func (u Uint[S]) SizeHint(s S) SizeHint    { return s.UintHint(u.V) }

// Float is a floating-point number formatted under S. Bits is 32 or 64 and
// selects the shortest representation that round-trips at that precision.
type Float[S FloatStrategy] struct {
	V    float64
	Bits int
}

// FloatOf wraps v for strategy S, keeping its precision.
func FloatOf[S FloatStrategy, T Floating](v T) Float[S] {
	return Float[S]{V: float64(v), Bits: int(unsafe.Sizeof(v)) * 8}
}

func (f Float[S]) Fmt(w *Writer, s S) error { return s.FmtFloat(w, f.V, f.bits()) }
func (f Float[S]) SizeHint(s S) SizeHint    { return s.FloatHint(f.V, f.bits()) }

func (f Float[S]) bits() int {
	if f.Bits == 32 {
		return 32
	}
	return 64
}

// Bool is a boolean formatted under S.
type Bool[S BoolStrategy] struct{ V bool }

// BoolOf wraps v for strategy S.
func BoolOf[S BoolStrategy, T ~bool](v T) Bool[S] { return Bool[S]{V: bool(v)} }

func (b Bool[S]) Fmt(w *Writer, s S) error { return s.FmtBool(w, b.V) }
func (b Bool[S]) SizeHint(s S) SizeHint    { return s.BoolHint(b.V) }

// Str is text formatted under S.
type Str[S StrStrategy] struct{ V string }

// StrOf wraps v for strategy S.
func StrOf[S StrStrategy, T ~string](v T) Str[S] { return Str[S]{V: string(v)} }

func (t Str[S]) Fmt(w *Writer, s S) error { return s.FmtStr(w, t.V) }
func (t Str[S]) SizeHint(s S) SizeHint    { return s.StrHint(t.V) }

// Rune is a single character formatted under S.
type Rune[S RuneStrategy] struct{ V rune }

// RuneOf wraps v for strategy S.
func RuneOf[S RuneStrategy](v rune) Rune[S] { return Rune[S]{V: v} }

func (r Rune[S]) Fmt(w *Writer, s S) error { return s.FmtRune(w, r.V) }
func (r Rune[S]) SizeHint(s S) SizeHint    { return s.RuneHint(r.V) }

// Ints wraps a slice of signed integers for strategy S.
func Ints[S IntStrategy, T Signed](vs []T) []Int[S] {
	out := make([]Int[S], len(vs))
	for i, v := range vs {
		out[i] = IntOf[S](v)
	}
	return out
}

// Strs wraps a slice of strings for strategy S.
func Strs[S StrStrategy, T ~string](vs []T) []Str[S] {
	out := make([]Str[S], len(vs))
	for i, v := range vs {
		out[i] = StrOf[S](v)
	}
	return out
}
