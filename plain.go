package fastfmt

import "fmt"

// Stringer formats the result of V.String() with S's text rule, bridging
// types that already implement [fmt.Stringer].
type Stringer[S StrStrategy] struct {
	V fmt.Stringer
}

// StringerOf wraps v for strategy S.
func StringerOf[S StrStrategy](v fmt.Stringer) Stringer[S] { return Stringer[S]{V: v} }

func (t Stringer[S]) Fmt(w *Writer, s S) error {
	if t.V == nil {
		return w.WriteStr("<nil>")
	}
	return s.FmtStr(w, t.V.String())
}

// SizeHint makes no estimate: calling String here could allocate.
func (Stringer[S]) SizeHint(S) SizeHint { return SizeHint{} }
