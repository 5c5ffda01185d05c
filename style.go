package fastfmt

import "github.com/fatih/color"

// Styled writes Value wrapped in the ANSI escape codes of Color. The value is
// rendered first and wrapped once, so a composite gets one pair of codes
// rather than one per fragment.
//
// Whether codes are emitted follows the color package: they are dropped when
// color is disabled globally (NO_COLOR, non-terminal output) unless the Color
// was forced with EnableColor.
type Styled[S Strategy, V Fmt[S]] struct {
	Value V
	Color *color.Color
}

// Style wraps v in attrs under S: Style[Display](v, color.FgRed, color.Bold).
func Style[S Strategy, V Fmt[S]](v V, attrs ...color.Attribute) Styled[S, V] {
	return Styled[S, V]{Value: v, Color: color.New(attrs...)}
}

func (st Styled[S, V]) Fmt(w *Writer, s S) error {
	text, err := render(w, s, st.Value)
	if err != nil {
		return err
	}
	if st.Color == nil {
		return w.lit(text)
	}
	return w.lit(st.Color.Sprint(text))
}

// SizeHint: escape codes only add.
func (st Styled[S, V]) SizeHint(s S) SizeHint {
	return AtLeast(st.Value.SizeHint(s).Lower)
}
