package fastfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where padding goes.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Padded writes Value padded with spaces to at least Width display columns.
// Widths are measured with go-runewidth, so wide East Asian characters count
// as two columns.
type Padded[S Strategy, V Fmt[S]] struct {
	Value V
	Width int
	Align Alignment
}

// Pad pads v to width columns under S.
func Pad[S Strategy, V Fmt[S]](v V, width int, align Alignment) Padded[S, V] {
	return Padded[S, V]{Value: v, Width: width, Align: align}
}

func (p Padded[S, V]) Fmt(w *Writer, s S) error {
	text, err := render(w, s, p.Value)
	if err != nil {
		return err
	}
	left, right := padding(runewidth.StringWidth(text), p.Width, p.Align)
	if err := w.lit(left); err != nil {
		return err
	}
	if err := w.lit(text); err != nil {
		return err
	}
	return w.lit(right)
}

// SizeHint: every column takes at least one byte, so the output is at least
// Width bytes; padding adds at most Width.
func (p Padded[S, V]) SizeHint(s S) SizeHint {
	h := p.Value.SizeHint(s)
	width := max(p.Width, 0)
	out := SizeHint{Lower: max(h.Lower, width), Upper: satAdd(h.Upper, width), Bounded: h.Bounded}
	return out.normalize()
}

func padding(have, width int, align Alignment) (left, right string) {
	pad := width - have
	if pad <= 0 {
		return "", ""
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad), ""
	case AlignCenter:
		l := pad / 2
		return strings.Repeat(" ", l), strings.Repeat(" ", pad-l)
	default:
		return "", strings.Repeat(" ", pad)
	}
}

// Truncated writes Value cut to at most Width display columns. Cut text ends
// in Tail ("..." when empty) unless the tail would take the whole width, or
// Width is 3 or less.
type Truncated[S Strategy, V Fmt[S]] struct {
	Value V
	Width int
	Tail  string
}

// Truncate cuts v to width columns under S.
func Truncate[S Strategy, V Fmt[S]](v V, width int) Truncated[S, V] {
	return Truncated[S, V]{Value: v, Width: width}
}

func (t Truncated[S, V]) Fmt(w *Writer, s S) error {
	text, err := render(w, s, t.Value)
	if err != nil {
		return err
	}
	return w.lit(truncateCell(text, t.Width, t.tail()))
}

// SizeHint: cutting can only drop text, but the tail may be longer than what
// it replaces, so only the tail length is added to the upper bound.
func (t Truncated[S, V]) SizeHint(s S) SizeHint {
	h := t.Value.SizeHint(s)
	if !h.Bounded {
		return SizeHint{}
	}
	return Between(0, h.Upper+len(t.tail()))
}

func (t Truncated[S, V]) tail() string {
	if t.Tail == "" {
		return "..."
	}
	return t.Tail
}

func truncateCell(s string, width int, tail string) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 || runewidth.StringWidth(tail) >= width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, tail)
}
