package fastfmt

// Transform rewrites text on its way to a Writer, for example escaping.
//
// TransformStr writes the transformed form of s to w and returns w's error
// unmodified. TransformHint maps the hint of the input to a hint of the
// output; when the effect cannot be bounded it returns the input's lower bound
// with no upper bound, or the zero SizeHint if even that is not a guarantee.
type Transform interface {
	TransformStr(w *Writer, s string) error
	TransformHint(h SizeHint) SizeHint
}

// transformer passes every fragment through t before it reaches w.
type transformer struct {
	t Transform
	w *Writer
}

func (x transformer) writeStr(s string) error { return x.t.TransformStr(x.w, s) }

// Transformed writes Value with every fragment passed through With.
type Transformed[S Strategy, V Fmt[S], T Transform] struct {
	Value V
	With  T
}

// Apply attaches t to v under S: Apply[Display](v, HTMLEscape{}).
func Apply[S Strategy, V Fmt[S], T Transform](v V, t T) Transformed[S, V, T] {
	return Transformed[S, V, T]{Value: v, With: t}
}

func (x Transformed[S, V, T]) Fmt(w *Writer, s S) error {
	inner := &Writer{out: transformer{t: x.With, w: w}, depth: w.depth, limit: w.limit}
	return Sub(inner, s, x.Value)
}

func (x Transformed[S, V, T]) SizeHint(s S) SizeHint {
	return x.With.TransformHint(x.Value.SizeHint(s))
}

// TransformSink is a Sink[E] that passes every fragment written to it through
// With before it reaches Sink. Hints are mapped with With.TransformHint and
// forwarded; UsesHint is Sink's. The failure type is Sink's, and a failure is
// returned as Sink produced it.
type TransformSink[E comparable] struct {
	out  sinkWriter[E]
	w    Writer
	with Transform
}

// NewTransformSink wraps sink so that everything written to it goes through t.
func NewTransformSink[E comparable](sink Sink[E], t Transform) *TransformSink[E] {
	ts := &TransformSink[E]{out: sinkWriter[E]{sink: sink}, with: t}
	ts.w = Writer{out: &ts.out, limit: DefaultMaxDepth}
	return ts
}

// WriteStr transforms s into the wrapped sink.
func (ts *TransformSink[E]) WriteStr(s string) E {
	ts.out.failed = false
	var zero E
	ts.out.failure = zero
	_ = ts.with.TransformStr(&ts.w, s)
	if ts.out.failed {
		return ts.out.failure
	}
	return zero
}

// Reserve forwards the transformed hint.
func (ts *TransformSink[E]) Reserve(h SizeHint) {
	ts.out.sink.Reserve(ts.with.TransformHint(h))
}

// UsesHint reports whether the wrapped sink uses hints.
func (ts *TransformSink[E]) UsesHint() bool { return ts.out.sink.UsesHint() }

// HTMLEscape escapes the five characters special in HTML text and attribute
// values: & < > " '.
type HTMLEscape struct{}

var (
	_ Transform   = HTMLEscape{}
	_ Sink[error] = (*TransformSink[error])(nil)
)

func htmlEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&#34;"
	case '\'':
		return "&#39;"
	}
	return ""
}

// TransformStr writes runs of plain text and entities as separate fragments.
func (HTMLEscape) TransformStr(w *Writer, s string) error {
	start := 0
	for i := 0; i < len(s); i++ {
		ent := htmlEntity(s[i])
		if ent == "" {
			continue
		}
		if err := w.lit(s[start:i]); err != nil {
			return err
		}
		if err := w.WriteStr(ent); err != nil {
			return err
		}
		start = i + 1
	}
	return w.lit(s[start:])
}

// TransformHint: escaping never shrinks text and grows a byte to at most five.
func (HTMLEscape) TransformHint(h SizeHint) SizeHint {
	if !h.Bounded {
		return AtLeast(h.Lower)
	}
	return Between(h.Lower, satMul(h.Upper, 5))
}
