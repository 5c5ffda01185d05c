package fastfmt

import (
	"errors"
	"unicode/utf8"
)

// errSink marks an error as a sink failure whose payload is held by the
// adapter that produced it.
var errSink = errors.New("sink failed")

// fragmentWriter is the type-erased view of a Sink[E] used by Writer.
type fragmentWriter interface {
	writeStr(s string) error
}

// sinkWriter adapts a Sink[E] and keeps the first failure value. Once the
// sink has failed, nothing more reaches it.
type sinkWriter[E comparable] struct {
	sink    Sink[E]
	failure E
	failed  bool
}

func (a *sinkWriter[E]) writeStr(s string) error {
	if a.failed {
		return errSink
	}
	var zero E
	if e := a.sink.WriteStr(s); e != zero {
		a.failure = e
		a.failed = true
		return errSink
	}
	return nil
}

// Writer is what a formatting operation writes to. It forwards every fragment
// to the sink in call order and tracks composite nesting depth.
//
// A Writer is created by the entry points ([Format], [Write], [String], ...)
// and lives for one formatting call. It is not safe for concurrent use.
type Writer struct {
	out   fragmentWriter
	depth int
	limit int
}

// WriteStr writes one fragment. A non-nil error is the sink's failure and must
// be returned unmodified by the caller.
func (w *Writer) WriteStr(s string) error {
	return w.out.writeStr(s)
}

// WriteRune writes one character as a fragment.
func (w *Writer) WriteRune(r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return w.out.writeStr(string(buf[:n]))
}

// lit writes a connective literal. Empty literals are skipped.
func (w *Writer) lit(s string) error {
	if s == "" {
		return nil
	}
	return w.out.writeStr(s)
}

// Depth returns the current composite nesting depth.
func (w *Writer) Depth() int { return w.depth }

func (w *Writer) enter() error {
	if w.depth >= w.limit {
		return &DepthError{Limit: w.limit}
	}
	w.depth++
	return nil
}

func (w *Writer) leave() { w.depth-- }

// scratch returns a Writer over b that inherits w's depth and limit.
func (w *Writer) scratch(b *Builder) *Writer {
	return &Writer{out: &sinkWriter[Never]{sink: b}, depth: w.depth, limit: w.limit}
}

// render formats v into a fresh Builder below w. Builder cannot fail, so the
// only possible error is one the value produced itself.
func render[S Strategy, V Fmt[S]](w *Writer, s S, v V) (string, error) {
	b := NewBuilder(0)
	b.Reserve(v.SizeHint(s))
	if err := v.Fmt(w.scratch(b), s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Sub formats a child value of a composite. It enforces the nesting limit set
// with [WithMaxDepth] and returns the child's error unmodified.
func Sub[S Strategy, V Fmt[S]](w *Writer, s S, v V) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	return v.Fmt(w, s)
}
