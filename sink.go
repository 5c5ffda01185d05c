package fastfmt

import (
	"io"
	"unicode/utf8"
)

// Sink is a destination for formatted text.
//
// E is the sink's failure type. WriteStr returns the zero value of E on
// success and any other value on failure. A sink that cannot fail uses
// [Never], which has no value other than its zero value, so it has no way to
// express a failure and its callers have nothing to check.
//
// Reserve is advisory: it may grow internal storage, and a wrong hint must
// never change what ends up in the sink. UsesHint reports whether Reserve does
// anything, so callers can skip computing a hint the sink would ignore.
type Sink[E comparable] interface {
	WriteStr(s string) E
	Reserve(h SizeHint)
	UsesHint() bool
}

// Never is the failure type of sinks that cannot fail.
type Never struct{}

// Compile-time checks.
var (
	_ Sink[Never] = (*Builder)(nil)
	_ Sink[Never] = (*Counter)(nil)
	_ Sink[error] = (*Fixed)(nil)
	_ Sink[error] = (*WriterSink)(nil)
)

// --- Builder ---

// Builder is a growable in-memory sink. It never fails.
// The zero value is ready to use.
type Builder struct {
	buf []byte
}

// NewBuilder returns a Builder with room for n bytes.
func NewBuilder(n int) *Builder {
	return &Builder{buf: make([]byte, 0, max(n, 0))}
}

// WriteStr appends s.
func (b *Builder) WriteStr(s string) Never {
	b.buf = append(b.buf, s...)
	return Never{}
}

// Reserve grows the buffer so that the hinted output fits without
// reallocating.
func (b *Builder) Reserve(h SizeHint) {
	n := h.capacity()
	if n <= 0 || cap(b.buf)-len(b.buf) >= n {
		return
	}
	grown := make([]byte, len(b.buf), len(b.buf)+n)
	copy(grown, b.buf)
	b.buf = grown
}

// UsesHint reports true.
func (b *Builder) UsesHint() bool { return true }

// String returns the accumulated text.
func (b *Builder) String() string { return string(b.buf) }

// Bytes returns the accumulated text. The slice aliases the buffer.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the number of bytes written.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the buffer capacity.
func (b *Builder) Cap() int { return cap(b.buf) }

// Reset empties the buffer and keeps its storage.
func (b *Builder) Reset() { b.buf = b.buf[:0] }

// --- Fixed ---

// Fixed is a sink over a caller-owned slice of fixed capacity.
// A fragment that does not fit in the remaining space is rejected whole with
// [ErrBufferOverflow]; nothing of it is written.
type Fixed struct {
	buf []byte
	n   int
}

// NewFixed returns a Fixed sink writing into buf[:len(buf)].
func NewFixed(buf []byte) *Fixed {
	return &Fixed{buf: buf}
}

// WriteStr copies s into the buffer.
func (f *Fixed) WriteStr(s string) error {
	if len(s) > len(f.buf)-f.n {
		return ErrBufferOverflow
	}
	f.n += copy(f.buf[f.n:], s)
	return nil
}

// Reserve is a no-op: the capacity is fixed.
func (f *Fixed) Reserve(SizeHint) {}

// UsesHint reports false.
func (f *Fixed) UsesHint() bool { return false }

// Len returns the number of bytes written.
func (f *Fixed) Len() int { return f.n }

// Bytes returns the written part of the buffer.
func (f *Fixed) Bytes() []byte { return f.buf[:f.n] }

// Remaining returns the free space left.
func (f *Fixed) Remaining() int { return len(f.buf) - f.n }

// --- WriterSink ---

// grower is implemented by bytes.Buffer and strings.Builder.
type grower interface {
	Grow(n int)
}

// WriterSink adapts an [io.Writer]. Errors from the writer are returned as is.
// Hints are forwarded to writers that have a Grow(int) method.
type WriterSink struct {
	w io.Writer
	g grower
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	g, _ := w.(grower)
	return &WriterSink{w: w, g: g}
}

// WriteStr writes s to the underlying writer.
func (s *WriterSink) WriteStr(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// Reserve forwards the hint to the writer's Grow method, if any.
func (s *WriterSink) Reserve(h SizeHint) {
	if s.g == nil {
		return
	}
	if n := h.capacity(); n > 0 {
		s.g.Grow(n)
	}
}

// UsesHint reports whether the writer can be grown.
func (s *WriterSink) UsesHint() bool { return s.g != nil }

// --- Counter ---

// Counter discards text and counts it. It never fails.
type Counter struct {
	Bytes int
	Runes int
	Frags int
}

// WriteStr counts s.
func (c *Counter) WriteStr(s string) Never {
	c.Bytes += len(s)
	c.Runes += utf8.RuneCountInString(s)
	c.Frags++
	return Never{}
}

// Reserve is a no-op.
func (c *Counter) Reserve(SizeHint) {}

// UsesHint reports false.
func (c *Counter) UsesHint() bool { return false }
