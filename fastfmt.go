package fastfmt

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBufferOverflow = errors.New("write past end of buffer")
	ErrDepthExceeded  = errors.New("composite nesting too deep")
	ErrNoCase         = errors.New("variant has no such case")
)

// DepthError reports a composite nested deeper than the configured limit,
// which is how a self-referential composite surfaces.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: limit %d", ErrDepthExceeded, e.Limit)
}

func (e *DepthError) Unwrap() error { return ErrDepthExceeded }

// CaseError reports a [Variant] whose Active index does not name one of its
// Cases.
type CaseError struct {
	Active int
	Cases  int
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("%s: case %d of %d", ErrNoCase, e.Active, e.Cases)
}

func (e *CaseError) Unwrap() error { return ErrNoCase }

// Strategy is a formatting intent such as [Display], [Debug] or
// [Localized]. Strategies are zero-size tags; the Name is for diagnostics.
type Strategy interface {
	Name() string
}

// Fmt is the formatting capability of a value under strategy S.
//
// Fmt writes the value to w and returns the first error w reported, unmodified.
// SizeHint estimates the output without writing or allocating; an
// implementation with nothing better to say returns the zero SizeHint.
//
// A type supports several strategies by being wrapped in different adapters,
// or by being generic over S itself (see [Int], [Seq], [Record]).
type Fmt[S Strategy] interface {
	Fmt(w *Writer, s S) error
	SizeHint(s S) SizeHint
}

// --- Options ---

// DefaultMaxDepth is the default composite nesting limit.
const DefaultMaxDepth = 64

type config struct {
	maxDepth int
	reserve  bool
}

func defaultConfig() config {
	return config{maxDepth: DefaultMaxDepth, reserve: true}
}

// Option configures one formatting call.
type Option func(*config)

// WithMaxDepth sets the composite nesting limit.
// A non-positive value resets to [DefaultMaxDepth].
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.maxDepth = DefaultMaxDepth
			return
		}
		c.maxDepth = n
	}
}

// WithoutReserve skips the size-hint step even for sinks that use hints.
func WithoutReserve() Option {
	return func(c *config) {
		c.reserve = false
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// --- Entry points ---

// Format writes v under strategy s to sink and returns the sink's first
// failure, or the zero E on success.
//
// If the sink uses hints, v's SizeHint is passed to Reserve before the first
// write. Writing stops at the first failure; the failure value is returned as
// the sink produced it.
//
// An error that did not come from the sink, such as a [DepthError], is
// returned when E is error. For any other E it cannot be represented and
// Format panics with it; in particular a Sink[Never] never yields a failure.
func Format[E comparable, S Strategy, V Fmt[S]](sink Sink[E], s S, v V, opts ...Option) E {
	cfg := newConfig(opts)
	if cfg.reserve && sink.UsesHint() {
		sink.Reserve(v.SizeHint(s))
	}
	out := &sinkWriter[E]{sink: sink}
	w := &Writer{out: out, limit: cfg.maxDepth}
	err := v.Fmt(w, s)
	if out.failed {
		return out.failure
	}
	if err != nil {
		if e, ok := any(err).(E); ok {
			return e
		}
		panic(fmt.Errorf("fastfmt: %s under %s: %w", typeName(v), s.Name(), err))
	}
	var zero E
	return zero
}

// Write formats v under s to w. It is [Format] over a [WriterSink].
func Write[S Strategy, V Fmt[S]](w io.Writer, s S, v V, opts ...Option) error {
	return Format[error](NewWriterSink(w), s, v, opts...)
}

// String formats v under s and returns the text. It cannot fail.
func String[S Strategy, V Fmt[S]](s S, v V, opts ...Option) string {
	var b Builder
	Format[Never](&b, s, v, opts...)
	return b.String()
}

// Append formats v under s and appends the text to dst. It cannot fail.
func Append[S Strategy, V Fmt[S]](dst []byte, s S, v V, opts ...Option) []byte {
	b := Builder{buf: dst}
	Format[Never](&b, s, v, opts...)
	return b.buf
}

// Fill formats v under s into buf and returns the number of bytes written.
// It fails with [ErrBufferOverflow] when the output does not fit; the bytes
// written before the failing fragment stay in buf.
func Fill[S Strategy, V Fmt[S]](buf []byte, s S, v V, opts ...Option) (int, error) {
	f := NewFixed(buf)
	err := Format[error](f, s, v, opts...)
	return f.Len(), err
}

// Hint returns v's size hint under s.
func Hint[S Strategy, V Fmt[S]](s S, v V) SizeHint {
	return v.SizeHint(s)
}

// Measure formats v under s into a [Counter] and returns the exact length in
// bytes.
func Measure[S Strategy, V Fmt[S]](s S, v V, opts ...Option) int {
	var c Counter
	Format[Never](&c, s, v, opts...)
	return c.Bytes
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
