// Package fastfmt formats values as text through pluggable strategies,
// resolved at compile time, into sinks whose failure type is part of their
// type.
//
// The central entry point is [Format], which takes a [Sink], a [Strategy] and
// a value implementing [Fmt] for that strategy. [Write], [String], [Append]
// and [Fill] are shorthands over the shipped sinks.
//
// # Strategies
//
// A strategy is a zero-size tag naming a formatting intent:
//
//   - [Display] — human-readable output
//   - [Debug] — quoted text, floats that always look like floats
//   - [Localized] — locale-aware numbers via golang.org/x/text, e.g.
//     Localized[German]
//
// A value supports strategy S by implementing Fmt[S]. Formatting a value
// under a strategy it does not support does not compile; there is no runtime
// lookup and no fallback from one strategy to another. [Using] switches
// strategy explicitly for one part of a composite.
//
// Primitives are wrapped in adapters that are generic over the strategy, so
// the same number formats under any strategy that supports its kind:
//
//	fastfmt.String(fastfmt.Display{}, fastfmt.IntOf[fastfmt.Display](int8(-128)))  // "-128"
//	fastfmt.String(fastfmt.Localized[fastfmt.German]{}, fastfmt.FloatOf[fastfmt.Localized[fastfmt.German]](1.5)) // "1,5"
//
// A new strategy is a new tag type implementing the per-kind interfaces it
// supports ([IntStrategy], [StrStrategy], ...). A new locale is a zero-size
// type implementing [Locale].
//
// # Sinks
//
// A [Sink] declares its failure type E. WriteStr returns the zero E on
// success. Sinks that cannot fail use [Never], so [Format] into them returns
// nothing worth checking:
//
//   - [Builder] — growable buffer, Sink[Never]
//   - [Counter] — counts bytes, Sink[Never]
//   - [Fixed] — caller-owned fixed buffer, Sink[error], fails with [ErrBufferOverflow]
//   - [WriterSink] — any io.Writer, Sink[error]
//
// The first failure stops formatting and is returned exactly as the sink
// produced it.
//
// # Size Hints
//
// Every Fmt reports a [SizeHint] computed without writing. [Format] passes it
// to sinks that use hints so they can reserve space up front. Hints are
// advisory: a wrong one costs a reallocation, never output.
//
// # Composites
//
//   - [Seq], [List], [Joined] — homogeneous sequences with connectives
//   - [Struct], [Member], [And] — named fields in declaration order, statically typed
//   - [Either] — one of two statically typed cases
//   - [Pair], [Lit], [Empty] — concatenation
//   - [Record], [Variant], [Concat] — the same shapes over Fmt interface values,
//     for field and case lists known only at run time
//   - [Iter], [FromIter], [FromChan] — sequences from iterators
//   - [Ref] — pointers and recursive types
//
// Children are formatted under the parent's strategy, in order, stopping at
// the first error. Nesting is limited by [WithMaxDepth]; exceeding it yields a
// [DepthError].
//
// # Wrappers
//
//   - [Padded], [Truncated] — display-width layout with go-runewidth
//   - [Transformed], [HTMLEscape] — rewrite fragments on their way out
//   - [TransformSink] — rewrite everything written to a sink
//   - [Styled] — ANSI colors with github.com/fatih/color
//   - [YAML], [JSON], [CSV], [Template], [Stringer] — bridges to encoders,
//     text/template and fmt.Stringer
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrBufferOverflow] — a [Fixed] sink ran out of room
//   - [ErrDepthExceeded] — composite nesting exceeded the limit
//   - [ErrNoCase] — a [Variant] selects a case it does not have
package fastfmt
