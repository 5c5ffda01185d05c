package fastfmt

import "iter"

// Iter is a sequence whose items arrive from an iterator. Items are written
// as they are yielded, in yield order, and iteration stops at the first
// error.
//
// The iterator is not consumed to compute the hint, so SizeHint only counts
// the brackets.
type Iter[S Strategy, T Fmt[S]] struct {
	Seq   iter.Seq[T]
	Open  string
	Sep   string
	Close string
}

// FromIter returns seq as "[a, b, c]" under S.
func FromIter[S Strategy, T Fmt[S]](seq iter.Seq[T]) Iter[S, T] {
	return Iter[S, T]{Seq: seq, Open: "[", Sep: ", ", Close: "]"}
}

// FromChan returns the values received from ch as "[a, b, c]" under S.
// Formatting drains ch until it is closed or a write fails.
func FromChan[S Strategy, T Fmt[S]](ch <-chan T) Iter[S, T] {
	return FromIter[S](chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func (it Iter[S, T]) Fmt(w *Writer, s S) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	if err := w.lit(it.Open); err != nil {
		return err
	}
	first := true
	var streamErr error
	it.Seq(func(item T) bool {
		if !first {
			if err := w.lit(it.Sep); err != nil {
				streamErr = err
				return false
			}
		}
		first = false
		if err := item.Fmt(w, s); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	return w.lit(it.Close)
}

func (it Iter[S, T]) SizeHint(S) SizeHint {
	return AtLeast(len(it.Open) + len(it.Close))
}
