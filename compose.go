package fastfmt

// Empty writes nothing under any strategy.
type Empty[S Strategy] struct{}

func (Empty[S]) Fmt(*Writer, S) error { return nil }
func (Empty[S]) SizeHint(S) SizeHint  { return Exact(0) }

// Lit is connective text written as is under any strategy.
type Lit[S Strategy] string

func (l Lit[S]) Fmt(w *Writer, _ S) error { return w.lit(string(l)) }
func (l Lit[S]) SizeHint(S) SizeHint      { return Exact(len(l)) }

// Pair writes First then Second. Both are resolved statically.
type Pair[S Strategy, A Fmt[S], B Fmt[S]] struct {
	First  A
	Second B
}

// Then pairs a and b under S: Then[Display](a, b).
func Then[S Strategy, A Fmt[S], B Fmt[S]](a A, b B) Pair[S, A, B] {
	return Pair[S, A, B]{First: a, Second: b}
}

func (p Pair[S, A, B]) Fmt(w *Writer, s S) error {
	if err := p.First.Fmt(w, s); err != nil {
		return err
	}
	return p.Second.Fmt(w, s)
}

func (p Pair[S, A, B]) SizeHint(s S) SizeHint {
	return p.First.SizeHint(s).Add(p.Second.SizeHint(s))
}

// Concat writes its parts in order. Parts may be of different types and are
// held as Fmt[S] interface values, so each is reached through a dynamic call;
// it is meant for part lists only known at run time. [Pair] is the static form.
type Concat[S Strategy] []Fmt[S]

// Cat concatenates parts under S.
func Cat[S Strategy](parts ...Fmt[S]) Concat[S] { return Concat[S](parts) }

func (c Concat[S]) Fmt(w *Writer, s S) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	for _, p := range c {
		if err := p.Fmt(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (c Concat[S]) SizeHint(s S) SizeHint {
	h := Exact(0)
	for _, p := range c {
		h = h.Add(p.SizeHint(s))
	}
	return h
}

// Bound formats Value under its own Strategy wherever an O is expected.
// It is the explicit way to switch strategies inside a composite, for example
// to show one field of a Display record in Debug form.
type Bound[O Strategy, S Strategy, V Fmt[S]] struct {
	Strategy S
	Value    V
}

// Using binds v to s for use under O: Using[Display](Debug{}, v).
func Using[O Strategy, S Strategy, V Fmt[S]](s S, v V) Bound[O, S, V] {
	return Bound[O, S, V]{Strategy: s, Value: v}
}

func (b Bound[O, S, V]) Fmt(w *Writer, _ O) error { return Sub(w, b.Strategy, b.Value) }
func (b Bound[O, S, V]) SizeHint(O) SizeHint      { return b.Value.SizeHint(b.Strategy) }

// Ref formats the value P points to. A nil pointer writes Nil, or "<nil>" if
// Nil is empty.
//
// Recursive types go through Ref: its SizeHint does not follow the pointer,
// and Fmt counts against the nesting limit, so a cycle ends in a
// [DepthError] rather than a stack overflow.
type Ref[S Strategy, V Fmt[S]] struct {
	P   *V
	Nil string
}

// RefOf wraps p for strategy S.
func RefOf[S Strategy, V Fmt[S]](p *V) Ref[S, V] { return Ref[S, V]{P: p} }

func (r Ref[S, V]) Fmt(w *Writer, s S) error {
	if r.P == nil {
		return w.lit(r.nilText())
	}
	return Sub(w, s, *r.P)
}

func (r Ref[S, V]) SizeHint(S) SizeHint {
	if r.P == nil {
		return Exact(len(r.nilText()))
	}
	return SizeHint{}
}

func (r Ref[S, V]) nilText() string {
	if r.Nil == "" {
		return "<nil>"
	}
	return r.Nil
}
