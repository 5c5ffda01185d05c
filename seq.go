package fastfmt

// Seq is a sequence of values of one type, written in slice order between
// Open and Close and separated by Sep.
type Seq[S Strategy, T Fmt[S]] struct {
	Items []T
	Open  string
	Sep   string
	Close string
}

// List returns items as "[a, b, c]" under S: List[Display](x, y).
func List[S Strategy, T Fmt[S]](items ...T) Seq[S, T] {
	return Seq[S, T]{Items: items, Open: "[", Sep: ", ", Close: "]"}
}

// Joined returns items separated by sep with no brackets.
func Joined[S Strategy, T Fmt[S]](sep string, items ...T) Seq[S, T] {
	return Seq[S, T]{Items: items, Sep: sep}
}

func (q Seq[S, T]) Fmt(w *Writer, s S) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	if err := w.lit(q.Open); err != nil {
		return err
	}
	for i, item := range q.Items {
		if i > 0 {
			if err := w.lit(q.Sep); err != nil {
				return err
			}
		}
		if err := item.Fmt(w, s); err != nil {
			return err
		}
	}
	return w.lit(q.Close)
}

func (q Seq[S, T]) SizeHint(s S) SizeHint {
	h := Exact(len(q.Open) + len(q.Close))
	for i, item := range q.Items {
		if i > 0 {
			h = h.Plus(len(q.Sep))
		}
		h = h.Add(item.SizeHint(s))
	}
	return h
}

// Field is one named member of a [Record].
type Field[S Strategy] struct {
	Name  string
	Value Fmt[S]
}

// FieldOf names v under S.
func FieldOf[S Strategy](name string, v Fmt[S]) Field[S] {
	return Field[S]{Name: name, Value: v}
}

// Record is a named group of fields, written in declaration order:
//
//	Name{a: 1, b: 2}
//
// The connectives are configurable; an ENV-style record uses Sep "\n" and
// Assign "=".
//
// Field values are Fmt[S] interface values, so each is reached through a
// dynamic call. Record suits field lists built at run time; [Struct] is the
// statically dispatched form with the same output.
type Record[S Strategy] struct {
	Name   string
	Fields []Field[S]
	Open   string
	Sep    string
	Close  string
	Assign string
}

// NewRecord returns a record with the default connectives.
func NewRecord[S Strategy](name string, fields ...Field[S]) Record[S] {
	return Record[S]{Name: name, Fields: fields, Open: "{", Sep: ", ", Close: "}", Assign: ": "}
}

func (r Record[S]) Fmt(w *Writer, s S) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	if err := w.lit(r.Name); err != nil {
		return err
	}
	if err := w.lit(r.Open); err != nil {
		return err
	}
	for i, f := range r.Fields {
		if i > 0 {
			if err := w.lit(r.Sep); err != nil {
				return err
			}
		}
		if err := w.lit(f.Name); err != nil {
			return err
		}
		if err := w.lit(r.Assign); err != nil {
			return err
		}
		if err := f.Value.Fmt(w, s); err != nil {
			return err
		}
	}
	return w.lit(r.Close)
}

func (r Record[S]) SizeHint(s S) SizeHint {
	h := Exact(len(r.Name) + len(r.Open) + len(r.Close))
	for i, f := range r.Fields {
		if i > 0 {
			h = h.Plus(len(r.Sep))
		}
		h = h.Plus(len(f.Name) + len(r.Assign)).Add(f.Value.SizeHint(s))
	}
	return h
}

// Variant is a value of a sum type: one of Cases, selected by Active.
//
// Its SizeHint is the active case's rather than the elementwise maximum over
// all cases: the maximum of the lower bounds would promise more output than a
// shorter active case writes. [Variant.Envelope] applies the maximum rule and
// is the hint to use when the case is not known ahead of time.
//
// Active must index Cases; otherwise Fmt fails with a [*CaseError] and writes
// nothing. Cases are held as Fmt[S] interface values, so each case is reached
// through a dynamic call. [Either] is the statically dispatched two-case form.
type Variant[S Strategy] struct {
	Cases  []Fmt[S]
	Active int
}

// OneOf returns a Variant with case active selected.
func OneOf[S Strategy](active int, cases ...Fmt[S]) Variant[S] {
	return Variant[S]{Cases: cases, Active: active}
}

func (v Variant[S]) Fmt(w *Writer, s S) error {
	if !v.valid() {
		return &CaseError{Active: v.Active, Cases: len(v.Cases)}
	}
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	return v.Cases[v.Active].Fmt(w, s)
}

// SizeHint returns the zero SizeHint when Active is out of range.
func (v Variant[S]) SizeHint(s S) SizeHint {
	if !v.valid() {
		return SizeHint{}
	}
	return v.Cases[v.Active].SizeHint(s)
}

func (v Variant[S]) valid() bool {
	return v.Active >= 0 && v.Active < len(v.Cases)
}

// Envelope returns the alternation of all case hints: the elementwise maximum
// of lower and upper bounds. Its upper bound covers every case; its lower
// bound is that of the longest case and so is a sizing target, not a
// guarantee for a shorter active case.
func (v Variant[S]) Envelope(s S) SizeHint {
	if len(v.Cases) == 0 {
		return Exact(0)
	}
	h := v.Cases[0].SizeHint(s)
	for _, c := range v.Cases[1:] {
		h = h.Or(c.SizeHint(s))
	}
	return h
}
