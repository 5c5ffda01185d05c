package fastfmt

// Fields is a statically typed list of named fields: a single [Member], or
// members joined with [And]. Only this package implements it.
type Fields[S Strategy] interface {
	fmtFields(w *Writer, s S, l layout, first bool) error
	fieldsHint(s S, l layout, first bool) SizeHint
}

// layout holds the connectives a [Struct] writes between its fields.
type layout struct {
	sep    string
	assign string
}

// Member is one named field of a [Struct]. Its value keeps its concrete type.
type Member[S Strategy, V Fmt[S]] struct {
	Name  string
	Value V
}

// MemberOf names v under S: MemberOf[Display]("x", IntOf[Display](1)).
func MemberOf[S Strategy, V Fmt[S]](name string, v V) Member[S, V] {
	return Member[S, V]{Name: name, Value: v}
}

func (m Member[S, V]) fmtFields(w *Writer, s S, l layout, first bool) error {
	if !first {
		if err := w.lit(l.sep); err != nil {
			return err
		}
	}
	if err := w.lit(m.Name); err != nil {
		return err
	}
	if err := w.lit(l.assign); err != nil {
		return err
	}
	return m.Value.Fmt(w, s)
}

func (m Member[S, V]) fieldsHint(s S, l layout, first bool) SizeHint {
	h := Exact(len(m.Name) + len(l.assign))
	if !first {
		h = h.Plus(len(l.sep))
	}
	return h.Add(m.Value.SizeHint(s))
}

// FieldPair is the fields of First followed by the fields of Rest.
type FieldPair[S Strategy, A Fields[S], B Fields[S]] struct {
	First A
	Rest  B
}

// And joins two field lists: And[Display](MemberOf[Display]("a", x), MemberOf[Display]("b", y)).
// Longer lists nest: And[S](a, And[S](b, c)).
func And[S Strategy, A Fields[S], B Fields[S]](a A, b B) FieldPair[S, A, B] {
	return FieldPair[S, A, B]{First: a, Rest: b}
}

func (p FieldPair[S, A, B]) fmtFields(w *Writer, s S, l layout, first bool) error {
	if err := p.First.fmtFields(w, s, l, first); err != nil {
		return err
	}
	return p.Rest.fmtFields(w, s, l, false)
}

func (p FieldPair[S, A, B]) fieldsHint(s S, l layout, first bool) SizeHint {
	return p.First.fieldsHint(s, l, first).Add(p.Rest.fieldsHint(s, l, false))
}

// Struct is the statically dispatched form of [Record]: the field list is a
// type, so every field is formatted through its concrete Fmt method.
// Output and hints match a Record with the same fields and connectives.
type Struct[S Strategy, F Fields[S]] struct {
	Name   string
	Fields F
	Open   string
	Sep    string
	Close  string
	Assign string
}

// StructOf returns a struct with the default connectives, written as
// Name{a: 1, b: 2}.
func StructOf[S Strategy, F Fields[S]](name string, fields F) Struct[S, F] {
	return Struct[S, F]{Name: name, Fields: fields, Open: "{", Sep: ", ", Close: "}", Assign: ": "}
}

func (r Struct[S, F]) Fmt(w *Writer, s S) error {
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
	if err := r.Fields.fmtFields(w, s, r.layout(), true); err != nil {
		return err
	}
	return w.lit(r.Close)
}

func (r Struct[S, F]) SizeHint(s S) SizeHint {
	return Exact(len(r.Name) + len(r.Open) + len(r.Close)).Add(r.Fields.fieldsHint(s, r.layout(), true))
}

func (r Struct[S, F]) layout() layout { return layout{sep: r.Sep, assign: r.Assign} }

// Either is the statically dispatched two-case sum type: Left, or Right when
// IsRight is set. Like [Variant], its SizeHint is the active case's and
// [Either.Envelope] is the alternation of both.
type Either[S Strategy, A Fmt[S], B Fmt[S]] struct {
	Left    A
	Right   B
	IsRight bool
}

// Left selects a; the other case's type is named explicitly:
// Left[Display, Int[Display]](StrOf[Display]("none")).
func Left[S Strategy, B Fmt[S], A Fmt[S]](a A) Either[S, A, B] {
	return Either[S, A, B]{Left: a}
}

// Right selects b: Right[Display, Str[Display]](IntOf[Display](7)).
func Right[S Strategy, A Fmt[S], B Fmt[S]](b B) Either[S, A, B] {
	return Either[S, A, B]{Right: b, IsRight: true}
}

func (e Either[S, A, B]) Fmt(w *Writer, s S) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	if e.IsRight {
		return e.Right.Fmt(w, s)
	}
	return e.Left.Fmt(w, s)
}

func (e Either[S, A, B]) SizeHint(s S) SizeHint {
	if e.IsRight {
		return e.Right.SizeHint(s)
	}
	return e.Left.SizeHint(s)
}

// Envelope returns the alternation of both case hints.
func (e Either[S, A, B]) Envelope(s S) SizeHint {
	return e.Left.SizeHint(s).Or(e.Right.SizeHint(s))
}
