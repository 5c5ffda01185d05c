package fastfmt

import (
	"bytes"
	"text/template"
)

// Template writes the result of executing Tmpl with Data under any strategy.
// Execution errors are written in place as "!(template: <error>)".
type Template[S Strategy] struct {
	Tmpl *template.Template
	Data any
}

// TemplateOf binds data to tmpl under S.
func TemplateOf[S Strategy](tmpl *template.Template, data any) Template[S] {
	return Template[S]{Tmpl: tmpl, Data: data}
}

func (t Template[S]) Fmt(w *Writer, _ S) error {
	if t.Tmpl == nil {
		return w.WriteStr("<nil>")
	}
	var buf bytes.Buffer
	if err := t.Tmpl.Execute(&buf, t.Data); err != nil {
		return w.WriteStr("!(template: " + err.Error() + ")")
	}
	return w.lit(buf.String())
}

// SizeHint makes no estimate.
func (Template[S]) SizeHint(S) SizeHint { return SizeHint{} }
