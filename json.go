package fastfmt

import (
	"bytes"
	"encoding/json"
)

// JSON writes V encoded as JSON under any strategy, without HTML escaping and
// without the encoder's trailing newline. Indent, when set, is the
// per-level indentation.
//
// Encoding errors are written in place as "!(json: <error>)".
type JSON[S Strategy] struct {
	V      any
	Indent string
}

// JSONOf wraps v for strategy S.
func JSONOf[S Strategy](v any) JSON[S] { return JSON[S]{V: v} }

func (j JSON[S]) Fmt(w *Writer, _ S) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(j.V); err != nil {
		return w.WriteStr("!(json: " + err.Error() + ")")
	}
	return w.lit(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
}

// SizeHint makes no estimate.
func (JSON[S]) SizeHint(S) SizeHint { return SizeHint{} }
