package fastfmt

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML writes V as a YAML document under any strategy. Indent sets the
// indentation width; zero keeps the encoder default. The trailing newline is
// dropped so the document can sit inside a composite.
//
// Encoding errors are not sink failures; they are written in place as
// "!(yaml: <error>)".
type YAML[S Strategy] struct {
	V      any
	Indent int
}

// YAMLOf wraps v for strategy S.
func YAMLOf[S Strategy](v any) YAML[S] { return YAML[S]{V: v} }

func (y YAML[S]) Fmt(w *Writer, _ S) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}
	if err := enc.Encode(y.V); err != nil {
		return w.WriteStr("!(yaml: " + err.Error() + ")")
	}
	if err := enc.Close(); err != nil {
		return w.WriteStr("!(yaml: " + err.Error() + ")")
	}
	return w.lit(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
}

// SizeHint makes no estimate: measuring would mean encoding twice.
func (YAML[S]) SizeHint(S) SizeHint { return SizeHint{} }
