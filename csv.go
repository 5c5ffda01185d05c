package fastfmt

import (
	"bytes"
	"encoding/csv"
)

// CSV writes Row as one CSV record, quoting fields as encoding/csv does and
// without the record terminator. Comma is the field delimiter; zero means
// ','. A TSV row uses Comma '\t'.
type CSV[S Strategy] struct {
	Row   []string
	Comma rune
}

// CSVOf wraps fields as a CSV row under S.
func CSVOf[S Strategy](fields ...string) CSV[S] { return CSV[S]{Row: fields} }

func (c CSV[S]) Fmt(w *Writer, _ S) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if c.Comma != 0 {
		cw.Comma = c.Comma
	}
	if err := cw.Write(c.Row); err != nil {
		return w.WriteStr("!(csv: " + err.Error() + ")")
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return w.WriteStr("!(csv: " + err.Error() + ")")
	}
	return w.lit(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
}

// SizeHint: quoting wraps a field in two quotes and doubles the quotes
// inside it.
func (c CSV[S]) SizeHint(S) SizeHint {
	if len(c.Row) == 0 {
		return Exact(0)
	}
	h := Exact(len(c.Row) - 1)
	for _, f := range c.Row {
		h = h.Add(Between(len(f), satAdd(satMul(len(f), 2), 2)))
	}
	return h
}
