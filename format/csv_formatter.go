package format

import (
	"fmt"
	"io"

	"github.com/mideind/icetok/tok"
)

// CSVFormatter emits one CSV record per token: kind,"txt","val" (spec.md
// §6). Tokens with no Txt (structural boundaries) are skipped, matching
// the original tokenizer CLI's `if t.txt:` guard.
type CSVFormatter struct{}

// Extensions returns the file extensions handled by this formatter.
func (f *CSVFormatter) Extensions() []string {
	return []string{".csv"}
}

// Format writes toks as CSV rows to w.
func (f *CSVFormatter) Format(w io.Writer, toks []tok.Tok, opts Options) error {
	for _, t := range toks {
		if t.Txt == "" {
			continue
		}
		val := ""
		if v, ok := value(t); ok {
			if s, isStr := v.(string); isStr {
				val = quoteCSV(s)
			} else {
				val = fmt.Sprint(v)
			}
		}
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", t.Kind.String(), quoteCSV(t.Txt), val); err != nil {
			return err
		}
	}
	return nil
}

// quoteCSV double-quotes s with backslash-escaped embedded backslashes and
// quotes, matching the original tokenizer CLI's quote() helper (this is
// not RFC 4180 CSV, but the format spec.md §6 names).
func quoteCSV(s string) string {
	var b []byte
	b = append(b, '"')
	for _, r := range s {
		if r == '\\' || r == '"' {
			b = append(b, '\\')
		}
		b = append(b, string(r)...)
	}
	b = append(b, '"')
	return string(b)
}
