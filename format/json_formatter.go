package format

import (
	"encoding/json"
	"io"

	"github.com/mideind/icetok/tok"
)

// JSONFormatter emits one JSON object per token, one per line: keys k
// (kind description), t (text, omitted for structural tokens) and v
// (value, only when present), per spec.md §6.
type JSONFormatter struct{}

// Extensions returns the file extensions handled by this formatter.
func (f *JSONFormatter) Extensions() []string {
	return []string{".json"}
}

type jsonLine struct {
	K string `json:"k"`
	T string `json:"t,omitempty"`
	V any    `json:"v,omitempty"`
}

// Format writes one json line per token to w.
func (f *JSONFormatter) Format(w io.Writer, toks []tok.Tok, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, t := range toks {
		line := jsonLine{K: t.Kind.String()}
		if t.Txt != "" {
			line.T = t.Txt
		}
		if v, ok := value(t); ok {
			line.V = v
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
