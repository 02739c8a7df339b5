package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/mideind/icetok/internal/detok"
	"github.com/mideind/icetok/tok"
)

// TextFormatter emits detokenized sentences, one per line. It is the
// default formatter (spec.md §6): no --csv/--json flag selects it.
type TextFormatter struct{}

// Extensions returns the file extensions handled by this formatter.
func (f *TextFormatter) Extensions() []string {
	return []string{".txt"}
}

var mosesEscaper = strings.NewReplacer(
	"(", "-lrb-",
	")", "-rrb-",
	"[", "-lsb-",
	"]", "-rsb-",
	"|", "&#124;",
)

// Format writes one detokenized sentence per line to w.
func (f *TextFormatter) Format(w io.Writer, toks []tok.Tok, opts Options) error {
	for _, sentence := range splitSentences(toks) {
		line := detok.Detokenize(sentence, detok.Options{})
		if opts.Moses {
			line = mosesEscaper.Replace(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// splitSentences groups toks into one slice per S_BEGIN/S_END pair (or, for
// a stream with no sentence boundaries at all, the whole stream as a
// single sentence).
func splitSentences(toks []tok.Tok) [][]tok.Tok {
	var sentences [][]tok.Tok
	var cur []tok.Tok
	sawBoundary := false

	flush := func() {
		if len(cur) > 0 {
			sentences = append(sentences, cur)
			cur = nil
		}
	}

	for _, t := range toks {
		switch t.Kind {
		case tok.S_BEGIN:
			sawBoundary = true
			flush()
		case tok.S_END:
			sawBoundary = true
			flush()
		case tok.P_BEGIN, tok.P_END, tok.X_END:
			sawBoundary = true
		default:
			cur = append(cur, t)
		}
	}
	flush()

	if !sawBoundary && len(toks) > 0 {
		return [][]tok.Tok{toks}
	}
	return sentences
}
