// Package format emits a tokenized stream for cmd/icetok: one Formatter
// per output mode (text/csv/json), selected through GetFormatter rather
// than a type switch in the CLI driver.
package format

import (
	"io"

	"github.com/mideind/icetok/tok"
)

// Formatter renders a token stream to w.
// All formatters must implement this interface.
type Formatter interface {
	// Format writes toks to w under opts
	Format(w io.Writer, toks []tok.Tok, opts Options) error

	// Extensions returns file extensions this formatter handles
	Extensions() []string
}

// Options controls formatter behavior
type Options struct {
	// Moses additionally escapes tokens for Moses-style SMT training
	// corpora (spec.md §6's --moses flag): the text formatter replaces
	// "(", ")", "[", "]" and "|" with -lrb-, -rrb-, -lsb-, -rsb- and &#124;.
	Moses bool
}
