package pipeline

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/mideind/icetok/tok"
)

// SurfaceFormatter is a final presentation pass (spec.md §6): it rewrites a
// token's Txt from its already-computed Val when the corresponding
// convert_* option is enabled, without touching Kind, Val or Original. It
// needs no lookahead, so unlike the numbered stages it is a plain
// one-in-one-out wrapper.
type SurfaceFormatter struct {
	src  TokenSource
	opts Options
}

// NewSurfaceFormatter wraps src with the convert_numbers/convert_telnos/
// convert_measurements presentation rewrites.
func NewSurfaceFormatter(src TokenSource, opts Options) *SurfaceFormatter {
	return &SurfaceFormatter{src: src, opts: opts}
}

func (s *SurfaceFormatter) Next() (tok.Tok, bool) {
	t, ok := s.src.Next()
	if !ok {
		return tok.Tok{}, false
	}
	switch t.Kind {
	case tok.NUMBER:
		if s.opts.ConvertNumbers {
			t = rewriteIcelandicNumber(t)
		}
	case tok.TELNO:
		if s.opts.ConvertTelnos {
			t = rewriteTelno(t)
		}
	case tok.MEASUREMENT:
		if s.opts.ConvertMeasurements {
			t = canonicalizeMeasurementSurface(t)
		}
	}
	return t, true
}

// rewriteIcelandicNumber replaces t.Txt outright with t.Val.Number formatted
// in Icelandic convention (comma decimal separator, dot-grouped thousands),
// regardless of how the source text originally punctuated it.
func rewriteIcelandicNumber(t tok.Tok) tok.Tok {
	return t.Substitute(0, t.Len(), formatIcelandicNumber(t.Val.Number))
}

// formatIcelandicNumber renders d the way Icelandic text punctuates numbers:
// "." groups the integer part into thousands, "," introduces the fraction.
func formatIcelandicNumber(d decimal.Decimal) string {
	sign := ""
	if d.Sign() < 0 {
		sign = "-"
		d = d.Neg()
	}
	parts := strings.SplitN(d.String(), ".", 2)
	out := sign + groupThousands(parts[0], '.')
	if len(parts) == 2 {
		out += "," + parts[1]
	}
	return out
}

// groupThousands inserts sep every three digits from the right of s, an
// ASCII digit string with no sign.
func groupThousands(s string, sep rune) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// rewriteTelno replaces t.Txt with its already-computed normalized form
// (spec.md §4.2's TELNO sub-lexer always fills Val.Telno.Normalized).
func rewriteTelno(t tok.Tok) tok.Tok {
	norm := t.Val.Telno.Normalized
	if norm == "" {
		return t
	}
	return t.Substitute(0, t.Len(), norm)
}

// canonicalizeMeasurementSurface ensures exactly one space separates a
// MEASUREMENT's leading numeric surface from its trailing unit surface
// ("200° C" and "200°C" both become "200 °C"), without touching the
// already-converted Val.
func canonicalizeMeasurementSurface(t tok.Tok) tok.Tok {
	rs := []rune(t.Txt)
	i := 0
	for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.' || rs[i] == ',' || rs[i] == '-') {
		i++
	}
	if i == 0 || i >= len(rs) {
		return t
	}
	j := i
	for j < len(rs) && rs[j] == ' ' {
		j++
	}
	if j == i+1 {
		// Exactly one separating space already.
		return t
	}
	return t.Substitute(i, j, " ")
}
