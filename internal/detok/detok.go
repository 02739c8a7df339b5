// Package detok implements the spacing-reconstruction engine (spec.md
// §4.8): both the plain-string correct_spaces utility and the token-level
// Detokenize that drives the public facade's Detokenize/CorrectSpaces.
package detok

import (
	"strings"
	"unicode"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/tok"
)

// Options controls the optional normalization pass (spec.md §4.8).
type Options struct {
	Normalize bool
}

// classify returns the spacing class of a single rendered piece of text:
// single punctuation runes look their class up in the LEFT/CENTER/RIGHT/NONE
// sets; anything longer than one rune defaults to SpaceWord.
func classify(w string) definitions.SpacingClass {
	rs := []rune(w)
	if len(rs) != 1 {
		return definitions.SpaceWord
	}
	if cls, ok := definitions.ClassOf(rs[0]); ok {
		return cls
	}
	return definitions.SpaceWord
}

// CorrectSpaces re-splits an arbitrary string on whitespace/punctuation
// boundaries and re-renders it with the canonical spacing matrix, exactly
// as the original correct_spaces utility (spec.md §6).
func CorrectSpaces(s string) string {
	var b strings.Builder
	last := definitions.SpaceNone
	first := true

	for _, w := range splitWords(s) {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		cls := classify(w)
		if !first && definitions.SpacingMatrix[last][cls] {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		last = cls
		first = false
	}
	return b.String()
}

// splitWords breaks s into words and single punctuation runes, mirroring
// the original tokenizer's RE_SPLIT: every run of non-space, non-punctuation
// characters is one piece; every punctuation character not embedded inside
// a word is its own piece.
func splitWords(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isLoneSeparatorPunct(r):
			flush()
			out = append(out, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func isLoneSeparatorPunct(r rune) bool {
	if definitions.PunctInsideWord[r] {
		return false
	}
	_, known := definitions.ClassOf(r)
	return known
}

// Detokenize reconstructs spaced, normalized text from a token stream
// (spec.md §4.8). Structural tokens (P_BEGIN/P_END/S_BEGIN/S_END) render no
// text; S_BEGIN/S_END delimit sentences, which are joined by a single space.
func Detokenize(toks []tok.Tok, opts Options) string {
	var sentences [][]string
	var cur []string

	flushSentence := func() {
		if len(cur) > 0 {
			sentences = append(sentences, cur)
			cur = nil
		}
	}

	for _, t := range toks {
		switch t.Kind {
		case tok.S_BEGIN:
			flushSentence()
		case tok.S_END:
			flushSentence()
		case tok.P_BEGIN, tok.P_END, tok.X_END:
			// no text rendered
		default:
			cur = append(cur, renderPiece(t))
		}
	}
	flushSentence()

	rendered := make([]string, len(sentences))
	for i, pieces := range sentences {
		rendered[i] = renderPieces(pieces, toks)
	}
	text := strings.Join(rendered, " ")
	if opts.Normalize {
		text = normalize(text)
	}
	return text
}

// renderPiece returns the literal text a token contributes to the
// reconstructed output.
func renderPiece(t tok.Tok) string {
	return t.Txt
}

// renderPieces re-applies the spacing matrix across a sentence's already
// rendered pieces, classifying each piece by its text alone (see classify):
// a single punctuation rune takes its punctuation class, and any other piece,
// including multi-rune punctuation such as "...", is SpaceWord.
func renderPieces(pieces []string, _ []tok.Tok) string {
	var b strings.Builder
	last := definitions.SpaceNone
	first := true
	for _, p := range pieces {
		cls := classify(p)
		if !first && definitions.SpacingMatrix[last][cls] {
			b.WriteByte(' ')
		}
		b.WriteString(p)
		last = cls
		first = false
	}
	return b.String()
}

// normalize applies spec.md §4.8's optional rewrite pass: straight quotes to
// Icelandic open/close quotes, sentence-end punctuation run collapsing,
// canonical dash/ellipsis forms, HH:MM(:SS) joining, and YYYY - YYYY to
// YYYY–YYYY.
func normalize(s string) string {
	s = normalizeQuotes(s)
	s = collapseEndPunctRuns(s)
	s = normalizeDashesAndEllipses(s)
	s = joinClockTimes(s)
	s = normalizeYearRanges(s)
	return s
}

// normalizeQuotes rewrites straight double/single quotes to the Icelandic
// „lower-open/upper-close” pair, alternating open/close on each occurrence.
func normalizeQuotes(s string) string {
	var b strings.Builder
	doubleOpen := true
	singleOpen := true
	for _, r := range s {
		switch r {
		case '"':
			if doubleOpen {
				b.WriteRune('„')
			} else {
				b.WriteRune('“')
			}
			doubleOpen = !doubleOpen
		case '\'':
			if singleOpen {
				b.WriteRune('‚')
			} else {
				b.WriteRune('‘')
			}
			singleOpen = !singleOpen
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseEndPunctRuns squashes repeated sentence-end punctuation ("!!!",
// "??", "..") down to a single mark; a run of three or more periods becomes
// one "…".
func collapseEndPunctRuns(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if (r == '!' || r == '?' || r == '.') && i+1 < len(rs) && rs[i+1] == r {
			j := i
			for j+1 < len(rs) && rs[j+1] == r {
				j++
			}
			if j-i+1 >= 3 && r == '.' {
				b.WriteString("…")
			} else {
				b.WriteRune(r)
			}
			i = j
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var dashEllipsisReplacer = strings.NewReplacer(
	" - ", " – ",
	"...", "…",
)

func normalizeDashesAndEllipses(s string) string {
	return dashEllipsisReplacer.Replace(s)
}

// joinClockTimes removes the space the spacing matrix otherwise inserts
// around ':' inside an "HH:MM" or "HH:MM:SS" run.
func joinClockTimes(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		if rs[i] == ' ' && i > 0 && i+1 < len(rs) && unicode.IsDigit(rs[i-1]) && rs[i+1] == ':' {
			continue
		}
		if rs[i] == ' ' && i > 0 && rs[i-1] == ':' && i+1 < len(rs) && unicode.IsDigit(rs[i+1]) {
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

// normalizeYearRanges maps "YYYY - YYYY" to "YYYY–YYYY".
func normalizeYearRanges(s string) string {
	rs := []rune(s)
	var b strings.Builder
	i := 0
	for i < len(rs) {
		if isYearAt(rs, i) {
			j := i + 4
			if j+3 < len(rs) && rs[j] == ' ' && rs[j+1] == '–' && rs[j+2] == ' ' && isYearAt(rs, j+3) {
				b.WriteString(string(rs[i:j]))
				b.WriteString("–")
				b.WriteString(string(rs[j+3 : j+7]))
				i = j + 7
				continue
			}
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

func isYearAt(rs []rune, i int) bool {
	if i+4 > len(rs) {
		return false
	}
	for k := i; k < i+4; k++ {
		if !unicode.IsDigit(rs[k]) {
			return false
		}
	}
	return true
}
