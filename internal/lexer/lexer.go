// Package lexer implements stage 1 of the tokenization pipeline (spec.md
// §4.2): a character-class raw lexer that turns preprocessed source text
// into a lazy stream of coarse Tok values with bit-exact origin tracking.
// The cursor style (rune buffer + explicit position, readX per shape)
// follows the teacher's spec/lexer.Lexer; the chunk/sub-lexer dispatch is
// this tokenizer's own, since the teacher lexes an expression grammar
// rather than natural-language text.
package lexer

import (
	"regexp"
	"unicode"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/internal/units"
	"github.com/mideind/icetok/tok"
)

// Lexer scans preprocessed source text into Tok values one whitespace
// chunk at a time, queuing any extra tokens a chunk expands into (quote
// interiors, multi-piece digit runs) so Next always returns exactly one.
type Lexer struct {
	text    []rune
	origins []int
	original []rune

	opts Options

	pos     int
	pending []tok.Tok
}

// New builds a Lexer over input, running the preprocessing passes
// described by opts.
func New(input string, opts Options) *Lexer {
	original := []rune(input)
	text, origins := preprocess(original, opts)
	return &Lexer{text: text, origins: origins, original: original, opts: opts}
}

// Next returns the next token and true, or a zero Tok and false at end of
// input. This is the "pending token slot" state machine spec.md §9 asks
// pipeline stages to use instead of a deep-recursion generator.
func (l *Lexer) Next() (tok.Tok, bool) {
	for len(l.pending) == 0 {
		if !l.fillChunk() {
			return tok.Tok{}, false
		}
	}
	t := l.pending[0]
	l.pending = l.pending[1:]
	return t, true
}

// All drains the lexer into a slice. Used by tests and by the stage-1-only
// debug surface (generate_raw_tokens).
func (l *Lexer) All() []tok.Tok {
	var out []tok.Tok
	for {
		t, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }

// fillChunk advances past one run of whitespace, lexes the following
// non-whitespace chunk, and queues its tokens. Reports false once the
// buffer is exhausted.
func (l *Lexer) fillChunk() bool {
	sawNewline := false
	for l.pos < len(l.text) && isSpace(l.text[l.pos]) {
		if l.text[l.pos] == '\n' {
			sawNewline = true
		}
		l.pos++
	}
	if l.pos >= len(l.text) {
		return false
	}
	if sawNewline && l.opts.OneSentPerLine {
		l.pending = append(l.pending, tok.Structural(tok.S_SPLIT))
	}
	start := l.pos
	for l.pos < len(l.text) && !isSpace(l.text[l.pos]) {
		l.pos++
	}
	l.lexChunk(start, l.pos)
	return true
}

// rawTok builds a Tok for l.text[start:end), deriving Original and Spans
// from the origins map (spec.md §4.1's invariant: Spans non-decreasing,
// bounded by len(Original)-1).
func (l *Lexer) rawTok(kind tok.Kind, start, end int) tok.Tok {
	if end <= start {
		return tok.Tok{Kind: kind}
	}
	lowerOrig := l.origins[start]
	var upperOrig int
	if end < len(l.origins) {
		upperOrig = l.origins[end]
		if upperOrig <= lowerOrig {
			upperOrig = lowerOrig + 1
		}
	} else {
		upperOrig = len(l.original)
	}
	if upperOrig > len(l.original) {
		upperOrig = len(l.original)
	}
	original := string(l.original[lowerOrig:upperOrig])
	spans := make([]int, end-start)
	for i := start; i < end; i++ {
		spans[i-start] = l.origins[i] - lowerOrig
	}
	return tok.Tok{Kind: kind, Txt: string(l.text[start:end]), Original: original, Spans: spans}
}

// punctTok builds a single-rune PUNCTUATION token and stamps its spacing
// class (spec.md §6's LEFT/CENTER/RIGHT/NONE classes; unrecognized runes
// default to WORD-like spacing per convention).
func (l *Lexer) punctTok(start, end int) tok.Tok {
	t := l.rawTok(tok.PUNCTUATION, start, end)
	if end-start == 1 {
		cls, _ := definitions.ClassOf(l.text[start])
		t.Val.Spacing = cls
	} else {
		t.Val.Spacing = definitions.SpaceWord
	}
	return t
}

func isAllAlphabetic(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(rs) > 0
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+(\.[^@\s."”,/:;]+)+`)

// lexChunk applies the rule ladder of spec.md §4.2 to one whitespace
// chunk [start,end) and appends the resulting tokens to l.pending.
func (l *Lexer) lexChunk(start, end int) {
	chunk := l.text[start:end]

	// Rule 1: entirely alphabetic, or a known SI-unit symbol.
	if isAllAlphabetic(chunk) || units.IsUnitSymbol(string(chunk)) {
		l.pending = append(l.pending, l.wordTok(start, end))
		return
	}

	// Rule 2: symmetrically quoted chunk.
	if end-start >= 2 {
		first, last := chunk[0], chunk[len(chunk)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			l.lexQuoted(start, end, first)
			return
		}
	}

	// Rule 3: general left-to-right scan with sub-lexers.
	l.scan(start, end)
}

func (l *Lexer) wordTok(start, end int) tok.Tok {
	t := l.rawTok(tok.WORD, start, end)
	return t
}

func openCloseQuote(ascii rune) (open, closing rune) {
	if ascii == '\'' {
		return '‚', '‘'
	}
	return '„', '“'
}

func (l *Lexer) lexQuoted(start, end int, ascii rune) {
	open, closeRune := openCloseQuote(ascii)
	l.pending = append(l.pending, l.quoteMark(start, start+1, open))
	if end-1 > start+1 {
		l.lexChunk(start+1, end-1)
	}
	l.pending = append(l.pending, l.quoteMark(end-1, end, closeRune))
}

func (l *Lexer) quoteMark(start, end int, glyph rune) tok.Tok {
	t := l.rawTok(tok.PUNCTUATION, start, end)
	t = t.Substitute(0, t.Len(), string(glyph))
	cls, _ := definitions.ClassOf(glyph)
	t.Val.Spacing = cls
	return t
}

// scan is the rule-3 left-to-right pass over [start,end): punctuation is
// emitted rune-by-rune except where a specialized sub-lexer recognizes a
// longer shape at the current position.
func (l *Lexer) scan(start, end int) {
	p := start
	for p < end {
		r := l.text[p]

		switch {
		case matchRunes(l.text, p, end, "[["):
			l.pending = append(l.pending, tok.Structural(tok.P_BEGIN))
			p += 2
			continue
		case matchRunes(l.text, p, end, "]]"):
			l.pending = append(l.pending, tok.Structural(tok.P_END))
			p += 2
			continue
		case matchRunes(l.text, p, end, "[...]"):
			t := l.rawTok(tok.PUNCTUATION, p, p+5)
			t = t.Substitute(0, t.Len(), "[…]")
			t.Val.Spacing = definitions.SpaceRight
			l.pending = append(l.pending, t)
			p += 5
			continue
		case matchRunes(l.text, p, end, "[…]"):
			t := l.rawTok(tok.PUNCTUATION, p, p+3)
			t.Val.Spacing = definitions.SpaceRight
			l.pending = append(l.pending, t)
			p += 3
			continue
		}

		if matchesAnyPrefix(l.text, p, end, definitions.URLPrefixes) {
			p = l.lexURL(p, end)
			continue
		}

		if emailRE.MatchString(string(l.text[p:end])) {
			loc := emailRE.FindStringIndex(string(l.text[p:end]))
			// loc is a byte offset into the chunk substring; since emailRE
			// only matches ASCII-shaped addresses this equals a rune offset.
			newEnd := p + loc[1]
			l.pending = append(l.pending, l.rawTok(tok.EMAIL, p, newEnd))
			p = newEnd
			continue
		}

		if unicode.IsDigit(r) {
			if newEnd, ok := l.tryKludgyOrdinal(p, end); ok {
				p = newEnd
				continue
			}
			p = l.lexDigits(p, end)
			continue
		}

		if unicode.IsLetter(r) {
			p = l.lexWordRun(p, end)
			continue
		}

		if val, ok := definitions.SinglecharFractions[r]; ok {
			t := l.rawTok(tok.NUMBER, p, p+1)
			t.Val.Number = decimalFromFloat(val)
			l.pending = append(l.pending, t)
			p++
			continue
		}

		if definitions.CompositeHyphens[r] || r == definitions.EmDash {
			q := p
			for q < end && (definitions.CompositeHyphens[l.text[q]] || l.text[q] == definitions.EmDash) {
				q++
			}
			t := l.rawTok(tok.PUNCTUATION, p, q)
			t = t.Substitute(0, t.Len(), "-")
			t.Val.Spacing = definitions.SpaceNone
			l.pending = append(l.pending, t)
			p = q
			continue
		}

		// Fallback: classified punctuation, else UNKNOWN.
		if _, known := definitions.ClassOf(r); known {
			l.pending = append(l.pending, l.punctTok(p, p+1))
		} else {
			l.pending = append(l.pending, l.rawTok(tok.UNKNOWN, p, p+1))
		}
		p++
	}
}

// lexWordRun consumes a run of letters, allowing the inner punctuation
// runes '.'´‘’ to appear as long as another letter follows — the O'Malley
// / mbl.is allowance of spec.md §4.2 — then splits accidental
// lowercase-period-uppercase run-together sentences back apart.
func (l *Lexer) lexWordRun(start, end int) int {
	p := start
	for p < end {
		r := l.text[p]
		if unicode.IsLetter(r) {
			p++
			continue
		}
		if definitions.PunctInsideWord[r] && p+1 < end && unicode.IsLetter(l.text[p+1]) {
			p++
			continue
		}
		break
	}
	l.emitWordRunSplit(start, p)
	return p
}

// emitWordRunSplit splits "sjávarútvegi.Það"-style run-together sentences
// (a '.' directly between a lowercase and an uppercase letter) into WORD,
// ".", WORD, recursing on the remainder.
func (l *Lexer) emitWordRunSplit(start, end int) {
	for i := start; i < end-1; i++ {
		if l.text[i] == '.' && i > start && i+1 < end &&
			unicode.IsLower(l.text[i-1]) && unicode.IsUpper(l.text[i+1]) {
			l.pending = append(l.pending, l.wordTok(start, i))
			l.pending = append(l.pending, l.punctTok(i, i+1))
			l.emitWordRunSplit(i+1, end)
			return
		}
	}
	l.pending = append(l.pending, l.wordTok(start, end))
}

// lexURL consumes a URL starting at p (already matched against
// URLPrefixes), trimming any trailing RIGHT_PUNCTUATION back out of the
// token so a sentence-final "." stays a separate PUNCTUATION.
func (l *Lexer) lexURL(p, end int) int {
	stop := end
	for stop > p && definitions.RightPunctuation[l.text[stop-1]] {
		stop--
	}
	if stop > p {
		l.pending = append(l.pending, l.rawTok(tok.URL, p, stop))
	}
	for q := stop; q < end; q++ {
		l.pending = append(l.pending, l.punctTok(q, q+1))
	}
	return end
}

func matchRunes(buf []rune, pos, end int, s string) bool {
	rs := []rune(s)
	if pos+len(rs) > end {
		return false
	}
	for i, r := range rs {
		if buf[pos+i] != r {
			return false
		}
	}
	return true
}

func matchesAnyPrefix(buf []rune, pos, end int, prefixes []string) bool {
	for _, p := range prefixes {
		if matchRunes(buf, pos, end, p) {
			return true
		}
	}
	return false
}
