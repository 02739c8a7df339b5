package lexer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/internal/units"
	"github.com/mideind/icetok/tok"
)

// The digit sub-lexer regexes, tried in the priority order of spec.md
// §4.2. Each is anchored at the start of the remaining chunk; since every
// pattern is pure ASCII digits/separators, byte offsets from
// FindStringSubmatchIndex double as rune offsets into the chunk.
var (
	reTime       = regexp.MustCompile(`^([0-2]?[0-9]):([0-5][0-9])(?::([0-5][0-9]))?`)
	reDate       = regexp.MustCompile(`^([0-9]{1,2})[./]([0-9]{1,2})[./]([0-9]{2,4})`)
	reIntLetter  = regexp.MustCompile(`^([0-9]+)([A-Za-z])`)
	reDotThousCommaDec = regexp.MustCompile(`^([0-9]{1,3}(?:\.[0-9]{3})+)(,[0-9]+)?`)
	reCommaThousDotDec = regexp.MustCompile(`^([0-9]{1,3}(?:,[0-9]{3})+)(\.[0-9]+)?`)
	reIntDotThous = regexp.MustCompile(`^([0-9]{1,3}(?:\.[0-9]{3})+)`)
	reSlash      = regexp.MustCompile(`^([0-9]{1,2})/([0-9]{1,2})`)
	reYear       = regexp.MustCompile(`^([0-9]{4})`)
	reTelnoDash  = regexp.MustCompile(`^([0-9]{3})-([0-9]{4})`)
	reTelno7     = regexp.MustCompile(`^([0-9]{7})`)
	reOrdinalDotted = regexp.MustCompile(`^([0-9]{1,3}(?:\.[0-9]{1,3}){1,})\.?`)
	reReal       = regexp.MustCompile(`^([0-9]+)\.([0-9]+)`)
	reInt        = regexp.MustCompile(`^([0-9]+)`)
)

func decimalFromFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// KludgyOrdinalMode controls how forms like "1sti", "4ra" are handled
// (spec.md §6). Recognizing one requires the chunk-scoped adjacency between
// a digit run and the letter run immediately following it, which is only
// available at lexer scan time (tok.Tok carries no cross-token offset to
// reconstruct adjacency after the fact), so the table lookup lives here
// rather than in a pipeline stage.
type KludgyOrdinalMode int

const (
	PassThrough KludgyOrdinalMode = iota
	Modify
	Translate
)

var reKludgyOrdinal = regexp.MustCompile(`^[0-9]+[A-Za-z]+`)

// tryKludgyOrdinal recognizes a digit run immediately followed by a letter
// run at l.text[p:end) and, when l.opts.KludgyOrdinals requests it, looks
// the whole surface form up in definitions.OrdinalErrors (MODIFY, rewrite to
// the spelled-out word) or definitions.OrdinalNumbers (TRANSLATE, emit
// ORDINAL). Reports the new cursor and whether it consumed a match; a
// PassThrough mode or an unrecognized surface form both report false so the
// caller falls back to the ordinary digit/word scan.
func (l *Lexer) tryKludgyOrdinal(p, end int) (int, bool) {
	if l.opts.KludgyOrdinals == PassThrough {
		return p, false
	}
	rest := string(l.text[p:end])
	loc := reKludgyOrdinal.FindStringIndex(rest)
	if loc == nil {
		return p, false
	}
	surface := rest[loc[0]:loc[1]]
	newEnd := p + loc[1]

	switch l.opts.KludgyOrdinals {
	case Translate:
		if n, ok := definitions.OrdinalNumbers[surface]; ok {
			t := l.rawTok(tok.ORDINAL, p, newEnd)
			t.Val.Ordinal = uint64(n)
			l.pending = append(l.pending, t)
			return newEnd, true
		}
	case Modify:
		if word, ok := definitions.OrdinalErrors[surface]; ok {
			t := l.rawTok(tok.WORD, p, newEnd)
			t = t.Substitute(0, t.Len(), word)
			l.pending = append(l.pending, t)
			return newEnd, true
		}
	}
	return p, false
}

// smallFractions are the 1-2 digit "d/d" shapes read as a fraction rather
// than a malformed date, per spec.md §4.2's digit sub-lexer step 7.
var smallFractions = map[[2]int]float64{
	{1, 2}: 0.5, {1, 3}: 1.0 / 3, {2, 3}: 2.0 / 3, {1, 4}: 0.25, {3, 4}: 0.75,
	{1, 5}: 0.2, {2, 5}: 0.4, {3, 5}: 0.6, {4, 5}: 0.8,
	{1, 6}: 1.0 / 6, {5, 6}: 5.0 / 6, {1, 8}: 0.125, {3, 8}: 0.375, {5, 8}: 0.625, {7, 8}: 0.875,
}

func isValidDate(y, m, d int) bool {
	if m < 1 || m > 12 || d < 1 {
		return false
	}
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if m == 2 && y%4 == 0 && (y%100 != 0 || y%400 == 0) {
		days[1] = 29
	}
	return d <= days[m-1]
}

// lexDigits applies the priority-ordered digit sub-lexer at position p and
// returns the new cursor.
func (l *Lexer) lexDigits(p, end int) int {
	rest := string(l.text[p:end])

	// 1. HH:MM(:SS)
	if loc := reTime.FindStringSubmatchIndex(rest); loc != nil {
		h, _ := strconv.Atoi(rest[loc[2]:loc[3]])
		mi, _ := strconv.Atoi(rest[loc[4]:loc[5]])
		sec := 0
		if loc[6] >= 0 {
			sec, _ = strconv.Atoi(rest[loc[6]:loc[7]])
		}
		if h <= 23 && mi <= 59 && sec <= 59 {
			newEnd := p + loc[1]
			t := l.rawTok(tok.TIME, p, newEnd)
			t.Val.Time = tok.Time{Hour: h, Minute: mi, Second: sec}
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 2. d[./]d[./]d{2,4} date
	if loc := reDate.FindStringSubmatchIndex(rest); loc != nil {
		d, _ := strconv.Atoi(rest[loc[2]:loc[3]])
		m, _ := strconv.Atoi(rest[loc[4]:loc[5]])
		yStr := rest[loc[6]:loc[7]]
		y, _ := strconv.Atoi(yStr)
		if len(yStr) == 2 {
			y += 2000
		}
		if d > 12 && m <= 12 {
			d, m = m, d
		}
		if isValidDate(y, m, d) {
			newEnd := p + loc[1]
			t := l.rawTok(tok.DATE, p, newEnd)
			t.Val.Date = tok.Date{Year: y, Month: m, Day: d}
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 3. integer + single trailing letter (not an SI-unit symbol), the
	// letter not itself the start of a longer alphabetic run.
	if loc := reIntLetter.FindStringSubmatchIndex(rest); loc != nil {
		letterStr := rest[loc[4]:loc[5]]
		nextIsLetter := false
		if loc[5] < len(rest) {
			r, _ := utf8.DecodeRuneInString(rest[loc[5]:])
			nextIsLetter = unicode.IsLetter(r)
		}
		if !units.IsUnitSymbol(letterStr) && !nextIsLetter {
			n, _ := strconv.Atoi(rest[loc[2]:loc[3]])
			newEnd := p + loc[5]
			t := l.rawTok(tok.NUMWLETTER, p, newEnd)
			t.Val.NumWLetter = tok.NumWLetter{Number: n, Letter: []rune(letterStr)[0]}
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 4. integer + vulgar fraction character
	if loc := reInt.FindStringSubmatchIndex(rest); loc != nil {
		afterInt := loc[1]
		if afterInt < len(rest) {
			fr := []rune(rest[afterInt:])[0]
			if val, ok := definitions.SinglecharFractions[fr]; ok {
				n, _ := strconv.Atoi(rest[loc[2]:loc[3]])
				newEnd := p + afterInt + 1
				t := l.rawTok(tok.NUMBER, p, newEnd)
				t.Val.Number = decimalFromFloat(float64(n) + val)
				l.pending = append(l.pending, t)
				return newEnd
			}
		}
	}

	// 5. real with dot-thousands/comma-decimal, or comma-thousands/dot-decimal
	//
	// Go's RE2 engine has no lookahead, so the "thousands group isn't
	// immediately followed by another digit" check (a four-digit run like
	// "0134" after the dot in "2.0134,45" is a dot-decimal real, not a
	// thousands group plus leftover digits) is done by rejecting the match
	// in code and falling through to the next priority rule, rather than
	// folding it into the pattern itself.
	if loc := reDotThousCommaDec.FindStringSubmatchIndex(rest); loc != nil && loc[3] > loc[2] && !nextIsDigit(rest, loc[1]) {
		intPart := strings.ReplaceAll(rest[loc[2]:loc[3]], ".", "")
		numStr := intPart
		if loc[4] >= 0 {
			numStr += "." + rest[loc[4]+1:loc[5]]
		}
		if dec, err := decimal.NewFromString(numStr); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = dec
			l.pending = append(l.pending, t)
			return newEnd
		}
	}
	if loc := reCommaThousDotDec.FindStringSubmatchIndex(rest); loc != nil && loc[3] > loc[2] && !nextIsDigit(rest, loc[1]) {
		intPart := strings.ReplaceAll(rest[loc[2]:loc[3]], ",", "")
		numStr := intPart
		if loc[4] >= 0 {
			numStr += rest[loc[4]:loc[5]]
		}
		if dec, err := decimal.NewFromString(numStr); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = dec
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 6. integer with dot thousands
	if loc := reIntDotThous.FindStringSubmatchIndex(rest); loc != nil && !nextIsDigit(rest, loc[1]) {
		intPart := strings.ReplaceAll(rest[loc[2]:loc[3]], ".", "")
		if dec, err := decimal.NewFromString(intPart); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = dec
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 7. d{1,2}/d{1,2}: small fraction, else DATE with year=0
	if loc := reSlash.FindStringSubmatchIndex(rest); loc != nil {
		n, _ := strconv.Atoi(rest[loc[2]:loc[3]])
		d, _ := strconv.Atoi(rest[loc[4]:loc[5]])
		newEnd := p + loc[1]
		if val, ok := smallFractions[[2]int{n, d}]; ok {
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = decimalFromFloat(val)
			l.pending = append(l.pending, t)
			return newEnd
		}
		if d >= 1 && d <= 12 && n >= 1 {
			t := l.rawTok(tok.DATE, p, newEnd)
			t.Val.Date = tok.Date{Year: 0, Month: d, Day: n}
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 8. four-digit year in [1776, 2100] at end of chunk or followed by non-digit
	if loc := reYear.FindStringSubmatchIndex(rest); loc != nil {
		atChunkEnd := p+loc[1] == end
		followedByNonDigit := p+loc[1] < end && !isDigitRune(l.text[p+loc[1]])
		if atChunkEnd || followedByNonDigit {
			y, _ := strconv.Atoi(rest[loc[2]:loc[3]])
			if y >= 1776 && y <= 2100 {
				newEnd := p + loc[1]
				t := l.rawTok(tok.YEAR, p, newEnd)
				t.Val.Year = y
				l.pending = append(l.pending, t)
				return newEnd
			}
		}
	}

	// 9. NNN-NNNN or seven consecutive digits -> TELNO
	if loc := reTelnoDash.FindStringSubmatchIndex(rest); loc != nil {
		newEnd := p + loc[1]
		t := l.rawTok(tok.TELNO, p, newEnd)
		t.Val.Telno = tok.Telno{Normalized: rest[loc[2]:loc[3]] + "-" + rest[loc[4]:loc[5]], CountryCode: "354"}
		l.pending = append(l.pending, t)
		return newEnd
	}
	if loc := reTelno7.FindStringSubmatchIndex(rest); loc != nil {
		digits := rest[loc[2]:loc[3]]
		newEnd := p + loc[1]
		t := l.rawTok(tok.TELNO, p, newEnd)
		t.Val.Telno = tok.Telno{Normalized: digits[:3] + "-" + digits[3:], CountryCode: "354"}
		l.pending = append(l.pending, t)
		return newEnd
	}

	// 10. dotted chapter numbering N.N(.N)+ -> ORDINAL, dots removed
	if loc := reOrdinalDotted.FindStringSubmatchIndex(rest); loc != nil && !nextIsDigit(rest, loc[1]) {
		digitsOnly := strings.ReplaceAll(rest[loc[2]:loc[3]], ".", "")
		if n, err := strconv.ParseUint(digitsOnly, 10, 64); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.ORDINAL, p, newEnd)
			t.Val.Ordinal = n
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 11. real with optional thousands separator (plain d+.d+)
	if loc := reReal.FindStringSubmatchIndex(rest); loc != nil {
		if dec, err := decimal.NewFromString(rest[loc[0]:loc[1]]); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = dec
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 12. integer with optional thousands separator (plain digit run)
	if loc := reInt.FindStringSubmatchIndex(rest); loc != nil {
		if dec, err := decimal.NewFromString(rest[loc[2]:loc[3]]); err == nil {
			newEnd := p + loc[1]
			t := l.rawTok(tok.NUMBER, p, newEnd)
			t.Val.Number = dec
			l.pending = append(l.pending, t)
			return newEnd
		}
	}

	// 13. fallback
	l.pending = append(l.pending, l.rawTok(tok.UNKNOWN, p, p+1))
	return p + 1
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

// nextIsDigit reports whether rest[pos:] begins with a digit, used to
// reject a thousands-group match that's actually a prefix of a longer
// digit run (RE2 has no lookahead to fold this into the pattern itself).
func nextIsDigit(rest string, pos int) bool {
	if pos >= len(rest) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest[pos:])
	return isDigitRune(r)
}
