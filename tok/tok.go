package tok

import "strings"

// Tok is the token record passed between every pipeline stage. Txt is the
// normalized surface text; Original is the exact source substring the token
// derives from (including stripped whitespace and expanded escapes); Spans
// is a dense per-rune origin index with len(Spans) == len([]rune(Txt)).
//
// Invariant (spec.md §3): Spans is non-decreasing and every entry is
// strictly less than len([]rune(Original)). Every edit operation below
// maintains this invariant; callers that build a Tok by hand must do the
// same.
type Tok struct {
	Kind     Kind
	Txt      string
	Val      Val
	Original string
	Spans    []int
}

// runes is a small helper: []rune(s) is used pervasively because Spans
// indexes runes, not bytes (Icelandic text is full of multi-byte letters).
func runes(s string) []rune { return []rune(s) }

// New builds a Tok whose entire Txt maps 1:1 onto the start of Original.
// Used by the raw lexer when a chunk is consumed without internal edits.
func New(kind Kind, txt, original string) Tok {
	rs := runes(txt)
	spans := make([]int, len(rs))
	for i := range spans {
		spans[i] = i
	}
	return Tok{Kind: kind, Txt: txt, Original: original, Spans: spans}
}

// Structural builds a paragraph/sentence boundary or sentinel token: it
// carries no text and no origin spans.
func Structural(kind Kind) Tok {
	return Tok{Kind: kind}
}

// Split returns two tokens such that L.Txt+R.Txt == t.Txt. k counts runes
// from the left; a negative k counts from the right (spec.md §4.1).
// L's Original holds everything before the first source index used by
// R.Txt, so it keeps L's own leading whitespace and any source text between
// the two halves; R's Original begins at the first source index used by
// R.Txt.
func (t Tok) Split(k int) (Tok, Tok) {
	rs := runes(t.Txt)
	n := len(rs)
	if k < 0 {
		k = n + k
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	origRunes := runes(t.Original)
	L := Tok{Kind: t.Kind, Txt: string(rs[:k]), Spans: append([]int(nil), t.Spans[:k]...)}
	R := Tok{Kind: t.Kind, Txt: string(rs[k:]), Spans: append([]int(nil), t.Spans[k:]...)}

	switch {
	case k == 0:
		// Empty left: it owns no source text at all.
		L.Original = ""
		R.Original = t.Original
	case k == n:
		L.Original = t.Original
		R.Original = ""
	default:
		splitAt := t.Spans[k] // first original index used by R
		L.Original = string(origRunes[:splitAt])
		R.Original = string(origRunes[splitAt:])
		// Re-base R's spans onto its own Original.
		for i := range R.Spans {
			R.Spans[i] -= splitAt
		}
	}
	return L, R
}

// Substitute replaces t.Txt[lo:hi) (rune offsets) with replacement. Original
// is unchanged; every rune of replacement is pinned to the last original
// index covered by the removed slice, so that source text following the
// edit still has somewhere to attach (spec.md §4.1). An empty replacement
// removes the slice outright.
func (t Tok) Substitute(lo, hi int, replacement string) Tok {
	return t.substituteLonger(lo, hi, replacement)
}

// SubstituteLonger is Substitute generalized to replacements longer than
// hi-lo: the extra trailing runes repeat the same pinned destination index.
func (t Tok) SubstituteLonger(lo, hi int, replacement string) Tok {
	return t.substituteLonger(lo, hi, replacement)
}

func (t Tok) substituteLonger(lo, hi int, replacement string) Tok {
	rs := runes(t.Txt)
	if lo < 0 {
		lo = 0
	}
	if hi > len(rs) {
		hi = len(rs)
	}
	if hi < lo {
		hi = lo
	}

	pin := 0
	if hi > 0 {
		pin = t.Spans[hi-1]
	} else if lo < len(t.Spans) {
		pin = t.Spans[lo]
	}

	newTxt := string(rs[:lo]) + replacement + string(rs[hi:])
	newSpans := make([]int, 0, lo+len(runes(replacement))+(len(rs)-hi))
	newSpans = append(newSpans, t.Spans[:lo]...)
	for range runes(replacement) {
		newSpans = append(newSpans, pin)
	}
	newSpans = append(newSpans, t.Spans[hi:]...)

	return Tok{Kind: t.Kind, Val: t.Val, Txt: newTxt, Original: t.Original, Spans: newSpans}
}

// SubstituteAll repeatedly applies Substitute over non-overlapping,
// left-to-right matches of needle in t.Txt.
func (t Tok) SubstituteAll(needle, replacement string) Tok {
	if needle == "" {
		return t
	}
	cur := t
	for {
		idx := strings.Index(cur.Txt, needle)
		if idx < 0 {
			return cur
		}
		lo := len(runes(cur.Txt[:idx]))
		hi := lo + len(runes(needle))
		cur = cur.substituteLonger(lo, hi, replacement)
	}
}

// Concatenate appends other.Txt to t.Txt with an optional separator string
// between them. Original becomes t.Original+other.Original; separator runes
// that are not themselves sourced from input are pinned to the last source
// index of t (spec.md §4.1).
func (t Tok) Concatenate(other Tok, separator string) Tok {
	tOrigLen := len(runes(t.Original))
	pin := 0
	if tOrigLen > 0 {
		pin = tOrigLen - 1
	}

	spans := make([]int, 0, len(t.Spans)+len(runes(separator))+len(other.Spans))
	spans = append(spans, t.Spans...)
	for range runes(separator) {
		spans = append(spans, pin)
	}
	for _, s := range other.Spans {
		spans = append(spans, tOrigLen+s)
	}

	return Tok{
		Kind:     t.Kind,
		Val:      t.Val,
		Txt:      t.Txt + separator + other.Txt,
		Original: t.Original + other.Original,
		Spans:    spans,
	}
}

// Len returns the rune length of Txt.
func (t Tok) Len() int { return len(runes(t.Txt)) }
