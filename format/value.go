package format

import "github.com/mideind/icetok/tok"

// value returns the CSV/JSON "value" field for t, mirroring the original
// tokenizer CLI's val() helper: most kinds carry no separate value beyond
// their Txt, but WORD (the resolved abbreviation stem), NUMBER and PERCENT
// (the parsed decimal) surface one. ok is false when there is nothing to
// report, so callers can omit the field entirely rather than print a zero
// value.
func value(t tok.Tok) (v any, ok bool) {
	switch t.Kind {
	case tok.WORD:
		if len(t.Val.Meanings) == 0 {
			return nil, false
		}
		return t.Val.Meanings[0].Stem, true
	case tok.NUMBER, tok.PERCENT:
		return t.Val.Number.String(), true
	case tok.S_BEGIN:
		return nil, false
	default:
		return nil, false
	}
}
