package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/tok"
)

// PhraseComposer2 is stage 6 (spec.md §4.7), the last pipeline stage:
// multiplier-word composition ("2 milljón" -> a single NUMBER; only a
// NUMBER token starts a composition, never a spelled-out number word),
// amount abbreviations and ISO currency codes following a bare NUMBER,
// percent words, and composite-hyphen phrase accumulation
// ("fjármála- og efnahagsráðuneyti", "hálf-opinber").
type PhraseComposer2 struct {
	lookahead
	out  outQueue
	deps Deps
	opts Options
}

// NewPhraseComposer2 builds stage 6 over src.
func NewPhraseComposer2(src TokenSource, deps Deps, opts Options) *PhraseComposer2 {
	return &PhraseComposer2{lookahead: lookahead{src: src}, deps: deps, opts: opts}
}

func (s *PhraseComposer2) Next() (tok.Tok, bool) {
	for s.out.empty() {
		if !s.step() {
			return tok.Tok{}, false
		}
	}
	return s.out.pop()
}

func (s *PhraseComposer2) step() bool {
	t, ok := s.pull()
	if !ok {
		return false
	}

	switch {
	case t.Kind == tok.NUMBER:
		s.foldNumberPhrase(t)

	case t.Kind == tok.WORD:
		s.foldHyphenRun(t)

	default:
		s.out.push(t)
	}
	return true
}

// foldNumberPhrase absorbs any immediately following multiplier words listed
// in definitions.Multipliers ("2 milljón"), then tries an amount-abbreviation, an ISO currency
// code, or a percent word, in that priority order (spec.md §4.7).
func (s *PhraseComposer2) foldNumberPhrase(t tok.Tok) {
	value := t.Val.Number
	cur := t

	for {
		n, ok := s.pull()
		if !ok {
			break
		}
		if n.Kind != tok.WORD {
			s.unpull(n)
			break
		}
		mult, known := definitions.Multipliers[n.Txt]
		if !known {
			s.unpull(n)
			break
		}
		value = value.Mul(decimal.NewFromFloat(mult))
		cur = cur.Concatenate(n, " ")
		if !definitions.LargeMultipliers[n.Txt] {
			// A plain digit-word ("tveir") only composes once with the
			// number that precedes it; stop after folding it in.
			break
		}
	}
	cur.Val.Number = value

	n, ok := s.pull()
	if !ok {
		s.out.push(cur)
		return
	}
	if n.Kind == tok.WORD {
		if mult, isAmount := definitions.AmountAbbrev[n.Txt]; isAmount {
			merged := cur.Concatenate(n, " ")
			merged.Kind = tok.AMOUNT
			merged.Val = tok.Val{Amount: value.Mul(decimal.NewFromFloat(mult)), ISO: "ISK"}
			s.out.push(merged)
			return
		}
		if definitions.IsValidCurrencyCode(n.Txt) {
			merged := cur.Concatenate(n, " ")
			merged.Kind = tok.AMOUNT
			merged.Val = tok.Val{Amount: value, ISO: n.Txt}
			s.out.push(merged)
			return
		}
		if s.opts.CoalescePercent && definitions.Percentages[n.Txt] {
			merged := cur.Concatenate(n, " ")
			merged.Kind = tok.PERCENT
			merged.Val = tok.Val{Number: value}
			s.out.push(merged)
			return
		}
	}
	s.unpull(n)
	s.out.push(cur)
}

// foldHyphenRun implements the composite-hyphen phrase rule (spec.md §4.5/
// §4.7): a WORD immediately followed by a bare "-" either merges directly
// with the next WORD (the adjective-prefix case, "hálf-opinber", no
// connector required), or accumulates across "og"/"eða" before merging with
// the run's final word ("fjármála- og efnahagsráðuneyti"). Anything else
// ends the run and the accumulated tokens are emitted unchanged.
func (s *PhraseComposer2) foldHyphenRun(first tok.Tok) {
	h, ok := s.pull()
	if !ok || h.Kind != tok.PUNCTUATION || h.Txt != "-" {
		if ok {
			s.unpull(h)
		}
		s.out.push(first)
		return
	}

	if definitions.AdjectivePrefixes[first.Txt] {
		if w, wOk := s.pull(); wOk {
			if w.Kind == tok.WORD {
				merged := retype(first.Concatenate(h, "").Concatenate(w, ""), tok.WORD, func(v *tok.Val) {})
				s.out.push(merged)
				return
			}
			s.unpull(w)
		}
	}

	prefixes := []tok.Tok{first}
	seps := []tok.Tok{h}

	for {
		n, ok := s.pull()
		if !ok {
			s.emitVerbatimHyphenRun(prefixes, seps)
			return
		}
		if n.Kind == tok.WORD && (n.Txt == "og" || n.Txt == "eða") {
			final, fOk := s.pull()
			if fOk && final.Kind == tok.WORD {
				s.emitMergedHyphenRun(prefixes, seps, n, final)
				return
			}
			if fOk {
				s.unpull(final)
			}
			s.emitVerbatimHyphenRun(prefixes, seps)
			s.out.push(n)
			return
		}
		if n.Kind == tok.WORD {
			if h2, ok := s.pull(); ok && h2.Kind == tok.PUNCTUATION && h2.Txt == "-" {
				prefixes = append(prefixes, n)
				seps = append(seps, h2)
				continue
			} else if ok {
				s.unpull(h2)
			}
		}
		s.unpull(n)
		s.emitVerbatimHyphenRun(prefixes, seps)
		return
	}
}

// emitVerbatimHyphenRun emits each accumulated WORD with its own trailing
// hyphen, for a run that never found a connector to merge against.
func (s *PhraseComposer2) emitVerbatimHyphenRun(prefixes, seps []tok.Tok) {
	for i, p := range prefixes {
		s.out.push(p)
		s.out.push(seps[i])
	}
}

// emitMergedHyphenRun emits the whole run as one WORD: each prefix directly
// followed by its own hyphen, then the "og"/"eða" connector and the final
// word, space-separated ("fjármála- og efnahagsráðuneyti"). Every piece's
// original source text is carried exactly once through Concatenate.
func (s *PhraseComposer2) emitMergedHyphenRun(prefixes, seps []tok.Tok, connector, final tok.Tok) {
	merged := prefixes[0].Concatenate(seps[0], "")
	for i := 1; i < len(prefixes); i++ {
		merged = merged.Concatenate(prefixes[i], " ").Concatenate(seps[i], "")
	}
	merged = merged.Concatenate(connector, " ").Concatenate(final, " ")
	s.out.push(retype(merged, tok.WORD, func(v *tok.Val) {}))
}
