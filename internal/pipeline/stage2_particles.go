package pipeline

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/internal/units"
	"github.com/mideind/icetok/tok"
)

// ParticleCoalescer is stage 2 (spec.md §4.5): folds short multi-token
// patterns — currency-symbol amounts, abbreviation periods, clock times,
// years, percents, ordinals, and measurements — into single typed tokens,
// with at most a couple of tokens of lookahead.
type ParticleCoalescer struct {
	lookahead
	out  outQueue
	deps Deps
	opts Options
}

// NewParticleCoalescer builds stage 2 over src.
func NewParticleCoalescer(src TokenSource, deps Deps, opts Options) *ParticleCoalescer {
	return &ParticleCoalescer{lookahead: lookahead{src: src}, deps: deps, opts: opts}
}

func (s *ParticleCoalescer) Next() (tok.Tok, bool) {
	for s.out.empty() {
		if !s.step() {
			return tok.Tok{}, false
		}
	}
	return s.out.pop()
}

func (s *ParticleCoalescer) step() bool {
	t, ok := s.pull()
	if !ok {
		return false
	}

	switch {
	case t.Kind == tok.PUNCTUATION && isCurrencySymbol(t.Txt):
		if n, ok := s.pull(); ok {
			if n.Kind == tok.NUMBER {
				s.out.push(makeAmount(t, n, definitions.CurrencySymbols[t.Txt]))
				return true
			}
			s.unpull(n)
		}
		s.out.push(t)

	case t.Kind == tok.WORD && s.deps.Abbrev != nil && !strings.Contains(t.Txt, ".") &&
		!isClockIntro(t.Txt) && !definitions.ClockHalf[t.Txt] && !definitions.YearWords[t.Txt]:
		if n, ok := s.pull(); ok && n.Kind == tok.PUNCTUATION && n.Txt == "." && s.abbrevApplies(t.Txt) {
			s.applyAbbrevPeriod(t, n)
			return true
		} else if ok {
			s.unpull(n)
		}
		s.out.push(s.attachMeaning(t))

	case isClockIntro(t.Txt):
		if n, ok := s.pull(); ok {
			if tm, isTime := clockFollowUp(n); isTime {
				s.out.push(makeTimeTok(t, n, tm))
				return true
			}
			s.unpull(n)
		}
		s.out.push(t)

	case t.Kind == tok.WORD && definitions.ClockHalf[t.Txt]:
		hms := definitions.ClockNumbers[t.Txt]
		s.out.push(retype(t, tok.TIME, func(v *tok.Val) { v.Time = tok.Time{Hour: hms[0], Minute: hms[1], Second: hms[2]} }))

	case t.Kind == tok.WORD && definitions.YearWords[t.Txt]:
		if n, ok := s.pull(); ok {
			if y, isYear := yearFollowUp(n); isYear {
				s.out.push(makeYearTok(t, n, y))
				return true
			}
			s.unpull(n)
		}
		s.out.push(t)

	case t.Kind == tok.NUMBER:
		if n, ok := s.pull(); ok {
			if n.Kind == tok.PUNCTUATION && n.Txt == "%" {
				s.out.push(retype(t, tok.PERCENT, func(v *tok.Val) {}))
				return true
			}
			if n.Kind == tok.PUNCTUATION && n.Txt == "." && isIntegerValue(t.Val.Number) && s.ordinalAllowed() {
				s.out.push(makeOrdinal(t, n))
				return true
			}
			if n.Kind == tok.PUNCTUATION && n.Txt == "°" {
				if done := s.foldDegree(t, n); done {
					return true
				}
			}
			if n.Kind == tok.WORD {
				if symbol, converted, can := units.Convert(n.Txt, t.Val.Number); can {
					s.out.push(makeMeasurement(t, n, symbol, converted))
					return true
				}
			}
			s.unpull(n)
		}
		s.out.push(t)

	default:
		s.out.push(s.attachMeaning(t))
	}
	return true
}

// attachMeaning looks up a plain WORD token directly in the dictionary
// (abbreviations that do not end in a period); the more common
// period-ending case is resolved via applyAbbrevPeriod instead.
func (s *ParticleCoalescer) attachMeaning(t tok.Tok) tok.Tok {
	if t.Kind != tok.WORD || s.deps.Abbrev == nil {
		return t
	}
	if e, ok := s.deps.Abbrev.Lookup(t.Txt); ok {
		t.Val.Meanings = []tok.Meaning{{Stem: e.Meaning, WordClass: e.Class, Category: e.Gender, Surface: e.Surface}}
	}
	return t
}

// abbrevApplies reports whether word+"." names a dictionary abbreviation.
func (s *ParticleCoalescer) abbrevApplies(word string) bool {
	return s.deps.Abbrev.HasMeaning(word+".") || s.deps.Abbrev.IsSingle(word)
}

// applyAbbrevPeriod implements the §4.4 finisher policy: peek one token
// past the period to decide whether this position can be a sentence end,
// then dispose of the abbreviation per its FINISHER/NOT_FINISHER/
// NAME_FINISHER classification.
func (s *ParticleCoalescer) applyAbbrevPeriod(word, period tok.Tok) {
	key := word.Txt + "."
	look, haveLook := s.pull()

	potentialEnd := !haveLook || look.Kind.IsStructural() || looksLikeSentenceStart(look)
	if potentialEnd && haveLook && isMultiplierAbbrev(word.Txt) && look.Kind == tok.WORD && definitions.IsValidCurrencyCode(look.Txt) {
		potentialEnd = false
	}
	if haveLook {
		s.unpull(look)
	}

	if potentialEnd {
		switch {
		case s.deps.Abbrev.IsFinisher(key):
			s.out.push(s.attachMeaning(word))
			extra := period
			extra.Val.Spacing = definitions.SpaceRight
			s.out.push(extra)
			return
		case s.deps.Abbrev.IsNotFinisher(key) || s.deps.Abbrev.IsNameFinisher(key):
			s.out.push(word)
			s.out.push(period)
			return
		}
	}

	merged := word.Concatenate(period, "")
	merged.Kind = tok.WORD
	s.out.push(s.attachMeaning(merged))
}

func looksLikeSentenceStart(t tok.Tok) bool {
	if t.Kind != tok.WORD && t.Kind != tok.ENTITY {
		return false
	}
	rs := []rune(t.Txt)
	if len(rs) == 0 || !unicode.IsUpper(rs[0]) {
		return false
	}
	return definitions.Months[strings.ToLower(t.Txt)] == 0
}

func isMultiplierAbbrev(word string) bool {
	return definitions.LargeMultipliers[word+"."]
}

func isCurrencySymbol(s string) bool {
	_, ok := definitions.CurrencySymbols[s]
	return ok
}

func makeAmount(symbol, number tok.Tok, iso string) tok.Tok {
	merged := symbol.Concatenate(number, "")
	merged.Kind = tok.AMOUNT
	merged.Val = tok.Val{Amount: number.Val.Number, ISO: iso}
	return merged
}

func isClockIntro(txt string) bool {
	return txt == definitions.ClockWord || txt == definitions.ClockAbbrev+"."
}

// clockFollowUp reports whether n can complete a clock-time phrase, and its
// (h,m,s) value if so.
func clockFollowUp(n tok.Tok) (tok.Time, bool) {
	switch n.Kind {
	case tok.TIME:
		return n.Val.Time, true
	case tok.NUMBER:
		if isIntegerValue(n.Val.Number) {
			h := int(n.Val.Number.IntPart())
			if h >= 0 && h <= 23 {
				return tok.Time{Hour: h}, true
			}
		}
	case tok.WORD:
		if hms, ok := definitions.ClockNumbers[n.Txt]; ok {
			return tok.Time{Hour: hms[0], Minute: hms[1], Second: hms[2]}, true
		}
	}
	return tok.Time{}, false
}

func makeTimeTok(intro, rest tok.Tok, tm tok.Time) tok.Tok {
	merged := intro.Concatenate(rest, " ")
	merged.Kind = tok.TIME
	merged.Val = tok.Val{Time: tm}
	return merged
}

func yearFollowUp(n tok.Tok) (int, bool) {
	switch n.Kind {
	case tok.YEAR:
		return n.Val.Year, true
	case tok.NUMBER:
		if isIntegerValue(n.Val.Number) {
			return int(n.Val.Number.IntPart()), true
		}
	}
	return 0, false
}

func makeYearTok(intro, rest tok.Tok, y int) tok.Tok {
	merged := intro.Concatenate(rest, " ")
	merged.Kind = tok.YEAR
	merged.Val = tok.Val{Year: y}
	return merged
}

func retype(t tok.Tok, kind tok.Kind, mutate func(*tok.Val)) tok.Tok {
	t.Kind = kind
	mutate(&t.Val)
	return t
}

func isIntegerValue(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

// ordinalAllowed peeks the token after the period and applies spec.md
// §4.5's veto list: an uppercase non-month WORD, an opening (LEFT-class)
// quote/bracket, or a sentence/paragraph/stream end all veto the ordinal
// reading.
func (s *ParticleCoalescer) ordinalAllowed() bool {
	n, ok := s.pull()
	if !ok {
		return false
	}
	defer s.unpull(n)

	if n.Kind.IsStructural() {
		return false
	}
	if n.Kind == tok.PUNCTUATION {
		if cls, known := definitions.ClassOf([]rune(n.Txt)[0]); known && cls == definitions.SpaceLeft {
			return false
		}
		return true
	}
	if n.Kind == tok.WORD {
		rs := []rune(n.Txt)
		if len(rs) > 0 && unicode.IsUpper(rs[0]) && definitions.Months[strings.ToLower(n.Txt)] == 0 {
			return false
		}
	}
	return true
}

func makeOrdinal(number, period tok.Tok) tok.Tok {
	merged := number.Concatenate(period, "")
	merged.Kind = tok.ORDINAL
	merged.Val = tok.Val{Ordinal: uint64(number.Val.Number.IntPart())}
	return merged
}

func makeMeasurement(number, unit tok.Tok, symbol string, value decimal.Decimal) tok.Tok {
	merged := number.Concatenate(unit, " ")
	merged.Kind = tok.MEASUREMENT
	merged.Val = tok.Val{Unit: symbol, MeasurementVal: value}
	return merged
}

// foldDegree implements "MEASUREMENT("°") + {"C","F"}" (spec.md §4.5): a
// NUMBER already followed by a bare "°" PUNCTUATION token either completes
// into a Celsius/Fahrenheit-to-Kelvin measurement (when a "C"/"F" WORD
// follows) or stands alone as a plain degree measurement.
func (s *ParticleCoalescer) foldDegree(number, degree tok.Tok) bool {
	if m, ok := s.pull(); ok {
		if m.Kind == tok.WORD && (m.Txt == "C" || m.Txt == "F") {
			if symbol, converted, can := units.Convert("°"+m.Txt, number.Val.Number); can {
				merged := number.Concatenate(degree, "").Concatenate(m, "")
				merged.Kind = tok.MEASUREMENT
				merged.Val = tok.Val{Unit: symbol, MeasurementVal: converted}
				s.out.push(merged)
				return true
			}
		}
		s.unpull(m)
	}
	if symbol, converted, can := units.Convert("°", number.Val.Number); can {
		s.out.push(makeMeasurement(number, degree, symbol, converted))
		return true
	}
	return false
}
