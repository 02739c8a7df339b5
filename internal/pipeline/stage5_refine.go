package pipeline

import (
	"strings"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/tok"
)

// DateTimeRefiner is stage 5 (spec.md §4.7): folds a day-of-month ordinal
// word in front of a month name, attaches a bare year to a standalone month
// word, classifies DATE/TIMESTAMP tokens as absolute or relative depending
// on which components are present, and swallows a trailing era suffix.
type DateTimeRefiner struct {
	lookahead
	out outQueue
}

// NewDateTimeRefiner builds stage 5 over src.
func NewDateTimeRefiner(src TokenSource) *DateTimeRefiner {
	return &DateTimeRefiner{lookahead: lookahead{src: src}}
}

func (s *DateTimeRefiner) Next() (tok.Tok, bool) {
	for s.out.empty() {
		if !s.step() {
			return tok.Tok{}, false
		}
	}
	return s.out.pop()
}

func (s *DateTimeRefiner) step() bool {
	t, ok := s.pull()
	if !ok {
		return false
	}

	switch {
	case t.Kind == tok.WORD && dayOfMonth(t.Txt) > 0:
		s.foldDayMonth(t)

	case t.Kind == tok.WORD && isBareMonthWord(t.Txt):
		s.foldMonthYear(t)

	case t.Kind == tok.DATE:
		s.out.push(s.splitDate(t))

	case t.Kind == tok.TIMESTAMP:
		s.out.push(s.splitTimestamp(t))

	default:
		s.out.push(t)
	}
	return true
}

func dayOfMonth(w string) int {
	return definitions.DaysOfMonth[strings.ToLower(w)]
}

// isBareMonthWord reports whether w names a month on its own, excluding the
// short forms too ambiguous to stand alone (spec.md §4.7) and the blacklisted
// given-name collision.
func isBareMonthWord(w string) bool {
	if definitions.MonthBlacklist[w] || definitions.AmbiguousMonthAbbrevs[strings.ToLower(w)] {
		return false
	}
	_, ok := definitions.Months[strings.ToLower(w)]
	return ok
}

// foldDayMonth handles "dayword + month-WORD" -> a DATE with day/month set
// and year left at 0, which splitDate then classifies. Stage 4's
// DATE(y=0)+YEAR rule has already run by this point, so a following year is
// not attached.
func (s *DateTimeRefiner) foldDayMonth(t tok.Tok) {
	n, ok := s.pull()
	if !ok {
		s.out.push(t)
		return
	}
	if n.Kind == tok.WORD && !definitions.MonthBlacklist[n.Txt] {
		if month, isMonth := definitions.Months[strings.ToLower(n.Txt)]; isMonth {
			merged := t.Concatenate(n, " ")
			merged.Kind = tok.DATE
			merged.Val = tok.Val{Date: tok.Date{Day: dayOfMonth(t.Txt), Month: month}}
			s.out.push(s.splitDate(s.foldEra(merged)))
			return
		}
	}
	s.unpull(n)
	s.out.push(t)
}

// foldMonthYear handles a standalone month word optionally followed by a
// bare year (a NUMBER or YEAR token in [1776,2100]), producing a DATE with
// day left unset that splitDate classifies as DATEREL; with no year the
// month alone is emitted as a DATEREL below.
func (s *DateTimeRefiner) foldMonthYear(t tok.Tok) {
	month := definitions.Months[strings.ToLower(t.Txt)]
	n, ok := s.pull()
	if ok {
		if y, isYear := plausibleYear(n); isYear {
			merged := t.Concatenate(n, " ")
			merged.Kind = tok.DATE
			merged.Val = tok.Val{Date: tok.Date{Month: month, Year: y}}
			s.out.push(s.splitDate(s.foldEra(merged)))
			return
		}
		s.unpull(n)
	}
	rel := t
	rel.Kind = tok.DATEREL
	rel.Val = tok.Val{Date: tok.Date{Month: month}}
	s.out.push(rel)
}

func plausibleYear(n tok.Tok) (int, bool) {
	switch n.Kind {
	case tok.YEAR:
		if n.Val.Year >= 1776 && n.Val.Year <= 2100 {
			return n.Val.Year, true
		}
	case tok.NUMBER:
		if isIntegerLike(n) {
			y := int(n.Val.Number.IntPart())
			if y >= 1776 && y <= 2100 {
				return y, true
			}
		}
	}
	return 0, false
}

// foldEra swallows a trailing "e.Kr."/"f.Kr." WORD onto an absolute DATE,
// negating the year for BCE (spec.md §4.7).
func (s *DateTimeRefiner) foldEra(d tok.Tok) tok.Tok {
	n, ok := s.pull()
	if !ok {
		return d
	}
	if n.Kind == tok.WORD && (definitions.CE[n.Txt] || definitions.BCE[n.Txt]) {
		if definitions.BCE[n.Txt] {
			d.Val.Date.Year = -d.Val.Date.Year
		}
		return d.Concatenate(n, " ")
	}
	s.unpull(n)
	return d
}

// splitDate classifies a DATE as DATEABS (year, month and day all set) or
// DATEREL (anything else), then tries to fold an immediately following TIME
// into the matching TIMESTAMP variant.
func (s *DateTimeRefiner) splitDate(t tok.Tok) tok.Tok {
	if t.Val.Date.Year != 0 && t.Val.Date.Month != 0 && t.Val.Date.Day != 0 {
		t.Kind = tok.DATEABS
	} else {
		t.Kind = tok.DATEREL
	}
	return s.foldDateTimeAbs(t)
}

func (s *DateTimeRefiner) foldDateTimeAbs(t tok.Tok) tok.Tok {
	n, ok := s.pull()
	if !ok {
		return t
	}
	if n.Kind == tok.TIME {
		merged := t.Concatenate(n, " ")
		if t.Kind == tok.DATEABS {
			merged.Kind = tok.TIMESTAMPABS
		} else {
			merged.Kind = tok.TIMESTAMPREL
		}
		merged.Val = tok.Val{Timestamp: tok.Timestamp{
			Year: t.Val.Date.Year, Month: t.Val.Date.Month, Day: t.Val.Date.Day,
			Hour: n.Val.Time.Hour, Minute: n.Val.Time.Minute, Second: n.Val.Time.Second,
		}}
		return merged
	}
	s.unpull(n)
	return t
}

// splitTimestamp classifies a TIMESTAMP the same way splitDate classifies a
// DATE, reusing the Timestamp payload already present.
func (s *DateTimeRefiner) splitTimestamp(t tok.Tok) tok.Tok {
	ts := t.Val.Timestamp
	if ts.Year != 0 && ts.Month != 0 && ts.Day != 0 {
		t.Kind = tok.TIMESTAMPABS
	} else {
		t.Kind = tok.TIMESTAMPREL
	}
	return t
}
