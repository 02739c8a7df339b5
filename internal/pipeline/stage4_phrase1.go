package pipeline

import (
	"strings"

	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/tok"
)

// PhraseComposer1 is stage 4 (spec.md §4.7): era suffixes on YEAR/NUMBER,
// ordinal/number + month-word → DATE, DATE(y=0) + YEAR → DATE, and
// DATE + TIME → TIMESTAMP.
type PhraseComposer1 struct {
	lookahead
	out outQueue
}

// NewPhraseComposer1 builds stage 4 over src.
func NewPhraseComposer1(src TokenSource) *PhraseComposer1 {
	return &PhraseComposer1{lookahead: lookahead{src: src}}
}

func (s *PhraseComposer1) Next() (tok.Tok, bool) {
	for s.out.empty() {
		if !s.step() {
			return tok.Tok{}, false
		}
	}
	return s.out.pop()
}

func (s *PhraseComposer1) step() bool {
	t, ok := s.pull()
	if !ok {
		return false
	}

	switch {
	case (t.Kind == tok.YEAR || t.Kind == tok.NUMBER) && isIntegerLike(t):
		if n, ok := s.pull(); ok && n.Kind == tok.WORD && (definitions.CE[n.Txt] || definitions.BCE[n.Txt]) {
			y := yearValue(t)
			if definitions.BCE[n.Txt] {
				y = -y
			}
			merged := t.Concatenate(n, " ")
			merged.Kind = tok.YEAR
			merged.Val = tok.Val{Year: y}
			s.out.push(merged)
			return true
		} else if ok {
			s.unpull(n)
		}
		s.emitOrdinalMonthDate(t)

	case t.Kind == tok.ORDINAL:
		s.emitOrdinalMonthDate(t)

	case t.Kind == tok.DATE && t.Val.Date.Year == 0:
		if n, ok := s.pull(); ok {
			if n.Kind == tok.YEAR || (n.Kind == tok.NUMBER && isIntegerLike(n)) {
				merged := t.Concatenate(n, " ")
				merged.Kind = tok.DATE
				merged.Val.Date = tok.Date{Year: yearValue(n), Month: t.Val.Date.Month, Day: t.Val.Date.Day}
				s.out.push(merged)
				return true
			}
			s.unpull(n)
		}
		s.foldDateTime(t)

	case t.Kind == tok.DATE:
		s.foldDateTime(t)

	default:
		s.out.push(t)
	}
	return true
}

// emitOrdinalMonthDate handles "(ORDINAL|NUMBER) + month-WORD" → DATE; the
// new DATE is handed back to step so the DATE(y=0) + YEAR and DATE + TIME
// rules apply to it. If t itself doesn't combine, it is pushed through
// unchanged.
func (s *PhraseComposer1) emitOrdinalMonthDate(t tok.Tok) {
	if t.Kind != tok.ORDINAL && !(t.Kind == tok.NUMBER && isIntegerLike(t)) {
		s.out.push(t)
		return
	}
	n, ok := s.pull()
	if !ok {
		s.out.push(t)
		return
	}
	if n.Kind == tok.WORD && !definitions.MonthBlacklist[n.Txt] {
		if month, isMonth := definitions.Months[strings.ToLower(n.Txt)]; isMonth {
			day := dayValue(t)
			merged := t.Concatenate(n, " ")
			merged.Kind = tok.DATE
			merged.Val = tok.Val{Date: tok.Date{Day: day, Month: month}}
			s.unpull(merged)
			return
		}
	}
	s.unpull(n)
	s.out.push(t)
}

// foldDateTime merges a DATE immediately followed by a TIME into a
// TIMESTAMP, else passes the DATE through.
func (s *PhraseComposer1) foldDateTime(t tok.Tok) {
	n, ok := s.pull()
	if !ok {
		s.out.push(t)
		return
	}
	if n.Kind == tok.TIME {
		merged := t.Concatenate(n, " ")
		merged.Kind = tok.TIMESTAMP
		merged.Val = tok.Val{Timestamp: tok.Timestamp{
			Year: t.Val.Date.Year, Month: t.Val.Date.Month, Day: t.Val.Date.Day,
			Hour: n.Val.Time.Hour, Minute: n.Val.Time.Minute, Second: n.Val.Time.Second,
		}}
		s.out.push(merged)
		return
	}
	s.unpull(n)
	s.out.push(t)
}

func isIntegerLike(t tok.Tok) bool {
	return t.Val.Number.Equal(t.Val.Number.Truncate(0))
}

func yearValue(t tok.Tok) int {
	if t.Kind == tok.YEAR {
		return t.Val.Year
	}
	return int(t.Val.Number.IntPart())
}

func dayValue(t tok.Tok) int {
	if t.Kind == tok.ORDINAL {
		return int(t.Val.Ordinal)
	}
	return int(t.Val.Number.IntPart())
}
