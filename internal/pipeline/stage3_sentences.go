package pipeline

import (
	"github.com/mideind/icetok/internal/definitions"
	"github.com/mideind/icetok/tok"
)

// SentenceSegmenter is stage 3 (spec.md §4.6): wraps each sentence in
// S_BEGIN/S_END, greedily absorbing trailing SENTENCE_FINISHERS before
// closing, and drops empty paragraph-to-paragraph gaps.
type SentenceSegmenter struct {
	lookahead
	out  outQueue
	opts Options

	inSentence bool
	sawAny     bool // has a non-structural token been seen since last S_BEGIN
	done       bool
}

// NewSentenceSegmenter builds stage 3 over src.
func NewSentenceSegmenter(src TokenSource, opts Options) *SentenceSegmenter {
	return &SentenceSegmenter{lookahead: lookahead{src: src}, opts: opts}
}

func (s *SentenceSegmenter) Next() (tok.Tok, bool) {
	for s.out.empty() {
		if !s.step() {
			return tok.Tok{}, false
		}
	}
	return s.out.pop()
}

func (s *SentenceSegmenter) step() bool {
	if s.done {
		return false
	}
	t, ok := s.pull()
	if !ok {
		if s.inSentence {
			s.out.push(tok.Structural(tok.S_END))
			s.inSentence = false
		}
		s.done = true
		return !s.out.empty()
	}

	switch t.Kind {
	case tok.P_BEGIN, tok.P_END:
		if s.inSentence {
			s.out.push(tok.Structural(tok.S_END))
			s.inSentence = false
		}
		if t.Kind == tok.P_BEGIN {
			// An empty paragraph: drop both markers.
			if n, ok := s.pull(); ok && n.Kind == tok.P_END {
				return true
			} else if ok {
				s.unpull(n)
			}
		}
		s.out.push(t)
		return true

	case tok.S_SPLIT:
		// A lexer-inserted line-boundary marker (spec.md §6's
		// one_sent_per_line): force the current sentence closed without
		// ever surfacing the marker itself downstream.
		if s.opts.OneSentPerLine && s.inSentence {
			s.out.push(tok.Structural(tok.S_END))
			s.inSentence = false
		}
		return true
	}

	if !s.inSentence {
		s.out.push(tok.Structural(tok.S_BEGIN))
		s.inSentence = true
	}
	s.out.push(t)

	if t.Kind == tok.PUNCTUATION && definitions.EndOfSentence[t.Txt] {
		s.absorbFinishers()
		s.out.push(tok.Structural(tok.S_END))
		s.inSentence = false
	}
	return true
}

// absorbFinishers greedily consumes trailing closing quotes/brackets after
// an end-of-sentence mark, per spec.md §4.6.
func (s *SentenceSegmenter) absorbFinishers() {
	for {
		t, ok := s.pull()
		if !ok {
			return
		}
		if t.Kind == tok.PUNCTUATION && definitions.SentenceFinishers[t.Txt] {
			s.out.push(t)
			continue
		}
		s.unpull(t)
		return
	}
}
