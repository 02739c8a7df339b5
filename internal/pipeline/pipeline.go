// Package pipeline implements stages 2-6 of the tokenization pipeline
// (spec.md §4.4-§4.7): the particle coalescer, sentence segmenter, and the
// three phrase-composition passes that fold multi-token patterns (currency
// amounts, clock times, dates, multiplied numbers, composite-hyphen
// phrases) into single typed Tok values.
//
// Every stage is a pull-based TokenSource wrapping another TokenSource,
// carrying at most a small bounded lookahead buffer rather than
// materializing the whole stream — the "state machine with explicit
// pending token slot" spec.md §9 asks for instead of a deep-recursion
// generator.
package pipeline

import (
	"github.com/mideind/icetok/internal/abbrev"
	"github.com/mideind/icetok/internal/lexer"
	"github.com/mideind/icetok/tok"
)

// TokenSource is satisfied by internal/lexer.Lexer and by every pipeline
// stage, so stages compose by wrapping one another.
type TokenSource interface {
	Next() (tok.Tok, bool)
}

// KludgyOrdinalMode controls how forms like "1sti", "4ra" are handled
// (spec.md §6). The actual rewrite/translation happens in internal/lexer,
// which alone has the chunk-scoped adjacency needed to recognize a digit
// run immediately followed by a letter run; this is a type alias so every
// existing pipeline.Options/icetok.Options call site is unaffected.
type KludgyOrdinalMode = lexer.KludgyOrdinalMode

const (
	PassThrough = lexer.PassThrough
	Modify      = lexer.Modify
	Translate   = lexer.Translate
)

// Options is the subset of spec.md §6's option set that pipeline stages
// (as opposed to the lexer's preprocessing or the detokenizer) consult.
type Options struct {
	ConvertNumbers       bool
	ConvertTelnos        bool
	ConvertMeasurements  bool
	CoalescePercent      bool
	HandleKludgyOrdinals KludgyOrdinalMode
	OneSentPerLine       bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{HandleKludgyOrdinals: PassThrough}
}

// lookahead is the small FIFO every stage uses to hold tokens pulled from
// its source but not yet consumed by that stage's own rule logic —
// spec.md §5's "no stage buffers more than a bounded small number of
// tokens (1 look-ahead + a bounded accumulator for composite-hyphen runs)".
type lookahead struct {
	src TokenSource
	buf []tok.Tok
}

// pull returns the next token, preferring anything already buffered.
func (l *lookahead) pull() (tok.Tok, bool) {
	if len(l.buf) > 0 {
		t := l.buf[0]
		l.buf = l.buf[1:]
		return t, true
	}
	return l.src.Next()
}

// unpull pushes a token back to the front of the buffer, for "peeked but
// not consumed this round" lookahead.
func (l *lookahead) unpull(t tok.Tok) {
	l.buf = append([]tok.Tok{t}, l.buf...)
}

// outQueue is the small FIFO of tokens a stage has already decided to
// emit, drained one at a time by Next().
type outQueue struct {
	items []tok.Tok
}

func (q *outQueue) push(t tok.Tok)       { q.items = append(q.items, t) }
func (q *outQueue) pushAll(ts []tok.Tok) { q.items = append(q.items, ts...) }
func (q *outQueue) pop() (tok.Tok, bool) {
	if len(q.items) == 0 {
		return tok.Tok{}, false
	}
	t := q.items[0]
	q.items = q.items[1:]
	return t, true
}
func (q *outQueue) empty() bool { return len(q.items) == 0 }

// Build chains stages 2 through 6 onto a stage-1 source, in pipeline
// order, returning a TokenSource whose Next() drives the whole pipeline.
func Build(stage1 TokenSource, deps Deps, opts Options) TokenSource {
	s := BuildWithoutAnnotation(stage1, deps, opts)
	s = NewPhraseComposer2(s, deps, opts)
	return s
}

// BuildWithoutAnnotation chains stages 2 through 5, backing
// tokenize_without_annotation (spec.md §6): the particle coalescer,
// sentence segmenter and the two date/time composition passes run, but
// stage 6's number-word and amount/currency/percent phrase folding is
// skipped. The convert_numbers/convert_telnos/convert_measurements surface
// rewrites (spec.md §6) apply here too, last, since they're presentation
// concerns independent of whether stage 6 runs.
func BuildWithoutAnnotation(stage1 TokenSource, deps Deps, opts Options) TokenSource {
	var s TokenSource = stage1
	s = NewParticleCoalescer(s, deps, opts)
	s = NewSentenceSegmenter(s, opts)
	s = NewPhraseComposer1(s)
	s = NewDateTimeRefiner(s)
	s = NewSurfaceFormatter(s, opts)
	return s
}

// Deps bundles the shared, process-wide read-only state every stage may
// need (spec.md §9: "fold module-level mutable tables into an initialized
// context record passed explicitly to each stage").
type Deps struct {
	Abbrev *abbrev.Table
}
