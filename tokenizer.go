// Package icetok is the public facade over the tokenization pipeline
// (spec.md §6): Tokenize, TokenizeWithoutAnnotation, SplitIntoSentences,
// Detokenize, CorrectSpaces, MarkParagraphs, Paragraphs, CalculateIndexes
// and GenerateRawTokens, plus a handful of thin convenience wrappers the
// original implementation's export list carried (normalized_text,
// text_from_tokens, parse_tokens).
package icetok

import (
	"strings"

	"github.com/mideind/icetok/internal/abbrev"
	"github.com/mideind/icetok/internal/detok"
	"github.com/mideind/icetok/internal/lexer"
	"github.com/mideind/icetok/internal/pipeline"
	"github.com/mideind/icetok/tok"
)

// Options is the recognized option set of spec.md §6. The zero value is
// not necessarily the documented default; use DefaultOptions.
type Options struct {
	ReplaceCompositeGlyphs bool
	ReplaceHTMLEscapes     bool
	ConvertNumbers         bool
	ConvertTelnos          bool
	ConvertMeasurements    bool
	CoalescePercent        bool
	HandleKludgyOrdinals   pipeline.KludgyOrdinalMode
	OneSentPerLine         bool
	Normalize              bool

	// Abbrev supplies the abbreviation table the particle coalescer
	// (stage 2) consults. A nil Abbrev falls back to the shared
	// abbrev.Default table, which holds no entries unless an earlier
	// abbrev.Default call loaded some into it.
	Abbrev *abbrev.Table
}

// DefaultOptions returns spec.md §6's documented defaults.
func DefaultOptions() Options {
	return Options{
		ReplaceCompositeGlyphs: true,
		HandleKludgyOrdinals:   pipeline.PassThrough,
	}
}

func (o Options) lexerOptions() lexer.Options {
	return lexer.Options{
		ReplaceHTMLEscapes:     o.ReplaceHTMLEscapes,
		ReplaceCompositeGlyphs: o.ReplaceCompositeGlyphs,
		OneSentPerLine:         o.OneSentPerLine,
		KludgyOrdinals:         o.HandleKludgyOrdinals,
	}
}

func (o Options) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		ConvertNumbers:       o.ConvertNumbers,
		ConvertTelnos:        o.ConvertTelnos,
		ConvertMeasurements:  o.ConvertMeasurements,
		CoalescePercent:      o.CoalescePercent,
		HandleKludgyOrdinals: o.HandleKludgyOrdinals,
		OneSentPerLine:       o.OneSentPerLine,
	}
}

func (o Options) deps() pipeline.Deps {
	table := o.Abbrev
	if table == nil {
		table, _ = abbrev.Default(strings.NewReader(""))
	}
	return pipeline.Deps{Abbrev: table}
}

// GenerateRawTokens exposes stage 1 alone (spec.md §6): the raw lexer's
// character-class tokens, with no particle coalescing, sentence
// segmentation or phrase composition applied.
func GenerateRawTokens(input string, opts Options) []tok.Tok {
	return lexer.New(input, opts.lexerOptions()).All()
}

// TokenizeWithoutAnnotation runs stages 1 through 5 only: the particle
// coalescer, sentence segmenter and both date/time composition passes,
// but not stage 6's number-word/amount/percent phrase folding.
func TokenizeWithoutAnnotation(input string, opts Options) []tok.Tok {
	lx := lexer.New(input, opts.lexerOptions())
	src := pipeline.BuildWithoutAnnotation(lx, opts.deps(), opts.pipelineOptions())
	return drain(src)
}

// Tokenize runs the full six-stage pipeline, with X_END filtered from the
// result (spec.md §6).
func Tokenize(input string, opts Options) []tok.Tok {
	lx := lexer.New(input, opts.lexerOptions())
	src := pipeline.Build(lx, opts.deps(), opts.pipelineOptions())
	return drain(src)
}

func drain(src pipeline.TokenSource) []tok.Tok {
	var out []tok.Tok
	for {
		t, ok := src.Next()
		if !ok {
			return out
		}
		if t.Kind == tok.X_END {
			continue
		}
		out = append(out, t)
	}
}

// SplitIntoSentences tokenizes input and renders one sentence per element
// (spec.md §6). By default each sentence goes through the detokenizer's
// spacing reconstruction, so punctuation is not space-separated from its
// neighbours. When original is true, the tokens' literal Txt values are
// joined by single spaces instead. Neither mode reproduces the source
// text's own spacing.
func SplitIntoSentences(input string, opts Options, original bool) []string {
	toks := Tokenize(input, opts)
	var sentences []string
	var cur []tok.Tok
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if original {
			words := make([]string, len(cur))
			for i, t := range cur {
				words[i] = t.Txt
			}
			sentences = append(sentences, strings.Join(words, " "))
		} else {
			sentences = append(sentences, detok.Detokenize(cur, detok.Options{Normalize: opts.Normalize}))
		}
		cur = nil
	}
	for _, t := range toks {
		switch t.Kind {
		case tok.S_BEGIN, tok.S_END, tok.P_BEGIN, tok.P_END:
			flush()
		default:
			cur = append(cur, t)
		}
	}
	flush()
	return sentences
}

// Detokenize reconstructs spaced text from a token stream, optionally
// applying the normalization pass (spec.md §4.8, §6).
func Detokenize(toks []tok.Tok, normalize bool) string {
	return detok.Detokenize(toks, detok.Options{Normalize: normalize})
}

// CorrectSpaces re-renders an arbitrary string's spacing according to the
// canonical matrix (spec.md §6), independent of any token stream.
func CorrectSpaces(s string) string {
	return detok.CorrectSpaces(s)
}

// MarkParagraphs wraps each newline-delimited paragraph of s in "[[ " and
// " ]]" (spec.md §6).
func MarkParagraphs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = "[[ " + line + " ]]"
	}
	return strings.Join(lines, "\n")
}

// Paragraph is one paragraph of a tokenized stream: the index (within the
// whole token stream passed to Paragraphs) of its first S_BEGIN token, and
// its full token list.
type Paragraph struct {
	SentenceStartIndex int
	Tokens             []tok.Tok
}

// Paragraphs groups toks into paragraphs on P_BEGIN/P_END boundaries
// (spec.md §6). A stream with no paragraph markers at all is returned as
// a single paragraph starting at index 0.
func Paragraphs(toks []tok.Tok) []Paragraph {
	var paras []Paragraph
	var cur []tok.Tok
	sentenceStart := -1
	sawMarker := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		start := sentenceStart
		if start < 0 {
			start = 0
		}
		paras = append(paras, Paragraph{SentenceStartIndex: start, Tokens: cur})
		cur = nil
		sentenceStart = -1
	}

	for i, t := range toks {
		switch t.Kind {
		case tok.P_BEGIN:
			sawMarker = true
			flush()
		case tok.P_END:
			sawMarker = true
			flush()
		default:
			if t.Kind == tok.S_BEGIN && sentenceStart < 0 {
				sentenceStart = i
			}
			cur = append(cur, t)
		}
	}
	flush()

	if !sawMarker && len(toks) > 0 {
		return []Paragraph{{SentenceStartIndex: 0, Tokens: toks}}
	}
	return paras
}

// CalculateIndexes returns, for each token in toks, the starting char
// (rune) offset and byte offset the token's Original occupies in the
// source text the whole pipeline was built over. lastIsEnd, when true,
// additionally reports a trailing entry for the position just past the
// last token (spec.md §6).
func CalculateIndexes(toks []tok.Tok, lastIsEnd bool) (charIndexes, byteIndexes []int) {
	charOffset, byteOffset := 0, 0
	for _, t := range toks {
		charIndexes = append(charIndexes, charOffset)
		byteIndexes = append(byteIndexes, byteOffset)
		n := len([]rune(t.Original))
		charOffset += n
		byteOffset += len(t.Original)
	}
	if lastIsEnd {
		charIndexes = append(charIndexes, charOffset)
		byteIndexes = append(byteIndexes, byteOffset)
	}
	return charIndexes, byteIndexes
}

// NormalizedText tokenizes input and detokenizes it with normalization
// applied, a convenience wrapper the original implementation exported
// directly (its __init__.py's normalized_text).
func NormalizedText(input string, opts Options) string {
	return NormalizedTextFromTokens(Tokenize(input, opts))
}

// NormalizedTextFromTokens detokenizes toks with normalization applied.
func NormalizedTextFromTokens(toks []tok.Tok) string {
	return detok.Detokenize(toks, detok.Options{Normalize: true})
}

// TextFromTokens detokenizes toks without normalization — the plain
// surface reconstruction (original implementation's text_from_tokens).
func TextFromTokens(toks []tok.Tok) string {
	return detok.Detokenize(toks, detok.Options{})
}

// ParseTokens rebuilds a token stream previously serialized with each
// Tok.ToJSON, one JSON object per line (original implementation's
// parse_tokens). Malformed lines are skipped rather than failing the
// whole stream, matching spec.md §7's never-fail-on-malformed-input
// policy for anything past the I/O boundary.
func ParseTokens(lines []string) []tok.Tok {
	var out []tok.Tok
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t, err := tok.FromJSON([]byte(line))
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}
