package config

import (
	"github.com/mideind/icetok/internal/detok"
	"github.com/mideind/icetok/internal/lexer"
	"github.com/mideind/icetok/internal/pipeline"
)

// LexerOptions projects the loaded TokenizerConfig onto internal/lexer's
// preprocessing options.
func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{
		ReplaceHTMLEscapes:     c.Tokenizer.ReplaceHTMLEscapes,
		ReplaceCompositeGlyphs: c.Tokenizer.ReplaceCompositeGlyphs,
	}
}

// PipelineOptions projects the loaded TokenizerConfig onto internal/
// pipeline's stage options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		ConvertNumbers:       c.Tokenizer.ConvertNumbers,
		ConvertTelnos:        c.Tokenizer.ConvertTelnos,
		ConvertMeasurements:  c.Tokenizer.ConvertMeasurements,
		CoalescePercent:      c.Tokenizer.CoalescePercent,
		HandleKludgyOrdinals: kludgyOrdinalMode(c.Tokenizer.HandleKludgyOrdinals),
		OneSentPerLine:       c.Tokenizer.OneSentPerLine,
	}
}

// DetokOptions projects the loaded TokenizerConfig onto internal/detok's
// normalization option.
func (c *Config) DetokOptions() detok.Options {
	return detok.Options{Normalize: c.Tokenizer.Normalize}
}

func kludgyOrdinalMode(s string) pipeline.KludgyOrdinalMode {
	switch s {
	case "modify":
		return pipeline.Modify
	case "translate":
		return pipeline.Translate
	default:
		return pipeline.PassThrough
	}
}
