// Package config provides configuration management for the icetok CLI and
// library facade. Configuration is loaded from TOML files with embedded
// defaults (spec.md §6's option set, plus the abbreviation file path).
package config

// Config is the root configuration structure.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Abbrev    AbbrevConfig    `mapstructure:"abbrev"`
}

// TokenizerConfig mirrors spec.md §6's recognized option set.
type TokenizerConfig struct {
	ConvertNumbers         bool   `mapstructure:"convert_numbers"`
	ConvertTelnos          bool   `mapstructure:"convert_telnos"`
	ConvertMeasurements    bool   `mapstructure:"convert_measurements"`
	CoalescePercent        bool   `mapstructure:"coalesce_percent"`
	OneSentPerLine         bool   `mapstructure:"one_sent_per_line"`
	ReplaceHTMLEscapes     bool   `mapstructure:"replace_html_escapes"`
	ReplaceCompositeGlyphs bool   `mapstructure:"replace_composite_glyphs"`
	// HandleKludgyOrdinals is one of "pass-through", "modify", "translate".
	HandleKludgyOrdinals string `mapstructure:"handle_kludgy_ordinals"`
	Normalize            bool   `mapstructure:"normalize"`
}

// AbbrevConfig points at the abbreviation table's source file(s).
type AbbrevConfig struct {
	FilePath string `mapstructure:"file_path"`
}
