package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mideind/icetok"
	"github.com/mideind/icetok/format"
	"github.com/mideind/icetok/internal/config"
	"github.com/mideind/icetok/internal/pipeline"
)

var (
	tokenizeCSV                 bool
	tokenizeJSON                bool
	tokenizeMoses               bool
	tokenizeOneSentPerLine      bool
	tokenizeConvertNumbers      bool
	tokenizeConvertTelnos       bool
	tokenizeConvertMeasurements bool
	tokenizeCoalescePercent     bool
	tokenizeHTMLEscapes         bool
	tokenizeNoCompositeGlyphs   bool
	tokenizeKludgyOrdinals      string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <infile> <outfile>",
	Short: "Tokenize Icelandic text",
	Long: `Tokenize reads infile, runs the full tokenization pipeline, and
writes outfile in the selected output format.

Examples:
  icetok tokenize in.txt out.txt             Detokenized sentences, one per line
  icetok tokenize in.txt out.json --json     One JSON object per token
  icetok tokenize in.txt out.csv --csv       One CSV record per token
  icetok tokenize in.txt out.txt --moses     Moses-escaped sentence output`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokenize(args[0], args[1])
	},
}

func init() {
	tokenizeCmd.Flags().BoolVar(&tokenizeCSV, "csv", false, "Output one CSV record per token")
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "Output one JSON object per token")
	tokenizeCmd.Flags().BoolVar(&tokenizeMoses, "moses", false, "Moses-escape the default sentence output")
	tokenizeCmd.Flags().BoolVar(&tokenizeOneSentPerLine, "one-sent-per-line", false, "Treat each input line as its own sentence")
	tokenizeCmd.Flags().BoolVar(&tokenizeConvertNumbers, "convert-numbers", false, "Rewrite English number punctuation to Icelandic")
	tokenizeCmd.Flags().BoolVar(&tokenizeConvertTelnos, "convert-telnos", false, "Normalize telephone numbers")
	tokenizeCmd.Flags().BoolVar(&tokenizeConvertMeasurements, "convert-measurements", false, "Canonicalize measurement phrases")
	tokenizeCmd.Flags().BoolVar(&tokenizeCoalescePercent, "coalesce-percent", false, "Fold number + percent word into PERCENT")
	tokenizeCmd.Flags().BoolVar(&tokenizeHTMLEscapes, "html-escapes", false, "Expand HTML entities before lexing")
	tokenizeCmd.Flags().BoolVar(&tokenizeNoCompositeGlyphs, "no-composite-glyphs", false, "Disable composite-glyph collapsing")
	tokenizeCmd.Flags().StringVar(&tokenizeKludgyOrdinals, "kludgy-ordinals", "", "pass-through, modify, or translate (default: config file, then pass-through)")
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(infile, outfile string) error {
	if err := validateFilePath(infile); err != nil {
		return fmt.Errorf("invalid input file: %w", err)
	}

	content, err := os.ReadFile(infile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts := cfg.PipelineOptions()
	lexOpts := cfg.LexerOptions()

	abbrevTable, err := loadAbbrevTable(cfg)
	if err != nil {
		return err
	}

	icetokOpts := icetok.Options{
		ReplaceCompositeGlyphs: lexOpts.ReplaceCompositeGlyphs && !tokenizeNoCompositeGlyphs,
		ReplaceHTMLEscapes:     lexOpts.ReplaceHTMLEscapes || tokenizeHTMLEscapes,
		ConvertNumbers:         opts.ConvertNumbers || tokenizeConvertNumbers,
		ConvertTelnos:          opts.ConvertTelnos || tokenizeConvertTelnos,
		ConvertMeasurements:    opts.ConvertMeasurements || tokenizeConvertMeasurements,
		CoalescePercent:        opts.CoalescePercent || tokenizeCoalescePercent,
		HandleKludgyOrdinals:   kludgyOrdinalMode(tokenizeKludgyOrdinals, opts.HandleKludgyOrdinals),
		OneSentPerLine:         opts.OneSentPerLine || tokenizeOneSentPerLine,
		Abbrev:                 abbrevTable,
	}

	toks := icetok.Tokenize(string(content), icetokOpts)

	var out *os.File
	if outfile == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(outfile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	formatName := ""
	switch {
	case tokenizeJSON:
		formatName = "json"
	case tokenizeCSV:
		formatName = "csv"
	}
	formatter := format.GetFormatter(formatName, outfile)
	return formatter.Format(out, toks, format.Options{Moses: tokenizeMoses})
}

func kludgyOrdinalMode(flag string, fallback pipeline.KludgyOrdinalMode) pipeline.KludgyOrdinalMode {
	switch flag {
	case "modify":
		return pipeline.Modify
	case "translate":
		return pipeline.Translate
	case "pass-through":
		return pipeline.PassThrough
	default:
		return fallback
	}
}
