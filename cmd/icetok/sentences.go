package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mideind/icetok"
	"github.com/mideind/icetok/internal/config"
)

var sentencesOriginal bool

var sentencesCmd = &cobra.Command{
	Use:   "sentences [infile]",
	Short: "Split text into one sentence per line",
	Long: `sentences tokenizes infile (or stdin) and prints one sentence per
line, reassembled through the detokenizer's spacing engine.

Examples:
  icetok sentences in.txt             One detokenized sentence per line
  echo "Hæ. Bless." | icetok sentences
  icetok sentences in.txt --original  Join each sentence's literal tokens instead`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSentences(args)
	},
}

func init() {
	sentencesCmd.Flags().BoolVar(&sentencesOriginal, "original", false, "Join literal token text instead of detokenizing")
	rootCmd.AddCommand(sentencesCmd)
}

func runSentences(args []string) error {
	var input string
	if len(args) > 0 {
		if err := validateFilePath(args[0]); err != nil {
			return fmt.Errorf("invalid input file: %w", err)
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		input = string(content)
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return fmt.Errorf("no input provided")
		}
		input = string(content)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lexOpts := cfg.LexerOptions()
	pipeOpts := cfg.PipelineOptions()

	abbrevTable, err := loadAbbrevTable(cfg)
	if err != nil {
		return err
	}

	opts := icetok.Options{
		ReplaceCompositeGlyphs: lexOpts.ReplaceCompositeGlyphs,
		ReplaceHTMLEscapes:     lexOpts.ReplaceHTMLEscapes,
		ConvertNumbers:         pipeOpts.ConvertNumbers,
		ConvertTelnos:          pipeOpts.ConvertTelnos,
		ConvertMeasurements:    pipeOpts.ConvertMeasurements,
		CoalescePercent:        pipeOpts.CoalescePercent,
		HandleKludgyOrdinals:   pipeOpts.HandleKludgyOrdinals,
		OneSentPerLine:         pipeOpts.OneSentPerLine,
		Normalize:              cfg.DetokOptions().Normalize,
		Abbrev:                 abbrevTable,
	}

	for _, sentence := range icetok.SplitIntoSentences(input, opts, sentencesOriginal) {
		fmt.Println(sentence)
	}
	return nil
}
