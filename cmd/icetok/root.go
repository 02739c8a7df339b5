package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icetok",
	Short: "icetok - an Icelandic streaming tokenizer",
	Long: `icetok splits Icelandic text into a classified, origin-tracked
token stream: words, numbers, dates, times, amounts, percentages and more,
then optionally reconstructs spaced text from that stream.

Examples:
  icetok tokenize in.txt out.txt            Detokenized sentences, one per line
  icetok tokenize in.txt out.json --json    One JSON object per token
  icetok tokenize in.txt out.csv --csv      One CSV record per token`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
