package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by the main package; left at its default outside of
// release builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("icetok %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
