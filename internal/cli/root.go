package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gptkiller",
	Short: "Korean AI-text likelihood scorer",
	Long: `gptkiller estimates how likely a Korean text was produced by a
generative AI model using surface linguistic statistics: lexical diversity,
sentence-length burstiness, formal sentence endings, logical connectives and
token repetition.

Usage:
  gptkiller serve            Run the HTTP scoring service
  gptkiller analyze [file]   Score a file (or stdin) from the command line`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
