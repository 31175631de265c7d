// Package cli implements the research4me command line client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "research4me",
	Short: "Research4Me — summarize research papers into downloadable reports",
	Long: `Research4Me sends research papers to an AI analysis service and exports
the returned summary as a LaTeX, PDF, or plain-text document.

Usage:
  research4me analyze <file>... [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
