package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "guildlog",
	Short: "Analyze guild activity logs",
	Long: `guildlog loads guild activity log exports, classifies every entry,
and filters, sorts, and exports the result.

Input can be a log file, a directory of exports, an http(s) URL, or stdin.
With no input argument, the directory named by $GUILDLOG_DIR is searched
for the most recent export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log skipped lines and other diagnostics to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
