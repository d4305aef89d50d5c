package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"github.com/spf13/cobra"
)

var (
	showFilters filterFlags
	showFormat  string
)

var showCmd = &cobra.Command{
	Use:   "show [file|dir|url|-]",
	Short: "Load, filter, and display guild log records",
	Long: `Load a guild log export, classify every entry, and display the
records matching the given filters.

Examples:
  # Everything from the newest export in $GUILDLOG_DIR
  guildlog show

  # Deaths in January, oldest first
  guildlog show guild.txt --category death --from 2024-01-01 --to 2024-01-31 --sort timestamp

  # One player's history from a published log
  guildlog show https://example.com/guild.txt --player Aria

  # Reuse a preset, overriding one field
  guildlog show guild.txt --preset january-deaths.yaml --player Borin

  # Pipe JSON Lines to jq
  guildlog show guild.txt --format jsonl | jq 'select(.category == "Death")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showFilters.register(showCmd)
	registerInputFlags(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "table",
		"Output format: table, jsonl, csv")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !validFormats[showFormat] {
		return fmt.Errorf("unknown format: %s", showFormat)
	}

	criteria, err := showFilters.criteria(cmd)
	if err != nil {
		return err
	}

	records, diags, err := loadRecords(ctx, cmd, args)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, diags)

	filtered, err := guildlog.ApplyFilters(records, criteria)
	if err != nil {
		return err
	}

	if len(filtered) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no records found")
		return nil
	}

	return outputRecords(showFormat, filtered, cmd.OutOrStdout())
}
