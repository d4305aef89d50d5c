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
	exportFilters filterFlags
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export [file|dir|url|-]",
	Short: "Filter guild log records and write them to a CSV file",
	Long: `Load a guild log export, apply the given filters, and write the
matching records as CSV.

Examples:
  # Every death, as CSV
  guildlog export guild.txt --category death --output deaths.csv

  # January promotions sorted by player, to stdout
  guildlog export guild.txt --category promotion --from 2024-01-01 --to 2024-01-31 --sort player --output -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportFilters.register(exportCmd)
	registerInputFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		`Destination CSV file ("-" for stdout)`)
	_ = exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	criteria, err := exportFilters.criteria(cmd)
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

	if exportOutput == "-" {
		return guildlog.ExportCSV(cmd.OutOrStdout(), filtered)
	}

	if err := guildlog.ExportCSVFile(exportOutput, filtered); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d records to %s\n", len(filtered), exportOutput)
	return nil
}
