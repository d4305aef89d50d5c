package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/guildlog/guildlog-go/internal/logfinder"
	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"github.com/spf13/cobra"
)

var fetchTimeout time.Duration

// registerInputFlags adds the flags every record-loading command shares.
func registerInputFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&fetchTimeout, "timeout", guildlog.DefaultFetchTimeout,
		"HTTP timeout when the input is a URL")
}

// loadRecords resolves the optional input argument and loads records from it:
// "-" reads stdin, http(s) URLs are fetched, directories are searched for
// the newest *.txt export, anything else is opened as a file. With no
// argument the log directory comes from $GUILDLOG_DIR.
func loadRecords(ctx context.Context, cmd *cobra.Command, args []string) ([]guildlog.Record, []guildlog.Diagnostic, error) {
	opts := []guildlog.Option{guildlog.WithFetchTimeout(fetchTimeout)}
	if verbose {
		opts = append(opts, guildlog.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))))
	}

	if len(args) == 0 {
		dir, err := logfinder.FindLogDir("")
		if err != nil {
			return nil, nil, err
		}
		path, err := logfinder.FindLatestLog(dir)
		if err != nil {
			return nil, nil, err
		}
		return guildlog.LoadFromFile(path, opts...)
	}

	input := args[0]
	switch {
	case input == "-":
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), guildlog.DefaultMaxInputBytes+1))
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		if int64(len(data)) > guildlog.DefaultMaxInputBytes {
			return nil, nil, fmt.Errorf("stdin exceeds maximum size of %d bytes", guildlog.DefaultMaxInputBytes)
		}
		return guildlog.LoadFromText(string(data), opts...)
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		return guildlog.LoadFromURL(ctx, input, opts...)
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve input: %w", err)
	}
	if info.IsDir() {
		path, err := logfinder.FindLatestLog(input)
		if err != nil {
			return nil, nil, err
		}
		return guildlog.LoadFromFile(path, opts...)
	}
	return guildlog.LoadFromFile(input, opts...)
}

// reportDiagnostics prints a one-line summary of load diagnostics. With
// --verbose the loader already logged each one, so the summary is skipped.
func reportDiagnostics(cmd *cobra.Command, diags []guildlog.Diagnostic) {
	if len(diags) == 0 || verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(),
		"warning: %d lines skipped or kept without a timestamp (re-run with --verbose for details)\n", len(diags))
}
