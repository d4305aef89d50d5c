package guildlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guildlog/guildlog-go/internal/safefile"
)

// DiagnosticKind labels why a line needed attention during a load.
type DiagnosticKind string

const (
	// DiagnosticLineSkipped marks a line that did not match the log grammar
	// and produced no record.
	DiagnosticLineSkipped DiagnosticKind = "line_skipped"

	// DiagnosticBadTimestamp marks a line that matched and was kept, but
	// whose timestamp token did not parse and was nulled.
	DiagnosticBadTimestamp DiagnosticKind = "bad_timestamp"
)

// Diagnostic describes one line the parser could not fully honor. Loads
// return diagnostics as a side channel next to the records: an empty record
// slice from non-empty input plus one diagnostic per line is how "nothing
// matched" is told apart from "input was empty".
type Diagnostic struct {
	Kind DiagnosticKind
	Line int    // 1-based line number in the input text
	Raw  string // the offending line as read
	Err  error  // underlying cause for DiagnosticBadTimestamp, nil otherwise
}

// String renders the diagnostic including the offending raw line.
func (d Diagnostic) String() string {
	if d.Kind == DiagnosticBadTimestamp {
		return fmt.Sprintf("line %d: timestamp unparseable, kept with empty timestamp: %q", d.Line, d.Raw)
	}
	return fmt.Sprintf("line %d: skipped, does not match log grammar: %q", d.Line, d.Raw)
}

// LoadFromText parses guild log text into classified records.
//
// It produces exactly one record per line matching the log grammar, in input
// order. Non-matching lines are dropped and reported as diagnostics; lines
// whose timestamp token does not parse are kept with a zero timestamp and
// reported as diagnostics. A non-nil error means the load failed
// structurally and no records are returned.
func LoadFromText(text string, opts ...Option) ([]Record, []Diagnostic, error) {
	cfg := applyLoadOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return loadText(text, cfg)
}

// LoadFromFile reads a log export from disk and parses it like LoadFromText.
// The path must name a regular file within the configured size cap.
func LoadFromFile(path string, opts ...Option) ([]Record, []Diagnostic, error) {
	cfg := applyLoadOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if info.Size() > cfg.maxInputBytes {
		return nil, nil, fmt.Errorf("log file %s exceeds maximum size of %d bytes", path, cfg.maxInputBytes)
	}

	data, err := io.ReadAll(io.LimitReader(f, cfg.maxInputBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read log file: %w", err)
	}
	return loadText(string(data), cfg)
}

// LoadFromURL fetches a log export over HTTP and parses it like
// LoadFromText. The fetch is one blocking request with no retry; on failure
// the load aborts with a *FetchError and no records.
func LoadFromURL(ctx context.Context, url string, opts ...Option) ([]Record, []Diagnostic, error) {
	cfg := applyLoadOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	body, err := cfg.fetcherOrDefault().Fetch(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return loadText(string(body), cfg)
}

func loadText(text string, cfg *loadConfig) ([]Record, []Diagnostic, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, nil
	}

	var (
		records     []Record
		diagnostics []Diagnostic
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	// The scanner's limit is the larger of the cap and the initial buffer,
	// so the initial buffer must not exceed the cap.
	bufSize := 64 * 1024
	if cfg.maxLineBytes < bufSize {
		bufSize = cfg.maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, bufSize), cfg.maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		rec, err := ParseLine(raw)
		if rec == nil {
			diagnostics = append(diagnostics, Diagnostic{
				Kind: DiagnosticLineSkipped,
				Line: lineNo,
				Raw:  raw,
			})
			cfg.logger.Warn("line skipped", "line", lineNo, "raw", raw)
			continue
		}
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Kind: DiagnosticBadTimestamp,
				Line: lineNo,
				Raw:  raw,
				Err:  err,
			})
			cfg.logger.Warn("timestamp unparseable", "line", lineNo, "raw", raw, "error", err)
		}
		records = append(records, *rec)
	}
	if err := scanner.Err(); err != nil {
		// Structural failure: the whole load fails with an empty result.
		return nil, nil, fmt.Errorf("scanning log text: %w", err)
	}

	cfg.logger.Debug("load complete", "records", len(records), "diagnostics", len(diagnostics))
	return records, diagnostics, nil
}
