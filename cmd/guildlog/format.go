package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/guildlog/guildlog-go/pkg/guildlog"
)

// validFormats lists all valid output formats for show.
var validFormats = map[string]bool{
	"table": true,
	"jsonl": true,
	"csv":   true,
}

// outputRecords writes records in the specified format to the writer.
func outputRecords(format string, records []guildlog.Record, out io.Writer) error {
	switch format {
	case "table":
		return outputTable(records, out)
	case "jsonl":
		return outputJSONL(records, out)
	case "csv":
		return guildlog.ExportCSV(out, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// outputTable writes records as an aligned text table.
func outputTable(records []guildlog.Record, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TIMESTAMP\tPLAYER\tEVENT\tDETAILS\tLEVEL\tTYPE"); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(tw, strings.Join(rec.Fields(), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// jsonRow is the JSON Lines projection of a record. The timestamp is
// rendered in display form rather than RFC 3339, so rows match what the
// table and CSV outputs show; null fields are omitted entirely.
type jsonRow struct {
	Timestamp string `json:"timestamp,omitempty"`
	Player    string `json:"player"`
	Event     string `json:"event"`
	Details   string `json:"details,omitempty"`
	Level     *int   `json:"level,omitempty"`
	Category  string `json:"category"`
}

// outputJSONL writes records as JSON Lines, one object per record.
func outputJSONL(records []guildlog.Record, out io.Writer) error {
	enc := json.NewEncoder(out)
	for _, rec := range records {
		row := jsonRow{
			Timestamp: rec.TimestampDisplay(),
			Player:    rec.Player,
			Event:     rec.RawEvent,
			Details:   rec.Details,
			Level:     rec.Level,
			Category:  string(rec.Category),
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
