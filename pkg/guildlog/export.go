package guildlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVHeader is the fixed export header row. Column order matches
// Record.Fields.
var CSVHeader = []string{"Timestamp", "Player", "Event", "Details", "Level", "Event Type"}

// ExportCSV writes records as CSV to w: the fixed header plus one row per
// record in slice order. Null timestamps and levels render as empty fields.
// The writer is the storage collaborator; any write error is surfaced.
func ExportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Fields()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportCSVFile writes records to the file at path, creating or truncating
// it. Failures are always surfaced; a partial file may remain after an
// error, but success is never reported silently wrong.
func ExportCSVFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := ExportCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}
	return nil
}
