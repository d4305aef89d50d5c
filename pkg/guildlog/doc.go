// Package guildlog provides parsing and analysis of guild activity logs.
//
// This package allows you to:
//   - Parse exported guild log text into structured records
//   - Classify records into event categories (deaths, joins, promotions, ...)
//   - Filter and sort records by player, category, date range, or free text
//   - Export filtered records to CSV
//
// # Basic Usage
//
// To load and filter a log export:
//
//	records, diags, err := guildlog.LoadFromFile("guild.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Printf("warning: %s", d)
//	}
//
//	filtered, err := guildlog.ApplyFilters(records, guildlog.Criteria{
//	    Category: "death",
//	    SortBy:   guildlog.SortTimestamp,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := guildlog.ExportCSVFile("deaths.csv", filtered); err != nil {
//	    log.Fatal(err)
//	}
//
// To parse a single log line:
//
//	rec, err := guildlog.ParseLine(line)
//	if err != nil {
//	    log.Printf("bad timestamp: %v", err)
//	}
//	if rec != nil {
//	    fmt.Println(rec.Player, rec.Category)
//	}
//
// A line that does not match the log grammar yields (nil, nil). A line that
// matches but carries an unparseable timestamp yields a record with a null
// timestamp alongside the error, so callers can keep or drop it as they
// see fit.
//
// # Remote Logs
//
// Logs published over HTTP can be loaded directly:
//
//	records, diags, err := guildlog.LoadFromURL(ctx, url,
//	    guildlog.WithFetchTimeout(5*time.Second),
//	)
//
// Supply a custom [Fetcher] via [WithFetcher] to control transport
// behavior or to stub network access in tests.
//
// # Preset Filter Files
//
// For reusable filter definitions without code, use the [preset] subpackage:
//
//	import "github.com/guildlog/guildlog-go/pkg/guildlog/preset"
//
//	pf, err := preset.Load("deaths-this-month.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := guildlog.ApplyFilters(records, pf.Criteria())
//
// See the [preset] package for details on the YAML format.
//
// # Timestamps
//
// Log timestamps carry no zone information. They are interpreted as UTC and
// converted to the guild's reference zone (America/New_York) for display
// and date filtering. [Record.TimestampDisplay] renders the canonical form.
package guildlog
