package guildlog

import (
	"github.com/guildlog/guildlog-go/internal/classify"
	"github.com/guildlog/guildlog-go/internal/parser"
)

// ParseLine parses a single guild log line into a classified Record.
//
// Return values:
//   - (*Record, nil): Successfully parsed
//   - (nil, nil): Line does not match the log grammar (not an error)
//   - (*Record, error): Line matched but its timestamp did not parse; the
//     record is returned with a zero Timestamp
//
// Example:
//
//	line := "5) 3 Jan '24 09:15pm : Aria has died at level 42; slain by Dragon"
//	rec, err := guildlog.ParseLine(line)
//	if err != nil {
//	    log.Printf("timestamp dropped: %v", err)
//	}
//	if rec != nil {
//	    fmt.Printf("%s: %s\n", rec.Player, rec.Category)
//	}
//	// rec == nil && err == nil means the line is not a guild log entry
func ParseLine(line string) (*Record, error) {
	rec, err := parser.Parse(line)
	if rec != nil {
		rec.Category = classify.Category(rec.RawEvent)
		rec.Level = classify.Level(rec.RawEvent)
	}
	return rec, err
}
