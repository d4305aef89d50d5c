package guildlog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/guildlog/guildlog-go/pkg/guildlog/record"
)

// DateLayout is the calendar-date format accepted by Criteria bounds.
const DateLayout = "2006-01-02"

// SortKey selects the field ApplyFilters orders by.
type SortKey string

// Valid sort keys. SortNone leaves input order untouched.
const (
	SortNone      SortKey = ""
	SortTimestamp SortKey = "timestamp"
	SortPlayer    SortKey = "player"
	SortCategory  SortKey = "category"
	SortLevel     SortKey = "level"
)

// ParseSortKey normalizes user input (trimmed, case-insensitive) into a
// SortKey. Unrecognized values return ErrInvalidSortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case SortNone, SortTimestamp, SortPlayer, SortCategory, SortLevel:
		return k, nil
	}
	return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Criteria is the optional predicate/sort bundle for one ApplyFilters call.
// All fields are optional and combine with AND; string fields are trimmed
// before use, and empty criteria match everything.
type Criteria struct {
	// Player keeps records whose player name contains this substring,
	// case-insensitively.
	Player string

	// Category keeps records whose category label contains this substring,
	// case-insensitively. A partial label selects: "Level" also matches
	// the "Level Up" label.
	Category string

	// StartDate and EndDate bound the timestamp as YYYY-MM-DD calendar
	// dates in the reference timezone, inclusive on both ends. They only
	// take effect when both are supplied. Records with a null timestamp are
	// excluded while the bounds are active: they cannot be compared.
	StartDate string
	EndDate   string

	// Find keeps records where any stringified field contains this,
	// case-insensitively.
	Find string

	// SortBy orders the result: stable, ascending, with null timestamps and
	// nil levels after all valued records.
	SortBy SortKey
}

// ApplyFilters applies c to records and returns a fresh slice; the input is
// never reordered or mutated, so the call is idempotent. An unknown sort key
// or a malformed date bound aborts with ErrInvalidSortKey or ErrInvalidDate
// before any filtering, leaving the caller's previous view intact.
func ApplyFilters(records []Record, c Criteria) ([]Record, error) {
	sortBy, err := ParseSortKey(string(c.SortBy))
	if err != nil {
		return nil, err
	}

	player := strings.ToLower(strings.TrimSpace(c.Player))
	category := strings.ToLower(strings.TrimSpace(c.Category))
	find := strings.ToLower(strings.TrimSpace(c.Find))

	var start, end time.Time
	startStr := strings.TrimSpace(c.StartDate)
	endStr := strings.TrimSpace(c.EndDate)
	dateFilter := startStr != "" && endStr != ""
	if dateFilter {
		if start, err = parseDateBound(startStr); err != nil {
			return nil, err
		}
		if end, err = parseDateBound(endStr); err != nil {
			return nil, err
		}
		// The end day is included in full.
		end = end.AddDate(0, 0, 1)
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if player != "" && !strings.Contains(strings.ToLower(rec.Player), player) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(string(rec.Category)), category) {
			continue
		}
		if dateFilter {
			if rec.Timestamp.IsZero() {
				continue
			}
			if rec.Timestamp.Before(start) || !rec.Timestamp.Before(end) {
				continue
			}
		}
		if find != "" && !fieldsContain(rec, find) {
			continue
		}
		out = append(out, rec)
	}

	sortRecords(out, sortBy)
	return out, nil
}

func parseDateBound(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, record.ReferenceLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

func fieldsContain(rec Record, needle string) bool {
	for _, f := range rec.Fields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// sortRecords sorts in place: stable, ascending, nulls last.
func sortRecords(records []Record, key SortKey) {
	switch key {
	case SortTimestamp:
		slices.SortStableFunc(records, func(a, b Record) int {
			switch {
			case a.Timestamp.IsZero() && b.Timestamp.IsZero():
				return 0
			case a.Timestamp.IsZero():
				return 1
			case b.Timestamp.IsZero():
				return -1
			}
			return a.Timestamp.Compare(b.Timestamp)
		})
	case SortPlayer:
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(a.Player, b.Player)
		})
	case SortCategory:
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(string(a.Category), string(b.Category))
		})
	case SortLevel:
		slices.SortStableFunc(records, func(a, b Record) int {
			switch {
			case a.Level == nil && b.Level == nil:
				return 0
			case a.Level == nil:
				return 1
			case b.Level == nil:
				return -1
			}
			return cmp.Compare(*a.Level, *b.Level)
		})
	}
}
