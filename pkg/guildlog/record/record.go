// Package record defines the typed record model for guild activity logs.
package record

import (
	"strconv"
	"time"

	// The reference timezone must resolve even on hosts without a system
	// zoneinfo database.
	_ "time/tzdata"
)

// Category classifies a guild log event. The set is closed: every record
// carries exactly one of the constants below.
type Category string

// Event categories, in classification priority order.
const (
	CategoryDeath     Category = "Death"
	CategoryLevelUp   Category = "Level Up"
	CategoryJoin      Category = "Join"
	CategoryLeave     Category = "Leave"
	CategoryPromotion Category = "Promotion"
	CategoryDemotion  Category = "Demotion"
	CategoryOnline    Category = "Online"
	CategoryOther     Category = "Other"
)

// Categories returns the closed category set in priority order.
func Categories() []Category {
	return []Category{
		CategoryDeath,
		CategoryLevelUp,
		CategoryJoin,
		CategoryLeave,
		CategoryPromotion,
		CategoryDemotion,
		CategoryOnline,
		CategoryOther,
	}
}

// DisplayTimeLayout is the layout record timestamps serialize to, in the
// reference timezone.
const DisplayTimeLayout = "2006-01-02 03:04:05 PM"

const referenceZoneName = "America/New_York"

var referenceLocation = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(referenceZoneName)
	if err != nil {
		// Unreachable with time/tzdata linked in.
		panic("record: load reference timezone: " + err.Error())
	}
	return loc
}

// ReferenceLocation returns the fixed timezone all record timestamps are
// normalized to (US Eastern, with standard DST rules).
func ReferenceLocation() *time.Location {
	return referenceLocation
}

// Record is one guild log event. Records are immutable once built: the
// parser creates them, the classifier fills Category and Level, and every
// later stage reads or copies, never mutates.
type Record struct {
	// Timestamp is normalized to ReferenceLocation. The zero time is the
	// null sentinel for a line whose timestamp token did not parse.
	Timestamp time.Time `json:"timestamp"`

	// Player is the trimmed display name. Non-empty for any matched line.
	Player string `json:"player"`

	// RawEvent is the event clause as captured, with any ";"-suffixed
	// details removed. Classification runs against this text.
	RawEvent string `json:"event"`

	// Details is the free text after the first ";" in the clause, trimmed.
	// Empty when the line had no separator.
	Details string `json:"details,omitempty"`

	// Level is the value of a "LVL: <n>" marker in RawEvent, nil when the
	// marker is absent or out of range.
	Level *int `json:"level,omitempty"`

	// Category is derived from RawEvent and always assigned.
	Category Category `json:"category,omitempty"`
}

// TimestampDisplay renders the timestamp in DisplayTimeLayout, or an empty
// string for the null sentinel.
func (r Record) TimestampDisplay() string {
	if r.Timestamp.IsZero() {
		return ""
	}
	return r.Timestamp.Format(DisplayTimeLayout)
}

// LevelDisplay renders the level as digits, or an empty string when nil.
func (r Record) LevelDisplay() string {
	if r.Level == nil {
		return ""
	}
	return strconv.Itoa(*r.Level)
}

// Fields returns the record stringified in the canonical column order:
// timestamp, player, event, details, level, category. CSV export and
// free-text search both consume this form, so empty fields render as empty
// strings rather than a literal null.
func (r Record) Fields() []string {
	return []string{
		r.TimestampDisplay(),
		r.Player,
		r.RawEvent,
		r.Details,
		r.LevelDisplay(),
		string(r.Category),
	}
}
