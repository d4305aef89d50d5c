package guildlog_test

import (
	"testing"
	"time"

	"github.com/guildlog/guildlog-go/pkg/guildlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastern(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, guildlog.ReferenceLocation())
}

func level(n int) *int { return &n }

// fixtureRecords covers every sortable field shape: valued and null
// timestamps, valued and nil levels, mixed categories.
func fixtureRecords() []guildlog.Record {
	return []guildlog.Record{
		{Timestamp: eastern(5, 12), Player: "Aria Nightshade", RawEvent: "has died", Details: "slain by Dragon", Category: guildlog.CategoryDeath},
		{Timestamp: eastern(3, 9), Player: "Baldric", RawEvent: "JOINED the guild LVL: 7", Level: level(7), Category: guildlog.CategoryJoin},
		{Timestamp: time.Time{}, Player: "Corin", RawEvent: "has Left the guild", Category: guildlog.CategoryLeave},
		{Timestamp: eastern(10, 23), Player: "Mira", RawEvent: "has Leveled to 12! LVL: 12", Level: level(12), Category: guildlog.CategoryLevelUp},
	}
}

func TestApplyFilters_EmptyCriteria(t *testing.T) {
	records := fixtureRecords()

	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, records, out)
}

func TestApplyFilters_Player(t *testing.T) {
	tests := []struct {
		name        string
		player      string
		wantPlayers []string
	}{
		{name: "exact", player: "Mira", wantPlayers: []string{"Mira"}},
		{name: "substring", player: "night", wantPlayers: []string{"Aria Nightshade"}},
		{name: "case_insensitive", player: "BALDRIC", wantPlayers: []string{"Baldric"}},
		{name: "trimmed", player: "  Corin  ", wantPlayers: []string{"Corin"}},
		{name: "no_match", player: "Zed", wantPlayers: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{Player: tt.player})
			require.NoError(t, err)

			var got []string
			for _, r := range out {
				got = append(got, r.Player)
			}
			assert.Equal(t, tt.wantPlayers, got)
		})
	}
}

func TestApplyFilters_Category(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{Category: "death"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, guildlog.CategoryDeath, out[0].Category)

	// Substring matching over labels: "level" selects "Level Up".
	out, err = guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{Category: "level"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, guildlog.CategoryLevelUp, out[0].Category)
}

func TestApplyFilters_DateRange(t *testing.T) {
	records := fixtureRecords()

	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})
	require.NoError(t, err)

	// The null-timestamp record is excluded; the end day is inclusive, so
	// Jan 10 23:00 survives.
	var got []string
	for _, r := range out {
		got = append(got, r.Player)
	}
	assert.Equal(t, []string{"Aria Nightshade", "Baldric", "Mira"}, got)
}

func TestApplyFilters_DateRange_Bounds(t *testing.T) {
	records := []guildlog.Record{
		{Timestamp: eastern(1, 0), Player: "AtStart"},
		{Timestamp: eastern(10, 23), Player: "InsideEndDay"},
		{Timestamp: eastern(11, 0), Player: "PastEnd"},
	}

	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "AtStart", out[0].Player)
	assert.Equal(t, "InsideEndDay", out[1].Player)
}

func TestApplyFilters_DateRange_OneSided(t *testing.T) {
	records := fixtureRecords()

	// A single bound has no effect; even the null-timestamp record stays.
	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{StartDate: "2024-01-01"})
	require.NoError(t, err)
	assert.Len(t, out, len(records))

	out, err = guildlog.ApplyFilters(records, guildlog.Criteria{EndDate: "2024-01-10"})
	require.NoError(t, err)
	assert.Len(t, out, len(records))
}

func TestApplyFilters_InvalidDate(t *testing.T) {
	tests := []struct {
		name     string
		criteria guildlog.Criteria
	}{
		{name: "bad_start", criteria: guildlog.Criteria{StartDate: "01/05/2024", EndDate: "2024-01-10"}},
		{name: "bad_end", criteria: guildlog.Criteria{StartDate: "2024-01-01", EndDate: "Jan 10"}},
		{name: "impossible_day", criteria: guildlog.Criteria{StartDate: "2024-02-31", EndDate: "2024-03-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := guildlog.ApplyFilters(fixtureRecords(), tt.criteria)
			assert.ErrorIs(t, err, guildlog.ErrInvalidDate)
			assert.Nil(t, out)
		})
	}
}

func TestApplyFilters_Find(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{Find: "dragon"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Aria Nightshade", out[0].Player)

	// Free-text search scans rendered fields, the display timestamp
	// included.
	out, err = guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{Find: "2024-01-03"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Baldric", out[0].Player)
}

func TestApplyFilters_CriteriaCombineAND(t *testing.T) {
	records := fixtureRecords()

	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{
		Player:   "a",
		Category: "join",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Baldric", out[0].Player)
}

func TestApplyFilters_InvalidSortKey(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{SortBy: "bogus"})
	assert.ErrorIs(t, err, guildlog.ErrInvalidSortKey)
	assert.Nil(t, out)
}

func TestApplyFilters_SortTimestamp(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{SortBy: guildlog.SortTimestamp})
	require.NoError(t, err)
	require.Len(t, out, 4)

	// Ascending, null timestamp last.
	assert.Equal(t, "Baldric", out[0].Player)
	assert.Equal(t, "Aria Nightshade", out[1].Player)
	assert.Equal(t, "Mira", out[2].Player)
	assert.Equal(t, "Corin", out[3].Player)
}

func TestApplyFilters_SortPlayer(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{SortBy: guildlog.SortPlayer})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "Aria Nightshade", out[0].Player)
	assert.Equal(t, "Baldric", out[1].Player)
	assert.Equal(t, "Corin", out[2].Player)
	assert.Equal(t, "Mira", out[3].Player)
}

func TestApplyFilters_SortLevel(t *testing.T) {
	out, err := guildlog.ApplyFilters(fixtureRecords(), guildlog.Criteria{SortBy: guildlog.SortLevel})
	require.NoError(t, err)
	require.Len(t, out, 4)

	// Valued levels ascending, nil levels after them in input order.
	assert.Equal(t, "Baldric", out[0].Player)
	assert.Equal(t, "Mira", out[1].Player)
	assert.Equal(t, "Aria Nightshade", out[2].Player)
	assert.Equal(t, "Corin", out[3].Player)
}

func TestApplyFilters_SortStable(t *testing.T) {
	records := []guildlog.Record{
		{Timestamp: eastern(5, 12), Player: "First", Category: guildlog.CategoryOther},
		{Timestamp: eastern(5, 12), Player: "Second", Category: guildlog.CategoryOther},
		{Timestamp: eastern(5, 12), Player: "Third", Category: guildlog.CategoryOther},
	}

	out, err := guildlog.ApplyFilters(records, guildlog.Criteria{SortBy: guildlog.SortTimestamp})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "First", out[0].Player)
	assert.Equal(t, "Second", out[1].Player)
	assert.Equal(t, "Third", out[2].Player)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	criteria := guildlog.Criteria{Category: "death", SortBy: guildlog.SortTimestamp}

	first, err := guildlog.ApplyFilters(fixtureRecords(), criteria)
	require.NoError(t, err)
	second, err := guildlog.ApplyFilters(fixtureRecords(), criteria)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestApplyFilters_InputUnchanged(t *testing.T) {
	records := fixtureRecords()
	original := fixtureRecords()

	_, err := guildlog.ApplyFilters(records, guildlog.Criteria{SortBy: guildlog.SortPlayer})
	require.NoError(t, err)
	assert.Equal(t, original, records)
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    guildlog.SortKey
		wantErr bool
	}{
		{name: "empty", input: "", want: guildlog.SortNone},
		{name: "timestamp", input: "timestamp", want: guildlog.SortTimestamp},
		{name: "uppercase", input: "PLAYER", want: guildlog.SortPlayer},
		{name: "padded", input: "  category  ", want: guildlog.SortCategory},
		{name: "level", input: "level", want: guildlog.SortLevel},
		{name: "unknown", input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guildlog.ParseSortKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, guildlog.ErrInvalidSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
