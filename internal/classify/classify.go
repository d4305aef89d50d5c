// Package classify derives the event category and level from a guild log
// event clause.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/guildlog/guildlog-go/pkg/guildlog/record"
)

// levelPattern pulls the numeric value out of a "LVL: <n>" marker.
var levelPattern = regexp.MustCompile(`LVL: (\d+)`)

// rule pairs a predicate with the category it assigns. Rules run top-down
// and the first match wins; the order matters because the marker substrings
// are not mutually exclusive.
type rule struct {
	category record.Category
	match    func(eventType string) bool
}

var rules = []rule{
	{record.CategoryDeath, isDeath},
	{record.CategoryLevelUp, contains("Leveled to")},
	{record.CategoryJoin, contains("JOINED the guild")},
	{record.CategoryLeave, isLeave},
	{record.CategoryPromotion, contains("PROMOTED")},
	{record.CategoryDemotion, contains("DEMOTED")},
	{record.CategoryOnline, contains("Come ONLINE after being INACTIVE")},
}

func contains(marker string) func(string) bool {
	return func(eventType string) bool {
		return strings.Contains(eventType, marker)
	}
}

// isDeath also claims guild-leave clauses flagged with the "[D]" death
// marker, which is why it must run before the leave rule.
func isDeath(eventType string) bool {
	if strings.Contains(eventType, "has died") {
		return true
	}
	return strings.Contains(eventType, "has Left the guild") &&
		strings.Contains(eventType, "[D]")
}

func isLeave(eventType string) bool {
	return strings.Contains(eventType, "Left the guild") ||
		strings.Contains(eventType, "is no longer in the Guild")
}

// Category maps an event clause to its category. The function is total:
// clauses matching no rule fall through to CategoryOther.
func Category(eventType string) record.Category {
	for _, r := range rules {
		if r.match(eventType) {
			return r.category
		}
	}
	return record.CategoryOther
}

// Level extracts the value of a "LVL: <n>" marker anywhere in the clause,
// independent of which category matched. Returns nil when the marker is
// absent or its digits do not fit an int.
func Level(eventType string) *int {
	m := levelPattern.FindStringSubmatch(eventType)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
