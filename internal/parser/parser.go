// Package parser converts guild activity log lines into records.
//
// A log line looks like:
//
//	12) 3 Jan '24 09:15pm : Aria Nightshade has died at level 42; slain by Dragon
//
// That is: an ordinal, a timestamp, a " : " separator, a free-text player
// name, and an action clause that begins with a fixed lead word.
package parser

import (
	"strings"
	"time"

	"github.com/guildlog/guildlog-go/pkg/guildlog/record"
)

// Parse parses one guild log line into a Record.
//
// Returns:
//   - (*Record, nil): Successfully parsed
//   - (nil, nil): Line does not match the log grammar
//   - (*Record, error): Line matched but its timestamp token did not parse;
//     the record is still returned, with a zero Timestamp
func Parse(line string) (*record.Record, error) {
	line = strings.TrimSpace(line)

	rest, ok := cutOrdinal(line)
	if !ok {
		return nil, nil
	}

	tsToken, rest, ok := cutTimestamp(rest)
	if !ok {
		return nil, nil
	}

	player, clause, ok := splitPlayerClause(rest)
	if !ok {
		return nil, nil
	}

	eventType, details := splitDetails(clause)
	rec := &record.Record{
		Player:   player,
		RawEvent: eventType,
		Details:  details,
	}

	ts, err := parseTimestamp(tsToken)
	if err != nil {
		return rec, err
	}
	rec.Timestamp = ts
	return rec, nil
}

// cutOrdinal strips the "<digits>)" prefix and the whitespace after it.
func cutOrdinal(s string) (string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != ')' {
		return "", false
	}
	j := skipSpace(s, i+1)
	if j == i+1 || j >= len(s) {
		return "", false
	}
	return s[j:], true
}

// cutTimestamp splits at the first colon surrounded by whitespace. The left
// side is the timestamp token; whether it actually parses is decided later,
// so a mangled timestamp does not reject the whole line.
func cutTimestamp(s string) (token, rest string, ok bool) {
	for i := 1; i < len(s)-1; i++ {
		if s[i] != ':' || !isSpace(s[i-1]) || !isSpace(s[i+1]) {
			continue
		}
		token = strings.TrimSpace(s[:i])
		rest = strings.TrimSpace(s[i+1:])
		if token == "" || rest == "" {
			return "", "", false
		}
		return token, rest, true
	}
	return "", "", false
}

// splitPlayerClause tries each whitespace run left to right and accepts the
// first split whose remainder starts with a lead word. This keeps the player
// match as short as possible, the way a non-greedy capture would.
func splitPlayerClause(s string) (player, clause string, ok bool) {
	for i := 1; i < len(s); i++ {
		if !isSpace(s[i]) {
			continue
		}
		j := skipSpace(s, i)
		if j >= len(s) {
			break
		}
		if startsWithLeadWord(s[j:]) {
			return strings.TrimSpace(s[:i]), s[j:], true
		}
		i = j - 1
	}
	return "", "", false
}

// startsWithLeadWord reports whether s begins with a lead word followed by
// whitespace and at least one more character.
func startsWithLeadWord(s string) bool {
	for _, w := range leadWords {
		if len(s) > len(w)+1 && s[:len(w)] == w && isSpace(s[len(w)]) {
			return true
		}
	}
	return false
}

// splitDetails splits the clause at its first ";" into the event type and
// the trailing details.
func splitDetails(clause string) (eventType, details string) {
	before, after, found := strings.Cut(clause, ";")
	if !found {
		return strings.TrimSpace(clause), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

func parseTimestamp(token string) (time.Time, error) {
	ts, err := time.ParseInLocation(timestampLayout, token, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return ts.In(record.ReferenceLocation()), nil
}
