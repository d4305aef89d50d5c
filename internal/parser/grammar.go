package parser

// Timestamp format in guild log exports: "3 Jan '24 09:15pm".
// Parsed as UTC, then converted to the reference timezone.
const timestampLayout = "2 Jan '06 3:04pm"

// leadWords mark the start of the action clause. The player name is free
// text and may contain spaces, so the player/event split accepts the first
// candidate whose remainder begins with one of these words.
var leadWords = []string{
	"has",
	"is",
	"matches",
	"PROMOTED",
	"DEMOTED",
	"JOINED",
	"Left",
	"Come",
	"died",
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

// skipSpace returns the index of the first non-space byte at or after i.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
