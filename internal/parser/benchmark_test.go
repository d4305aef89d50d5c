package parser

import (
	"testing"
)

// BenchmarkParse_Death benchmarks parsing a death event with details.
func BenchmarkParse_Death(b *testing.B) {
	line := "5) 3 Jan '24 09:15pm : Aria Nightshade has died at level 42; slain by Dragon"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}

// BenchmarkParse_LongPlayerName benchmarks the non-greedy player/event split.
func BenchmarkParse_LongPlayerName(b *testing.B) {
	line := "6) 3 Jan '24 09:15pm : Sir Galahad the Bold of the Western Marches has Left the guild"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}

// BenchmarkParse_BadTimestamp benchmarks a line kept with a null timestamp.
func BenchmarkParse_BadTimestamp(b *testing.B) {
	line := "7) 3 Jan '24 09:15 : Chris has died at level 3"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}

// BenchmarkParse_NoMatch benchmarks a line that does not match the grammar.
func BenchmarkParse_NoMatch(b *testing.B) {
	line := "the guild had a quiet day with nothing to report"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}
