package kmp

import (
	"golang.org/x/exp/slices"

	"github.com/mhr3/kmpsearch/utf8"
)

// Searcher performs repeated searches for one pattern.
// Construct once with NewSearcher, then search any number of texts.
// The skip table is built once and shared by every search; a Searcher is
// immutable and safe for concurrent use.
type Searcher struct {
	pattern []rune // decoded pattern
	table   []int  // shift per matched prefix length
	period  int    // shift after a full match
}

// NewSearcher creates a Searcher for pattern.
func NewSearcher(pattern string) Searcher {
	return newSearcher(utf8.Runes(pattern))
}

// NewSearcherRunes creates a Searcher for an already decoded pattern.
// The slice is copied.
func NewSearcherRunes(pattern []rune) Searcher {
	return newSearcher(slices.Clone(pattern))
}

func newSearcher(pattern []rune) Searcher {
	table, period := buildSkipTable(pattern)
	return Searcher{
		pattern: pattern,
		table:   table,
		period:  period,
	}
}

// Len returns the pattern length in codepoints.
func (s Searcher) Len() int {
	return len(s.pattern)
}

// Pattern returns the pattern as a string.
func (s Searcher) Pattern() string {
	return string(s.pattern)
}

// SkipTable returns a copy of the pattern's skip table.
func (s Searcher) SkipTable() []int {
	return slices.Clone(s.table)
}

// Index returns the codepoint index of the first occurrence of the pattern
// in text, or -1 if it is not present.
func (s Searcher) Index(text string) int {
	if len(s.pattern) == 0 {
		return 0
	}
	return s.IndexRunes(utf8.Runes(text))
}

// IndexRunes is like Index but takes an already decoded text.
func (s Searcher) IndexRunes(text []rune) int {
	if len(s.pattern) == 0 {
		return 0
	}
	var buf [1]int
	if res := scan(buf[:0], text, s.pattern, s.table, s.period, 0, scanFirst); len(res) > 0 {
		return res[0]
	}
	return -1
}

// IndexAll returns the codepoint index of every occurrence of the pattern in
// text, in increasing order. Occurrences may overlap. The empty pattern
// matches at every index from 0 through the text length.
func (s Searcher) IndexAll(text string) []int {
	return s.IndexAllRunes(utf8.Runes(text))
}

// IndexAllRunes is like IndexAll but takes an already decoded text.
func (s Searcher) IndexAllRunes(text []rune) []int {
	if len(s.pattern) == 0 {
		return everyIndex(0, len(text))
	}
	return scan(nil, text, s.pattern, s.table, s.period, 0, scanOverlapping)
}

// IndexNonOverlapping returns the codepoint indices of the occurrences of
// the pattern in text that start at or after start, such that every match
// begins at or after the end of the previous one. Matches are chosen
// greedily from the left. A negative start is treated as 0.
func (s Searcher) IndexNonOverlapping(text string, start int) []int {
	return s.IndexNonOverlappingRunes(utf8.Runes(text), start)
}

// IndexNonOverlappingRunes is like IndexNonOverlapping but takes an already
// decoded text.
func (s Searcher) IndexNonOverlappingRunes(text []rune, start int) []int {
	start = max(start, 0)
	if start > len(text) {
		return nil
	}
	if len(s.pattern) == 0 {
		return everyIndex(start, len(text))
	}
	return scan(nil, text, s.pattern, s.table, s.period, start, scanNonOverlapping)
}

// Contains reports whether the pattern occurs in text.
func (s Searcher) Contains(text string) bool {
	return s.Index(text) >= 0
}

// Count returns the number of non-overlapping occurrences of the pattern in
// text. If the pattern is empty, Count returns 1 + the codepoint count of
// text.
func (s Searcher) Count(text string) int {
	if len(s.pattern) == 0 {
		return utf8.RuneCount(text) + 1
	}
	return len(s.IndexNonOverlapping(text, 0))
}
