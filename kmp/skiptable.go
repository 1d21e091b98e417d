package kmp

import "github.com/mhr3/kmpsearch/utf8"

// SkipTable returns the shift table for pattern, one entry per prefix length.
//
// Entry i is the smallest shift g >= 1 that keeps the first i codepoints
// self-consistent, i.e. pattern[g:i] == pattern[:i-g]. When no shift shorter
// than i works the entry is i. Entry 0 is always 1.
func SkipTable(pattern string) []int {
	return SkipTableRunes(utf8.Runes(pattern))
}

// SkipTableRunes is like SkipTable but takes an already decoded pattern.
func SkipTableRunes(pattern []rune) []int {
	table, _ := buildSkipTable(pattern)
	return table
}

// buildSkipTable computes the skip table together with the period of the
// whole pattern, which is the shift to apply after a full match.
// Both come from the border array in O(m).
func buildSkipTable(pattern []rune) (table []int, period int) {
	m := len(pattern)
	if m == 0 {
		return nil, 0
	}

	border := borders(pattern)
	table = make([]int, m)
	table[0] = 1
	for i := 1; i < m; i++ {
		table[i] = i - border[i]
	}
	return table, m - border[m]
}

// borders returns b where b[i] is the length of the longest proper border
// (prefix that is also a suffix) of pattern[:i]. len(b) == len(pattern)+1.
func borders(pattern []rune) []int {
	b := make([]int, len(pattern)+1)
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = b[k]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		b[i+1] = k
	}
	return b
}
