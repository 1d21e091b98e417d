// Package kmp implements Knuth-Morris-Pratt substring search over Unicode
// codepoints.
//
// Texts and patterns are UTF-8 strings, but every index the package accepts
// or returns counts codepoints, not bytes. A search for "こんにちは" in
// "hello こんにちは" reports 6. Use IndexBytes, or utf8.ByteOffset on
// the results, when a byte offset is needed.
//
// The package-level functions build a skip table on every call. Use a
// Searcher to search many texts for the same pattern.
package kmp

import "github.com/mhr3/kmpsearch/utf8"

// Index returns the codepoint index of the first occurrence of pattern in
// text, or -1 if pattern is not present. The empty pattern matches at 0.
func Index(text, pattern string) int {
	if pattern == "" {
		return 0
	}
	return NewSearcher(pattern).Index(text)
}

// IndexRunes is like Index but takes already decoded codepoints.
func IndexRunes(text, pattern []rune) int {
	return newSearcher(pattern).IndexRunes(text)
}

// IndexAll returns the codepoint index of every, possibly overlapping,
// occurrence of pattern in text in increasing order.
func IndexAll(text, pattern string) []int {
	return NewSearcher(pattern).IndexAll(text)
}

// IndexAllRunes is like IndexAll but takes already decoded codepoints.
func IndexAllRunes(text, pattern []rune) []int {
	return newSearcher(pattern).IndexAllRunes(text)
}

// IndexNonOverlapping returns the codepoint indices of the non-overlapping
// occurrences of pattern in text, scanning from codepoint start.
func IndexNonOverlapping(text, pattern string, start int) []int {
	return NewSearcher(pattern).IndexNonOverlapping(text, start)
}

// IndexNonOverlappingRunes is like IndexNonOverlapping but takes already
// decoded codepoints.
func IndexNonOverlappingRunes(text, pattern []rune, start int) []int {
	return newSearcher(pattern).IndexNonOverlappingRunes(text, start)
}

// IndexBytes returns the byte offset of the first occurrence of pattern in
// text, or -1 if pattern is not present.
func IndexBytes(text, pattern string) int {
	idx := Index(text, pattern)
	if idx <= 0 {
		return idx
	}
	return utf8.ByteOffset(text, idx)
}

// Contains reports whether pattern occurs in text.
func Contains(text, pattern string) bool {
	return Index(text, pattern) >= 0
}

// Count returns the number of non-overlapping occurrences of pattern in
// text. If pattern is empty, Count returns 1 + the codepoint count of text.
func Count(text, pattern string) int {
	return NewSearcher(pattern).Count(text)
}
