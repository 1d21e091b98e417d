// Package utf8 converts between UTF-8 strings and the codepoint sequences
// the search packages index into.
//
// Invalid bytes decode to U+FFFD, one codepoint per byte, the same
// as ranging over a string.
package utf8

import (
	stdlib "unicode/utf8"
)

func ValidString(s string) bool {
	// speed up the common case
	if isASCII(s) {
		return true
	}
	return stdlib.ValidString(s)
}

// Runes decodes s into codepoints.
func Runes(s string) []rune {
	if s == "" {
		return nil
	}
	if isASCII(s) {
		r := make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			r[i] = rune(s[i])
		}
		return r
	}
	return []rune(s)
}

// RuneCount returns the number of codepoints in s.
func RuneCount(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return stdlib.RuneCountInString(s)
}

// ByteOffset returns the byte offset in s at which codepoint idx starts.
// idx == RuneCount(s) maps to len(s). Out of range indices return -1.
func ByteOffset(s string, idx int) int {
	if idx < 0 {
		return -1
	}
	if isASCII(s) {
		if idx > len(s) {
			return -1
		}
		return idx
	}

	n := 0
	for b := range s {
		if n == idx {
			return b
		}
		n++
	}
	if n == idx {
		return len(s)
	}
	return -1
}

// ByteOffsets translates a list of codepoint indices, sorted in increasing
// order, to byte offsets in a single pass over s. Entries that are out of
// range map to -1.
func ByteOffsets(s string, idx []int) []int {
	out := make([]int, len(idx))
	if isASCII(s) {
		for k, i := range idx {
			if i < 0 || i > len(s) {
				i = -1
			}
			out[k] = i
		}
		return out
	}

	k := 0
	for ; k < len(idx) && idx[k] < 0; k++ {
		out[k] = -1
	}

	n := 0
	for b := range s {
		for k < len(idx) && idx[k] == n {
			out[k] = b
			k++
		}
		if k == len(idx) {
			return out
		}
		n++
	}

	for ; k < len(idx); k++ {
		if idx[k] == n {
			out[k] = len(s)
		} else {
			out[k] = -1
		}
	}
	return out
}
