package kmp

import "github.com/mhr3/kmpsearch/internal/runealg"

// scanMode selects what the scanner does after a successful comparison.
type scanMode uint8

const (
	// scanFirst stops at the first match.
	scanFirst scanMode = iota
	// scanOverlapping records every match, including ones that start
	// inside the previous match.
	scanOverlapping
	// scanNonOverlapping records a match only if it starts at or after the
	// end of the previously recorded one.
	scanNonOverlapping
)

// scan walks text left to right starting at cursor start and appends the
// start index of every match to dst. The caller guarantees
// 0 < len(pattern) and 0 <= start <= len(text).
//
// carry is the number of leading pattern codepoints already known to match
// at the current cursor. After a mismatch at pattern offset q the cursor
// moves by table[q], and the q-table[q] codepoints that still overlap the
// verified region are carried into the next attempt instead of being
// compared again.
func scan(dst []int, text, pattern []rune, table []int, period, start int, mode scanMode) []int {
	n, m := len(text), len(pattern)
	if m > n-start {
		return dst
	}

	last := n - m
	first := pattern[0]
	cursor, carry := start, 0
	for cursor <= last {
		if carry == 0 {
			// No verified prefix: skip straight to the next candidate
			// position whose codepoint equals the pattern's first one.
			j := runealg.IndexRune(text[cursor:last+1], first)
			if j < 0 {
				break
			}
			cursor += j
		}

		q := carry
		for q < m && text[cursor+q] == pattern[q] {
			q++
		}

		if q == m {
			dst = append(dst, cursor)
			switch mode {
			case scanFirst:
				return dst
			case scanNonOverlapping:
				cursor += m
				carry = 0
			default:
				cursor += period
				carry = m - period
			}
			continue
		}

		shift := table[q]
		cursor += shift
		carry = max(q-shift, 0)
	}
	return dst
}

// everyIndex is the result of matching the empty pattern: every codepoint
// boundary from start through n.
func everyIndex(start, n int) []int {
	if start > n {
		return nil
	}
	idx := make([]int, 0, n-start+1)
	for i := start; i <= n; i++ {
		idx = append(idx, i)
	}
	return idx
}
