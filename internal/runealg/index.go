// Package runealg holds the rune-level primitives the scanner builds on.
package runealg

// IndexRune returns the index of the first occurrence of r in s, or -1.
func IndexRune(s []rune, r rune) int {
	// Unrolled by four; the tail is handled one rune at a time.
	i := 0
	for ; i+4 <= len(s); i += 4 {
		if s[i] == r {
			return i
		}
		if s[i+1] == r {
			return i + 1
		}
		if s[i+2] == r {
			return i + 2
		}
		if s[i+3] == r {
			return i + 3
		}
	}
	for ; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}
