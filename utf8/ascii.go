package utf8

import stdlib "unicode/utf8"

func isASCIIGo(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= stdlib.RuneSelf {
			return false
		}
	}
	return true
}
