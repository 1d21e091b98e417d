//go:build purego

package utf8

func isASCII(s string) bool {
	return isASCIIGo(s)
}
