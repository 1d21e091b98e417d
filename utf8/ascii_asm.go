//go:build !purego

package utf8

import (
	"github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

func isASCII(s string) bool {
	if len(s) < 32 || !hasAVX2 {
		return isASCIIGo(s)
	}

	return ascii.ValidString(s)
}
