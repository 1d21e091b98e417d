package kmp

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcherReuse(t *testing.T) {
	s := NewSearcher("こんにちは")
	require.Equal(t, 5, s.Len())
	require.Equal(t, "こんにちは", s.Pattern())
	assert.Equal(t, []int{1, 1, 2, 3, 4}, s.SkipTable())

	tests := []struct {
		text string
		want int
	}{
		{"", -1},
		{"こんにち", -1},
		{"こんにちは", 0},
		{mixed, 6},
		{"ここんにちはこんにちは", 1},
		{strings.Repeat("こんにち", 10) + "は", 36},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Index(tt.text), "Index(%q)", tt.text)
		assert.Equal(t, tt.want >= 0, s.Contains(tt.text), "Contains(%q)", tt.text)
	}
	assert.Equal(t, []int{1, 6}, s.IndexAll("ここんにちはこんにちは"))
	assert.Equal(t, 2, s.Count("ここんにちはこんにちは"))
}

func TestSearcherSkipTableIsCopy(t *testing.T) {
	s := NewSearcher("abab")
	table := s.SkipTable()
	table[0] = 100
	assert.Equal(t, []int{1, 1, 2, 2}, s.SkipTable())
	assert.Equal(t, []int{0, 2}, s.IndexAll("ababab")[:2])
}

func TestSearcherRunesCopiesPattern(t *testing.T) {
	p := []rune("aba")
	s := NewSearcherRunes(p)
	p[0] = 'x'
	assert.Equal(t, "aba", s.Pattern())
	assert.Equal(t, []int{0, 2, 4}, s.IndexAll("abababa"))
}

func TestSearcherEmptyPattern(t *testing.T) {
	s := NewSearcher("")
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.SkipTable())
	assert.Equal(t, 0, s.Index(""))
	assert.Equal(t, 0, s.Index("日本"))
	assert.Equal(t, 0, s.IndexRunes(nil))
	assert.Equal(t, []int{0, 1, 2}, s.IndexAll("日本"))
	assert.Equal(t, []int{1, 2}, s.IndexNonOverlapping("日本", 1))
	assert.Equal(t, 3, s.Count("日本"))
	assert.True(t, s.Contains(""))
}

func TestSearcherConcurrent(t *testing.T) {
	s := NewSearcher("aba")
	texts := []string{"abababa", "xxabaxx", "bbbb", strings.Repeat("ab", 100) + "a"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, text := range texts {
					want := indexAllNaive([]rune(text), []rune("aba"))
					if got := s.IndexAll(text); len(got) != len(want) {
						t.Errorf("IndexAll(%q) = %v, want %v", text, got, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
