package word

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		desc     string
		source   string
		length   int
		expected []string
	}{
		{"keeps only words of the given length", "bad bat bag big bug bread be", 3, []string{"bad", "bag", "bat", "big", "bug"}},
		{"lowercases and collapses duplicates", "Bad BAD bad bAt", 3, []string{"bad", "bat"}},
		{"any whitespace separates tokens", "bad\nbat\t\tbag\r\n  big", 3, []string{"bad", "bag", "bat", "big"}},
		{"sorted ascending", "zoo yak ant", 3, []string{"ant", "yak", "zoo"}},
		{"length counted in runes", "éte été abc", 3, []string{"abc", "éte", "été"}},
		{"tokens longer than the scanner buffer", "bad bat " + strings.Repeat("x", 70000) + " bag", 3, []string{"bad", "bag", "bat"}},
		{"drops words containing the blank mark", "a-b abc x-y", 3, []string{"abc"}},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.source), tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	readErr := errors.New("disk on fire")
	testCases := []struct {
		desc   string
		source func() *strings.Reader
		length int
		err    error
	}{
		{"empty source", func() *strings.Reader { return strings.NewReader("") }, 3, ErrEmpty},
		{"whitespace only", func() *strings.Reader { return strings.NewReader(" \n\t ") }, 3, ErrEmpty},
		{"length below two", func() *strings.Reader { return strings.NewReader("a b c") }, 1, ErrEmpty},
		{"no word of that length", func() *strings.Reader { return strings.NewReader("bad bat") }, 4, ErrEmpty},
		{"only words with the blank mark", func() *strings.Reader { return strings.NewReader("x-ray a-b-c") }, 5, ErrEmpty},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Load(tt.source(), tt.length)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("read failure", func(t *testing.T) {
		got, err := Load(iotest.ErrReader(readErr), 3)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrRead)
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("read failure after some words", func(t *testing.T) {
		got, err := Load(iotest.TimeoutReader(strings.NewReader("bad bat bag")), 3)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrRead)
		assert.ErrorIs(t, err, iotest.ErrTimeout)
	})
}

func TestLoad_RandomDictionary(t *testing.T) {
	gofakeit.Seed(42)
	var b strings.Builder
	for i := 0; i < 500; i++ {
		n := uint(gofakeit.Number(2, 8))
		b.WriteString(gofakeit.LetterN(n))
		b.WriteByte(' ')
	}
	for length := MinLength; length <= 8; length++ {
		words, err := Load(strings.NewReader(b.String()), length)
		require.NoError(t, err)
		seen := make(map[string]bool, len(words))
		for i, w := range words {
			assert.Equal(t, length, utf8.RuneCountInString(w))
			assert.Equal(t, strings.ToLower(w), w)
			assert.False(t, seen[w], "duplicate word %q", w)
			seen[w] = true
			if i > 0 {
				assert.Less(t, words[i-1], w)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 'a', Normalize('A'))
	assert.Equal(t, 'a', Normalize('a'))
	assert.Equal(t, 'é', Normalize('É'))
	assert.True(t, IsLetter('Q'))
	assert.False(t, IsLetter('1'))
	assert.False(t, IsLetter('-'))
	assert.Equal(t, "----", Masked(4))
}
