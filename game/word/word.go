package word

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Blank marks a position of a word whose letter is not known to the player.
const Blank = '-'

// MinLength is the shortest word length a game can be played with.
const MinLength = 2

var (
	// ErrEmpty is returned when a dictionary has no usable word for the requested length.
	ErrEmpty = errors.New("dictionary has no usable words")
	// ErrRead is returned when a dictionary source fails while being read.
	ErrRead = errors.New("dictionary could not be read")
)

// Load reads every whitespace separated token from r, lowercases it, drops duplicates
// and keeps only the tokens that are exactly length runes long.
// The returned words are sorted in ascending order.
//
// Load fails with ErrEmpty when the source has no tokens at all, when length is
// below MinLength or when no token has the requested length.
// Read failures are reported as ErrRead joined with the underlying error.
func Load(r io.Reader, length int) ([]string, error) {
	if length < MinLength {
		return nil, fmt.Errorf("%w: word length %d is below %d", ErrEmpty, length, MinLength)
	}

	set := make(map[string]struct{})
	var tokens int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens++
		w := strings.ToLower(sc.Text())
		if utf8.RuneCountInString(w) != length || strings.ContainsRune(w, Blank) {
			continue
		}
		set[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrRead, err)
	}
	if tokens == 0 {
		return nil, fmt.Errorf("%w: source contains no words", ErrEmpty)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no word has %d letters", ErrEmpty, length)
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	slices.Sort(words)
	return words, nil
}

// Normalize folds a guessed letter to the case used by the dictionary.
func Normalize(r rune) rune {
	return unicode.ToLower(r)
}

// IsLetter reports whether r can be guessed.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// Masked returns a word of length runes made only of Blank.
func Masked(length int) string {
	return strings.Repeat(string(Blank), length)
}
