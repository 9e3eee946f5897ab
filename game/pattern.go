package game

import (
	"slices"
	"strings"

	"github.com/kodekulture/evil-hangman/game/word"
)

// patternOf returns the word with every letter other than `letter` replaced by word.Blank.
// For the word "bad" and the letter 'a' the pattern is "-a-".
func patternOf(w []rune, letter rune) string {
	var b strings.Builder
	for _, r := range w {
		if r == letter {
			b.WriteRune(r)
		} else {
			b.WriteRune(word.Blank)
		}
	}
	return b.String()
}

// partition groups words into families sharing the same pattern for `letter`.
// Every word ends up in exactly one family and the order of words inside a family is kept.
func partition(words []string, letter rune) map[string][]string {
	families := make(map[string][]string)
	for _, w := range words {
		p := patternOf([]rune(w), letter)
		families[p] = append(families[p], w)
	}
	return families
}

// familyStats is what the adversary knows about a family when deciding which one to keep.
type familyStats struct {
	size        int // number of words in the family
	blanks      int // positions the pattern keeps hidden
	occurrences int // positions the pattern reveals
	first       int // index of the first revealed position, -1 if none
}

func stats(pattern string, size int, letter rune) familyStats {
	s := familyStats{size: size, first: -1}
	for i, r := range []rune(pattern) {
		if r == letter {
			s.occurrences++
			if s.first < 0 {
				s.first = i
			}
		} else {
			s.blanks++
		}
	}
	return s
}

// beats reports whether family `s` is worse for the player than `other`.
// The first rule that tells the two apart decides:
//
//  1. more words
//  2. more blanks
//  3. fewer revealed positions
//  4. first revealed position further to the right
//
// When s and other reveal nothing rule 4 has nothing to compare and beats returns false.
func (s familyStats) beats(other familyStats) bool {
	if s.size != other.size {
		return s.size > other.size
	}
	if s.blanks != other.blanks {
		return s.blanks > other.blanks
	}
	if s.occurrences != other.occurrences {
		return s.occurrences < other.occurrences
	}
	if s.occurrences == 0 {
		return false
	}
	return s.first > other.first
}

// choose returns the pattern of the family the adversary keeps.
// Patterns are visited in lexicographic order so that a full tie keeps the smallest one.
func choose(families map[string][]string, letter rune) string {
	patterns := make([]string, 0, len(families))
	for p := range families {
		patterns = append(patterns, p)
	}
	slices.Sort(patterns)

	var (
		best      string
		bestStats familyStats
	)
	for i, p := range patterns {
		st := stats(p, len(families[p]), letter)
		if i == 0 || st.beats(bestStats) {
			best, bestStats = p, st
		}
	}
	return best
}

// merge copies every revealed position of pattern into revealed and returns the result.
// Positions already revealed are never overwritten.
func merge(revealed, pattern string) string {
	out := []rune(revealed)
	for i, r := range []rune(pattern) {
		if out[i] == word.Blank && r != word.Blank {
			out[i] = r
		}
	}
	return string(out)
}
