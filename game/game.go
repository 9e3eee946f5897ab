package game

import (
	"errors"
	"io"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/kodekulture/evil-hangman/game/word"
)

type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "not started"
	}
}

// Game is an Evil Hangman game. It never picks a secret word: after each guess it keeps
// the largest family of words that agree with everything the player has been shown.
//
// Game is not safe for concurrent use.
type Game struct {
	ID         uuid.UUID
	guesses    int // budget given to New, restored by StartGame
	left       int
	length     int
	candidates []string
	guessed    mapset.Set[rune]
	revealed   string
	started    bool
}

// New returns a game that allows `guesses` wrong guesses once started.
func New(guesses int) *Game {
	return &Game{
		ID:      uuid.New(),
		guesses: guesses,
		left:    guesses,
		guessed: mapset.NewThreadUnsafeSet[rune](),
	}
}

// StartGame loads the candidate words of length wordLength from source.
//
// Calling StartGame again starts a new game on the same Game: the guessed letters and the
// revealed word are cleared and the guess budget is restored. If StartGame fails the
// previous state is kept.
func (g *Game) StartGame(source io.Reader, wordLength int) error {
	words, err := word.Load(source, wordLength)
	switch {
	case errors.Is(err, word.ErrRead):
		return errors.Join(ErrIOFailure, err)
	case err != nil:
		return errors.Join(ErrEmptyDictionary, err)
	}

	g.candidates = words
	g.length = wordLength
	g.left = g.guesses
	g.guessed.Clear()
	g.revealed = word.Masked(wordLength)
	g.started = true
	return nil
}

// MakeGuess plays letter (case-insensitive) and returns the words that are still
// consistent with every guess, in ascending order.
//
// The guess costs one of the remaining guesses only if the kept family does not contain
// the letter. No state changes when an error is returned.
func (g *Game) MakeGuess(letter rune) ([]string, error) {
	switch {
	case !g.started:
		return nil, ErrNotStarted
	case g.Status() != InProgress:
		return nil, ErrGameOver
	case !word.IsLetter(letter):
		return nil, ErrInvalidGuess
	}
	letter = word.Normalize(letter)
	if g.guessed.Contains(letter) {
		return nil, ErrAlreadyGuessed
	}

	g.guessed.Add(letter)
	families := partition(g.candidates, letter)
	pattern := choose(families, letter)
	g.candidates = families[pattern]
	g.revealed = merge(g.revealed, pattern)
	if !strings.ContainsRune(pattern, letter) {
		g.left--
	}
	return g.Candidates(), nil
}

// GuessedLetters returns the letters guessed so far in alphabetical order.
func (g *Game) GuessedLetters() []rune {
	letters := g.guessed.ToSlice()
	slices.Sort(letters)
	return letters
}

func (g *Game) GuessesLeft() int {
	return g.left
}

// RevealedWord returns the word as the player sees it, with word.Blank for unknown positions.
func (g *Game) RevealedWord() string {
	return g.revealed
}

// CharacterCount returns how many positions were revealed for letter.
// Zero means the letter is not in the word (or has not been guessed).
func (g *Game) CharacterCount(letter rune) int {
	letter = word.Normalize(letter)
	var n int
	for _, r := range g.revealed {
		if r == letter {
			n++
		}
	}
	return n
}

func (g *Game) Status() Status {
	switch {
	case !g.started:
		return NotStarted
	case !strings.ContainsRune(g.revealed, word.Blank):
		return Won
	case g.left <= 0:
		return Lost
	default:
		return InProgress
	}
}

// Won returns true if every position of the word has been revealed.
func (g *Game) Won() bool {
	return g.Status() == Won
}

// Lost returns true if the player ran out of guesses before revealing the word.
func (g *Game) Lost() bool {
	return g.Status() == Lost
}

// Word returns the word the game claims to have been thinking of.
// Any remaining candidate would do; the last one in alphabetical order is used.
func (g *Game) Word() string {
	if len(g.candidates) == 0 {
		return ""
	}
	return g.candidates[len(g.candidates)-1]
}

// Candidates returns a copy of the words still in play.
func (g *Game) Candidates() []string {
	return slices.Clone(g.candidates)
}

func (g *Game) WordLength() int {
	return g.length
}
