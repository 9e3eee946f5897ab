// Package handler runs a game of Evil Hangman over a line based console.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lordvidex/x/ptr"

	"github.com/kodekulture/evil-hangman/game"
	"github.com/kodekulture/evil-hangman/game/word"
	"github.com/kodekulture/evil-hangman/service"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
	srv *service.Service
}

func NewConsole(in io.Reader, out io.Writer, srv *service.Service) *Console {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Console{in: sc, out: out, srv: srv}
}

// Run starts a game and prompts for guesses until the game is won or lost.
//
// Errors from starting the game are returned as is (game.ErrEmptyDictionary, game.ErrIOFailure).
// If the input ends before the game does, Run returns io.ErrUnexpectedEOF.
func (c *Console) Run(ctx context.Context) error {
	g, err := c.srv.NewGame(ctx)
	if err != nil {
		return err
	}

	for g.Status() == game.InProgress {
		if err = ctx.Err(); err != nil {
			return err
		}
		c.prompt(game.ToResponse(g))

		guess, err := c.read()
		if err != nil {
			return err
		}
		if utf8.RuneCountInString(guess) != 1 {
			c.println("Invalid input! You may only guess a single character!")
			continue
		}
		letter, _ := utf8.DecodeRuneInString(guess)
		if !word.IsLetter(letter) {
			c.println("That is not a valid character! Only characters between A-Z are acceptable.")
			continue
		}

		o, err := c.srv.Guess(g, letter)
		switch {
		case errors.Is(err, game.ErrAlreadyGuessed):
			c.println("You already guessed that character!")
			continue
		case err != nil:
			return err
		}
		if o.Hit {
			c.printf("Yes, there are %d %c's\n", o.Count, letter)
		} else {
			c.printf("Sorry, there are no %c's\n", o.Letter)
		}
	}

	r := game.ToResponse(g)
	if g.Won() {
		c.printf("You win! You guessed the word: %s\n", r.Revealed)
	} else {
		c.printf("\nYou lose!\nThe word was %s\n", ptr.ToObj(r.Word))
	}
	return nil
}

func (c *Console) prompt(r game.Response) {
	c.printf("\nYou have %d guesses left\n", r.GuessesLeft)
	c.printf("Used letters:")
	for _, l := range r.GuessedLetters {
		c.printf(" %s", l)
	}
	c.printf("\nWord: %s\n", r.Revealed)
	c.printf("Enter guess: ")
}

func (c *Console) read() (string, error) {
	if c.in.Scan() {
		return strings.TrimSpace(c.in.Text()), nil
	}
	if err := c.in.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
