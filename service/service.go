// Package service starts games from the configured dictionary and plays guesses on them.
package service

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kodekulture/evil-hangman/game"
	"github.com/kodekulture/evil-hangman/game/word"
	"github.com/kodekulture/evil-hangman/internal/config"
)

// Outcome describes the effect of one guess.
type Outcome struct {
	Letter rune // guessed letter, lowercased
	Count  int  // positions revealed for Letter
	Hit    bool
}

type Service struct {
	cfg  config.Config
	open func(name string) (io.ReadCloser, error)
}

func New(cfg config.Config) *Service {
	return &Service{
		cfg:  cfg,
		open: func(name string) (io.ReadCloser, error) { return os.Open(name) },
	}
}

// NewGame starts a game on the configured dictionary, or on the bundled one
// if no dictionary file is configured.
//
// A dictionary file that cannot be opened is reported as game.ErrIOFailure.
func (s *Service) NewGame(ctx context.Context) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source, closeFn, err := s.dictionary()
	if err != nil {
		log.Err(err).Caller().Str("dictionary", s.cfg.Dictionary).Msg("failed to open dictionary")
		return nil, errors.Join(game.ErrIOFailure, err)
	}
	defer closeFn()

	g := game.New(s.cfg.Guesses)
	if err = g.StartGame(source, s.cfg.WordLength); err != nil {
		log.Err(err).Caller().
			Str("dictionary", s.cfg.Dictionary).
			Int("length", s.cfg.WordLength).
			Msg("failed to start game")
		return nil, err
	}
	log.Info().
		Str("game", g.ID.String()).
		Int("length", g.WordLength()).
		Int("candidates", len(g.Candidates())).
		Int("guesses", g.GuessesLeft()).
		Msg("game started")
	return g, nil
}

// Guess plays letter on g.
func (s *Service) Guess(g *game.Game, letter rune) (Outcome, error) {
	candidates, err := g.MakeGuess(letter)
	if err != nil {
		log.Debug().Err(err).Str("game", g.ID.String()).Str("letter", string(letter)).Msg("guess rejected")
		return Outcome{}, err
	}

	letter = word.Normalize(letter)
	o := Outcome{Letter: letter, Count: g.CharacterCount(letter)}
	o.Hit = o.Count > 0
	log.Debug().
		Str("game", g.ID.String()).
		Str("letter", string(letter)).
		Bool("hit", o.Hit).
		Int("family", len(candidates)).
		Str("revealed", g.RevealedWord()).
		Msg("guess played")
	if st := g.Status(); st != game.InProgress {
		log.Info().Str("game", g.ID.String()).Stringer("status", st).Str("word", g.Word()).Msg("game over")
	}
	return o, nil
}

func (s *Service) dictionary() (io.Reader, func(), error) {
	if s.cfg.Dictionary == "" {
		return word.Embedded(), func() {}, nil
	}
	f, err := s.open(s.cfg.Dictionary)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
