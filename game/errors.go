package game

import "github.com/lordvidex/errs"

var (
	// ErrEmptyDictionary is returned by StartGame when no usable word exists for the requested length.
	ErrEmptyDictionary = errs.B().Code(errs.InvalidArgument).Msg("dictionary has no words of the requested length").Err()
	// ErrIOFailure is returned by StartGame when the dictionary source cannot be read.
	ErrIOFailure = errs.B().Code(errs.Internal).Msg("dictionary could not be read").Err()

	ErrAlreadyGuessed = errs.B().Code(errs.InvalidArgument).Msg("letter has already been guessed").Err()
	ErrInvalidGuess   = errs.B().Code(errs.InvalidArgument).Msg("guess must be a single letter").Err()
	ErrNotStarted     = errs.B().Code(errs.InvalidArgument).Msg("game has not started").Err()
	ErrGameOver       = errs.B().Code(errs.InvalidArgument).Msg("game is over").Err()
)
