package game

import (
	"github.com/google/uuid"
	"github.com/lordvidex/x/ptr"
)

// Response is what a player is allowed to see of a game.
type Response struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	Revealed       string    `json:"revealed"`
	GuessedLetters []string  `json:"guessed_letters"`
	GuessesLeft    int       `json:"guesses_left"`
	Candidates     int       `json:"candidates"`
	// Word is returned only if the player has lost; a won game already shows it in Revealed.
	Word *string `json:"word,omitempty"`
}

// ToResponse converts a game to the view shown to the player.
func ToResponse(g *Game) Response {
	setWord := func() *string {
		if !g.Lost() {
			return nil
		}
		return ptr.String(g.Word())
	}
	letters := g.GuessedLetters()
	guessed := make([]string, len(letters))
	for i, l := range letters {
		guessed[i] = string(l)
	}
	return Response{
		ID:             g.ID,
		Status:         g.Status().String(),
		Revealed:       g.RevealedWord(),
		GuessedLetters: guessed,
		GuessesLeft:    g.GuessesLeft(),
		Candidates:     len(g.candidates),
		Word:           setWord(),
	}
}
