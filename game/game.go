// Package game encapsulates the mechanics of a game of Mastermind: codes,
// the scoring of a guess against the secret, and the bookkeeping of a single
// game from the first guess until it is won or the attempts run out.
package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type PlayState int

const (
	Playing PlayState = iota
	Won
	Lost
)

func (p PlayState) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Game is a single game: a secret and the guesses made against it.
// Note: a Game doesn't care how the guesses are obtained. Reading them from
// a terminal and re-prompting on bad input happens outside of this package.
type Game struct {
	uid     string
	rules   Rules
	secret  Code
	history []Turn
	playing PlayState
}

// NewGame validates the rules and draws a new secret from src.
func NewGame(rules Rules, src Source) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		uid:     uuid.NewString(),
		rules:   rules,
		secret:  RandomCode(rules, src),
		history: []Turn{},
		playing: Playing,
	}
	log.Debug().Str("gid", g.uid).Str("rules", rules.String()).Msg("new-game")
	return g, nil
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) PlayState() PlayState {
	return g.playing
}

func (g *Game) Playing() bool {
	return g.playing == Playing
}

func (g *Game) AttemptsUsed() int {
	return len(g.history)
}

func (g *Game) AttemptsLeft() int {
	return g.rules.MaxAttempts - len(g.history)
}

// PlayGuess scores a guess against the secret and records it. The game is
// won when every digit is in place, and lost once the last attempt has been
// used without that happening.
func (g *Game) PlayGuess(guess Code) (Turn, error) {
	if g.playing != Playing {
		return Turn{}, ErrGameOver
	}
	score, err := ScoreGuess(g.secret, guess)
	if err != nil {
		return Turn{}, err
	}
	t := Turn{
		Number: len(g.history) + 1,
		Guess:  guess,
		Score:  score,
	}
	g.history = append(g.history, t)

	switch {
	case score.Solved(g.rules.CodeLength):
		g.playing = Won
	case len(g.history) >= g.rules.MaxAttempts:
		g.playing = Lost
	}
	log.Debug().Str("gid", g.uid).Int("turn", t.Number).Str("guess", guess.Compact()).
		Int("correct", score.Correct).Int("incorrect", score.Incorrect).
		Str("state", g.playing.String()).Msg("played-guess")
	return t, nil
}

// Resign ends the game as a loss.
func (g *Game) Resign() error {
	if g.playing != Playing {
		return ErrGameOver
	}
	g.playing = Lost
	log.Debug().Str("gid", g.uid).Int("turns", len(g.history)).Msg("resigned")
	return nil
}

// Secret returns the secret once the game is over.
func (g *Game) Secret() (Code, error) {
	if g.playing == Playing {
		return Code{}, ErrSecretHidden
	}
	return g.secret, nil
}
