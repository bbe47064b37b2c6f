// Package game holds the simulated wager games. Each game consumes a
// stake and produces the session delta the economy engine records; the
// games know nothing about darkcoins, fees, or cycles.
package game

import (
	"errors"
	"math/rand"
)

var (
	ErrInvalidStake = errors.New("invalid_stake")
	ErrInvalidPick  = errors.New("invalid_pick")
	ErrUnknownGame  = errors.New("unknown_game")
)

// Request carries the player's choices for one round. Pick and Number
// are only meaningful for games that need them.
type Request struct {
	Stake  float64
	Pick   string
	Number int
}

// Result is one resolved round: the session delta plus display detail.
type Result struct {
	Stake  float64 `json:"stake"`
	Payout float64 `json:"payout"`
	Won    bool    `json:"won"`
	Detail string  `json:"detail"`
}

// Game resolves a single round from a stake and the provided entropy.
type Game interface {
	Name() string
	Play(rng *rand.Rand, req Request) (Result, error)
}

// Catalog returns all playable games keyed by name.
func Catalog() map[string]Game {
	games := []Game{
		&Slots{},
		&Roulette{},
		&Blackjack{},
		&HighLow{},
		&Arena{},
	}
	out := make(map[string]Game, len(games))
	for _, g := range games {
		out[g.Name()] = g
	}
	return out
}
