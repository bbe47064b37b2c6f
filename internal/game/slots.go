package game

import (
	"fmt"
	"math/rand"
	"strings"
)

var slotSymbols = []string{"joker", "mask", "crown", "diamond", "crystal", "bolt", "star", "tent"}

// Three-of-a-kind multipliers; anything not listed pays the base 8x.
var slotTripleMultiplier = map[string]float64{
	"joker":   50,
	"mask":    25,
	"crown":   20,
	"diamond": 15,
	"crystal": 12,
}

// Slots is the three-reel slot machine. Any pair pays 2x.
type Slots struct{}

func (g *Slots) Name() string { return "slots" }

func (g *Slots) Play(rng *rand.Rand, req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, ErrInvalidStake
	}
	reels := [3]string{
		slotSymbols[rng.Intn(len(slotSymbols))],
		slotSymbols[rng.Intn(len(slotSymbols))],
		slotSymbols[rng.Intn(len(slotSymbols))],
	}
	var payout float64
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		mult, ok := slotTripleMultiplier[reels[0]]
		if !ok {
			mult = 8
		}
		payout = req.Stake * mult
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		payout = req.Stake * 2
	}
	return Result{
		Stake:  req.Stake,
		Payout: payout,
		Won:    payout > 0,
		Detail: fmt.Sprintf("reels: %s", strings.Join(reels[:], " ")),
	}, nil
}
