package game

import (
	"fmt"
	"math"
	"math/rand"
)

// HighLow deals a card 1-13 and the player calls higher or lower for
// the next one. A tie loses. A correct call pays floor(1.5x).
type HighLow struct{}

func (g *HighLow) Name() string { return "highlow" }

func (g *HighLow) Play(rng *rand.Rand, req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, ErrInvalidStake
	}
	if req.Pick != "higher" && req.Pick != "lower" {
		return Result{}, ErrInvalidPick
	}
	current := rng.Intn(13) + 1
	next := rng.Intn(13) + 1
	won := (req.Pick == "higher" && next > current) ||
		(req.Pick == "lower" && next < current)
	var payout float64
	if won {
		payout = math.Floor(req.Stake * 1.5)
	}
	return Result{
		Stake:  req.Stake,
		Payout: payout,
		Won:    won,
		Detail: fmt.Sprintf("card %d then %d, called %s", current, next, req.Pick),
	}, nil
}
