package game

import (
	"fmt"
	"math/rand"
)

var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Roulette is the European wheel, pockets 0-36. A straight number bet
// pays 36x; red/black/even/odd pay 2x and lose on zero.
type Roulette struct{}

func (g *Roulette) Name() string { return "roulette" }

func (g *Roulette) Play(rng *rand.Rand, req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, ErrInvalidStake
	}
	pocket := rng.Intn(37)
	var payout float64
	switch req.Pick {
	case "number":
		if req.Number < 0 || req.Number > 36 {
			return Result{}, ErrInvalidPick
		}
		if pocket == req.Number {
			payout = req.Stake * 36
		}
	case "red":
		if rouletteRed[pocket] {
			payout = req.Stake * 2
		}
	case "black":
		if pocket != 0 && !rouletteRed[pocket] {
			payout = req.Stake * 2
		}
	case "even":
		if pocket != 0 && pocket%2 == 0 {
			payout = req.Stake * 2
		}
	case "odd":
		if pocket%2 == 1 {
			payout = req.Stake * 2
		}
	default:
		return Result{}, ErrInvalidPick
	}
	return Result{
		Stake:  req.Stake,
		Payout: payout,
		Won:    payout > 0,
		Detail: fmt.Sprintf("pocket: %d (%s)", pocket, pocketColor(pocket)),
	}, nil
}

func pocketColor(pocket int) string {
	switch {
	case pocket == 0:
		return "green"
	case rouletteRed[pocket]:
		return "red"
	default:
		return "black"
	}
}
