package game

import (
	"fmt"
	"math"
	"math/rand"
)

// Blackjack is a simplified auto-played hand: both sides draw to 17.
// A natural pays floor(2.5x), a win 2x, a push returns the stake.
type Blackjack struct{}

func (g *Blackjack) Name() string { return "blackjack" }

func (g *Blackjack) Play(rng *rand.Rand, req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, ErrInvalidStake
	}
	player := []int{drawCard(rng), drawCard(rng)}
	dealer := []int{drawCard(rng), drawCard(rng)}

	if handValue(player) == 21 {
		return Result{
			Stake:  req.Stake,
			Payout: math.Floor(req.Stake * 2.5),
			Won:    true,
			Detail: "blackjack",
		}, nil
	}

	for handValue(player) < 17 {
		player = append(player, drawCard(rng))
	}
	pv := handValue(player)
	if pv > 21 {
		return Result{Stake: req.Stake, Detail: fmt.Sprintf("bust at %d", pv)}, nil
	}

	for handValue(dealer) < 17 {
		dealer = append(dealer, drawCard(rng))
	}
	dv := handValue(dealer)

	detail := fmt.Sprintf("player %d vs dealer %d", pv, dv)
	switch {
	case dv > 21 || pv > dv:
		return Result{Stake: req.Stake, Payout: req.Stake * 2, Won: true, Detail: detail}, nil
	case pv == dv:
		return Result{Stake: req.Stake, Payout: req.Stake, Detail: detail + " (push)"}, nil
	default:
		return Result{Stake: req.Stake, Detail: detail}, nil
	}
}

// drawCard deals a rank 1-13 with face cards worth 10.
func drawCard(rng *rand.Rand) int {
	rank := rng.Intn(13) + 1
	if rank > 10 {
		return 10
	}
	return rank
}

// handValue totals a hand counting one ace as 11 when it fits.
func handValue(cards []int) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c
		if c == 1 {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		total += 10
	}
	return total
}
