package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// Fighter is one arena combatant with fixed stats.
type Fighter struct {
	Name   string `json:"name"`
	Power  int    `json:"power"`
	Health int    `json:"health"`
}

// Fighters is the fixed arena roster.
func Fighters() []Fighter {
	return []Fighter{
		{Name: "Coringa Sombrio", Power: 85, Health: 100},
		{Name: "Palhaço Macabro", Power: 78, Health: 120},
		{Name: "Arlequim Louco", Power: 92, Health: 90},
		{Name: "Bufão Real", Power: 70, Health: 140},
		{Name: "Mime Assassino", Power: 88, Health: 95},
		{Name: "Diabrete Risonho", Power: 95, Health: 85},
	}
}

// Arena pits the picked fighter against a random opponent in a
// tick-based slugfest. Backing the winner pays 2x.
type Arena struct{}

func (g *Arena) Name() string { return "arena" }

func (g *Arena) Play(rng *rand.Rand, req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, ErrInvalidStake
	}
	roster := Fighters()
	mine := -1
	for i, f := range roster {
		if strings.EqualFold(f.Name, req.Pick) {
			mine = i
			break
		}
	}
	if mine == -1 {
		return Result{}, ErrInvalidPick
	}
	opp := rng.Intn(len(roster) - 1)
	if opp >= mine {
		opp++
	}

	a, b := roster[mine], roster[opp]
	healthA, healthB := a.Health, b.Health
	for healthA > 0 && healthB > 0 {
		healthB -= rng.Intn(a.Power/4) + 5
		if healthB <= 0 {
			break
		}
		healthA -= rng.Intn(b.Power/4) + 5
	}
	won := healthA > 0
	winner := a.Name
	if !won {
		winner = b.Name
	}
	var payout float64
	if won {
		payout = req.Stake * 2
	}
	return Result{
		Stake:  req.Stake,
		Payout: payout,
		Won:    won,
		Detail: fmt.Sprintf("%s vs %s, %s wins", a.Name, b.Name, winner),
	}, nil
}
