package economy

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Insight picks one derived fact about the profile for display. Pure
// aside from the random selection itself.
func Insight(p Profile, now time.Time, rng *rand.Rand) string {
	insights := []string{
		fmt.Sprintf("You lost %.0f chips this month", p.Current.TotalLoss),
		fmt.Sprintf("Estimated return: %.0f chips", p.Current.TotalLoss*ReturnRate),
		fmt.Sprintf("%d days left in the cycle", DaysRemaining(p.CycleKey, now)),
		fmt.Sprintf("Return rate: %.0f%% of losses", ReturnRate*100),
		fmt.Sprintf("Sessions played today: %d", TodaySessions(p, now)),
	}
	return insights[rng.Intn(len(insights))]
}

// RankedEntry is one decorative ranking row.
type RankedEntry struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Rank   int    `json:"rank"`
}

var loserNames = []string{
	"Coringa Sombrio", "Arlequina Dourada", "Palhaço Negro", "Joker Supremo",
	"Dama das Cartas", "Rei da Noite", "Rainha Vermelha", "As de Espadas",
}

var recoveryNames = []string{
	"Phoenix Gamer", "Lucky Comeback", "Ressurreição", "Miracle Player",
	"Second Chance", "Golden Return", "Epic Comeback", "Fortune Hunter",
}

// TopLosers simulates the biggest-losers ranking. The figures are
// random flavor, not accounting data.
func TopLosers(rng *rand.Rand) []RankedEntry {
	return rankedAmounts(loserNames, 10000, 50000, rng)
}

// TopRecoveries simulates the biggest-recoveries ranking.
func TopRecoveries(rng *rand.Rand) []RankedEntry {
	return rankedAmounts(recoveryNames, 5000, 25000, rng)
}

func rankedAmounts(names []string, base, spread int64, rng *rand.Rand) []RankedEntry {
	out := make([]RankedEntry, 0, len(names))
	for _, name := range names {
		out = append(out, RankedEntry{Name: name, Amount: base + rng.Int63n(spread)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
