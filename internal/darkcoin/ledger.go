package darkcoin

import (
	"sort"
	"strconv"
	"time"
)

const (
	// ConversionRate is how many session chips buy one darkcoin.
	ConversionRate = 10
	// BurnRate is the fraction of total supply destroyed per burn.
	BurnRate = 0.10
	// HouseBurnMultiplier scales burned coins into house profit.
	HouseBurnMultiplier = 5
	// PrizeRate is the fraction of house profit paid as the monthly prize.
	PrizeRate = 0.05
)

const (
	defaultPlayerBalance = 1000
	defaultTotalSupply   = 50000
	defaultHouseProfit   = 50000
)

// SeedCompetitor describes one decorative leaderboard competitor.
type SeedCompetitor struct {
	Name      string
	Darkcoins int64
	TotalWins int64
}

// DefaultRoster is the competitor set used when no seed roster is configured.
func DefaultRoster() []SeedCompetitor {
	return []SeedCompetitor{
		{Name: "Coringa Negro", Darkcoins: 15000, TotalWins: 120},
		{Name: "Arlequim Dourado", Darkcoins: 12000, TotalWins: 98},
		{Name: "Palhaço Sombrio", Darkcoins: 10000, TotalWins: 87},
	}
}

// DefaultSnapshot seeds a fresh ledger: the player starts with 1000
// darkcoins ranked below the competitors. Competitor balances are static
// decoration; only burns ever move them afterwards.
func DefaultSnapshot(roster []SeedCompetitor) Snapshot {
	if len(roster) == 0 {
		roster = DefaultRoster()
	}
	participants := make([]Participant, 0, len(roster)+1)
	for i, c := range roster {
		participants = append(participants, Participant{
			ID:        competitorID(i),
			Name:      c.Name,
			Darkcoins: c.Darkcoins,
			TotalWins: c.TotalWins,
		})
	}
	participants = append(participants, Participant{
		ID:        PlayerID,
		Name:      "You",
		Darkcoins: defaultPlayerBalance,
		TotalWins: 45,
	})
	s := Snapshot{
		PlayerBalance: defaultPlayerBalance,
		TotalSupply:   defaultTotalSupply,
		HouseProfit:   defaultHouseProfit,
		BurnHistory:   []BurnEvent{},
		Participants:  participants,
	}
	rerank(s.Participants)
	return s
}

func competitorID(i int) string {
	return strconv.Itoa(i + 1)
}

// rerank sorts participants by balance descending and reassigns 1-based
// ranks. The sort is stable so ties keep their prior relative order.
func rerank(participants []Participant) {
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Darkcoins > participants[j].Darkcoins
	})
	for i := range participants {
		participants[i].Rank = i + 1
	}
}

func (s *Snapshot) player() *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID == PlayerID {
			return &s.Participants[i]
		}
	}
	return nil
}

// PlayerRank returns the player's current 1-based rank, or 0 if the
// player row is missing from the leaderboard.
func (s Snapshot) PlayerRank() int {
	if p := s.player(); p != nil {
		return p.Rank
	}
	return 0
}

// Convert exchanges chips for darkcoins at the fixed 10:1 rate, flooring
// the result. Both the player balance and the total supply grow by the
// converted amount. The caller is responsible for checking that the
// session balance covers chips; the ledger only rejects negative input.
func Convert(s Snapshot, chips int64) (ConvertResult, error) {
	if chips < 0 {
		return ConvertResult{}, ErrNegativeAmount
	}
	earned := chips / ConversionRate
	s.PlayerBalance += earned
	s.TotalSupply += earned
	if p := s.player(); p != nil {
		p.Darkcoins = s.PlayerBalance
	}
	rerank(s.Participants)
	return ConvertResult{Earned: earned, Snapshot: s}, nil
}

// ExecuteBurn destroys 10% of the total supply, charging every
// participant a proportional share floored independently. The flooring
// remainder is deliberately lost rather than redistributed. The house
// books five times the burned amount as profit. A zero supply makes the
// whole burn a no-op.
func ExecuteBurn(s Snapshot, now time.Time) BurnResult {
	if s.TotalSupply == 0 {
		return BurnResult{Snapshot: s}
	}
	burnAmount := s.TotalSupply / 10
	var playerBurn int64
	for i := range s.Participants {
		p := &s.Participants[i]
		share := p.Darkcoins * burnAmount / s.TotalSupply
		p.Darkcoins -= share
		if p.ID == PlayerID {
			playerBurn = share
			s.PlayerBalance = p.Darkcoins
		}
	}
	s.TotalSupply -= burnAmount
	s.HouseProfit += burnAmount * HouseBurnMultiplier
	s.LastBurn = &now
	if burnAmount > 0 {
		s.BurnHistory = append(s.BurnHistory, BurnEvent{Date: now, Amount: burnAmount})
	}
	rerank(s.Participants)
	return BurnResult{BurnAmount: burnAmount, PlayerBurnAmount: playerBurn, Snapshot: s}
}

// MonthlyPrize is 5% of house profit, floored.
func MonthlyPrize(houseProfit int64) int64 {
	return houseProfit / 20
}

// ClaimPrize awards the monthly prize to the player. It succeeds only
// when the player holds rank 1 and the prize has not been claimed this
// month; the two failures are distinguishable so the UI can explain.
// The prize is minted onto the player's balance without touching house
// profit or total supply.
func ClaimPrize(s Snapshot, now time.Time) (ClaimResult, error) {
	if s.MonthlyPrizeClaimed {
		return ClaimResult{Snapshot: s}, ErrAlreadyClaimed
	}
	if s.PlayerRank() != 1 {
		return ClaimResult{Snapshot: s}, ErrNotTopRank
	}
	prize := MonthlyPrize(s.HouseProfit)
	s.PlayerBalance += prize
	if p := s.player(); p != nil {
		p.Darkcoins = s.PlayerBalance
	}
	s.MonthlyPrizeClaimed = true
	s.LastPrizeClaim = &now
	rerank(s.Participants)
	return ClaimResult{Awarded: true, Prize: prize, Snapshot: s}, nil
}

// ApplyMonthlyReset clears the prize-claimed flag when the calendar
// month of now differs from the month of the last claim. A ledger that
// has never paid a prize always resets. This reset is independent of
// the economy tracker's own cycle rollover.
func ApplyMonthlyReset(s Snapshot, now time.Time) Snapshot {
	if s.LastPrizeClaim == nil {
		s.MonthlyPrizeClaimed = false
		return s
	}
	cy, cm, _ := now.Date()
	ly, lm, _ := s.LastPrizeClaim.Date()
	if cy != ly || cm != lm {
		s.MonthlyPrizeClaimed = false
	}
	return s
}

// DaysUntilNextBurn counts the days from now to the first day of the
// next calendar month, rounding partial days up.
func DaysUntilNextBurn(now time.Time) int {
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	diff := next.Sub(now)
	days := int((diff + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}
