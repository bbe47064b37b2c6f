package darkcoin

import "time"

// PlayerID is the reserved participant id of the local player. Competitor
// ids come from the seed roster and never collide with it.
const PlayerID = "player"

// Participant is one leaderboard row. Rank is derived from balance order
// and reassigned after every mutation; it is never authoritative on its own.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Darkcoins int64  `json:"darkcoins"`
	TotalWins int64  `json:"totalWins"`
	Rank      int    `json:"rank"`
}

// BurnEvent records one executed burn for display history.
type BurnEvent struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// Snapshot is the full persisted state of the darkcoin ledger. It is
// written whole on every mutation; there are no partial-field updates.
type Snapshot struct {
	PlayerBalance       int64         `json:"playerSecondaryBalance"`
	TotalSupply         int64         `json:"totalSupply"`
	HouseProfit         int64         `json:"houseProfit"`
	LastBurn            *time.Time    `json:"lastBurnTimestamp"`
	LastPrizeClaim      *time.Time    `json:"lastPrizeClaimTimestamp"`
	MonthlyPrizeClaimed bool          `json:"monthlyPrizeClaimed"`
	BurnHistory         []BurnEvent   `json:"burnHistory"`
	Participants        []Participant `json:"participants"`
}

// ConvertResult reports one chip conversion.
type ConvertResult struct {
	Earned   int64
	Snapshot Snapshot
}

// BurnResult reports one executed burn.
type BurnResult struct {
	BurnAmount       int64
	PlayerBurnAmount int64
	Snapshot         Snapshot
}

// ClaimResult reports one prize claim attempt.
type ClaimResult struct {
	Awarded  bool
	Prize    int64
	Snapshot Snapshot
}
