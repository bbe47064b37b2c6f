package economy

// DailyAggregate accumulates one calendar day of play.
type DailyAggregate struct {
	Date         string  `json:"dateKey"`
	TotalStaked  float64 `json:"totalStaked"`
	TotalPayout  float64 `json:"totalPayout"`
	FeeCollected float64 `json:"feeCollected"`
	NetLoss      float64 `json:"netLossForDay"`
	Sessions     int     `json:"sessionsCount"`
}

// CycleReport is one rolling 30-day accounting window. The current
// report is mutated in place; archived reports are frozen at rollover
// with TotalReturn filled in.
type CycleReport struct {
	TotalLoss     float64          `json:"totalLossAccumulated"`
	TotalReturn   float64          `json:"totalReturnPaid"`
	ReturnRate    float64          `json:"returnRate"`
	DaysRemaining int              `json:"daysRemainingInCycle"`
	Days          []DailyAggregate `json:"dailyAggregates"`
}

// Profile is the full persisted economic state of the local player.
// Balance is the volatile session chip balance, not darkcoins; the two
// ledgers are deliberately never reconciled.
type Profile struct {
	ParticipantID  string        `json:"participantId"`
	Balance        float64       `json:"currentBalance"`
	CycleKey       string        `json:"currentCycleKey"`
	Current        CycleReport   `json:"currentCycleReport"`
	Archived       []CycleReport `json:"archivedCycleReports"`
	LifetimeLoss   float64       `json:"lifetimeLossTotal"`
	LifetimeReturn float64       `json:"lifetimeReturnTotal"`
}

// SessionResult reports one recorded game session.
type SessionResult struct {
	Profile   Profile
	Fee       float64
	NetResult float64
	Summary   string
}
