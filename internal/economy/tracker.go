package economy

import (
	"fmt"
	"math"
	"time"
)

const (
	// FeeRate is the flat fee charged on every session's stake,
	// win or lose.
	FeeRate = 0.10
	// ReturnRate is the fraction of accumulated cycle losses refunded
	// at rollover.
	ReturnRate = 0.50
	// CycleDays is the length of one accounting cycle.
	CycleDays = 30

	defaultBalance = 1000
)

// MonthKey formats t as the calendar-month cycle key, e.g. "2026-09".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DayKey formats t as the calendar-day aggregate key, e.g. "2026-09-01".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func newCycleReport() CycleReport {
	return CycleReport{
		ReturnRate:    ReturnRate,
		DaysRemaining: CycleDays,
		Days:          []DailyAggregate{},
	}
}

// NewProfile creates the default profile for a fresh device.
func NewProfile(now time.Time) Profile {
	return Profile{
		ParticipantID: "player",
		Balance:       defaultBalance,
		CycleKey:      MonthKey(now),
		Current:       newCycleReport(),
		Archived:      []CycleReport{},
	}
}

// Rollover closes the current cycle if the calendar month has changed:
// half of the accumulated loss is refunded onto the balance, the frozen
// report moves to the archive, and a fresh cycle starts. Returns the
// updated profile and whether a rollover happened.
func Rollover(p Profile, now time.Time) (Profile, bool) {
	key := MonthKey(now)
	if p.CycleKey == key {
		return p, false
	}
	refund := p.Current.TotalLoss * ReturnRate
	p.Current.TotalReturn = refund
	p.Archived = append(p.Archived, p.Current)
	p.Balance += refund
	p.LifetimeReturn += refund
	p.LifetimeLoss += p.Current.TotalLoss
	p.CycleKey = key
	p.Current = newCycleReport()
	return p, true
}

// DaysRemaining computes how many of the 30 cycle days are left, counting
// whole days elapsed since the first of the cycle's month.
func DaysRemaining(cycleKey string, now time.Time) int {
	start, err := time.ParseInLocation("2006-01", cycleKey, now.Location())
	if err != nil {
		return CycleDays
	}
	elapsed := int(now.Sub(start).Hours() / 24)
	remaining := CycleDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordSession applies one completed game round to the profile. The
// balance moves by the net result minus the flat fee. Only the losing
// portion of the net result feeds the cycle's loss figure, but the fee
// always does; net wins never reduce it.
func RecordSession(p Profile, stake, payout float64, now time.Time) (SessionResult, error) {
	if stake < 0 || payout < 0 {
		return SessionResult{}, ErrNegativeAmount
	}
	netResult := payout - stake
	fee := stake * FeeRate
	p.Balance += netResult - fee

	day := DayKey(now)
	idx := -1
	for i := range p.Current.Days {
		if p.Current.Days[i].Date == day {
			idx = i
			break
		}
	}
	if idx == -1 {
		p.Current.Days = append(p.Current.Days, DailyAggregate{Date: day})
		idx = len(p.Current.Days) - 1
	}
	d := &p.Current.Days[idx]
	d.TotalStaked += stake
	d.TotalPayout += payout
	d.FeeCollected += fee
	d.Sessions++
	d.NetLoss = d.TotalStaked - d.TotalPayout + d.FeeCollected

	loss := math.Max(0, stake-payout) + fee
	p.Current.TotalLoss += loss
	p.Current.DaysRemaining = DaysRemaining(p.CycleKey, now)

	summary := fmt.Sprintf("Won %.0f chips! Daily fee: -%.0f", netResult, fee)
	if netResult <= 0 {
		summary = fmt.Sprintf("Lost %.0f chips + fee: -%.0f", stake-payout, fee)
	}
	return SessionResult{Profile: p, Fee: fee, NetResult: netResult, Summary: summary}, nil
}

// SpendChips deducts a chip amount from the session balance, rejecting
// overdrafts. This is the caller-side guard in front of darkcoin
// conversion: the ledger itself never checks session funds.
func SpendChips(p Profile, amount float64) (Profile, error) {
	if amount < 0 {
		return p, ErrNegativeAmount
	}
	if p.Balance < amount {
		return p, ErrInsufficientFunds
	}
	p.Balance -= amount
	return p, nil
}

// TodaySessions counts sessions recorded on now's calendar day.
func TodaySessions(p Profile, now time.Time) int {
	day := DayKey(now)
	for _, d := range p.Current.Days {
		if d.Date == day {
			return d.Sessions
		}
	}
	return 0
}
