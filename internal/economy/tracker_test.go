package economy

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewProfileDefaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := NewProfile(now)
	if p.Balance != 1000 || p.CycleKey != "2026-09" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.Current.ReturnRate != 0.5 || p.Current.DaysRemaining != 30 {
		t.Fatalf("unexpected cycle report: %+v", p.Current)
	}
}

func TestRecordSessionWin(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	p := NewProfile(now)
	res, err := RecordSession(p, 100, 150, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !almostEqual(res.Fee, 10) {
		t.Fatalf("expected fee 10, got %v", res.Fee)
	}
	if !almostEqual(res.NetResult, 50) {
		t.Fatalf("expected net 50, got %v", res.NetResult)
	}
	// Balance moves by net minus fee: 1000 + 50 - 10 = 1040.
	if !almostEqual(res.Profile.Balance, 1040) {
		t.Fatalf("expected balance 1040, got %v", res.Profile.Balance)
	}
	// A net win still feeds the fee into the cycle loss.
	if !almostEqual(res.Profile.Current.TotalLoss, 10) {
		t.Fatalf("expected cycle loss 10, got %v", res.Profile.Current.TotalLoss)
	}
	if res.Summary != "Won 50 chips! Daily fee: -10" {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
}

func TestRecordSessionLoss(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	p := NewProfile(now)
	res, err := RecordSession(p, 100, 0, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !almostEqual(res.Profile.Balance, 890) {
		t.Fatalf("expected balance 890, got %v", res.Profile.Balance)
	}
	if !almostEqual(res.Profile.Current.TotalLoss, 110) {
		t.Fatalf("expected cycle loss 110, got %v", res.Profile.Current.TotalLoss)
	}
	if res.Summary != "Lost 100 chips + fee: -10" {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
}

func TestRecordSessionPushCountsAsLoss(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	res, err := RecordSession(NewProfile(now), 100, 100, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if res.Summary != "Lost 0 chips + fee: -10" {
		t.Fatalf("push must read as loss, got %q", res.Summary)
	}
	if !almostEqual(res.Profile.Current.TotalLoss, 10) {
		t.Fatalf("push loss figure must be just the fee, got %v", res.Profile.Current.TotalLoss)
	}
}

func TestRecordSessionNegativeInput(t *testing.T) {
	now := time.Now()
	if _, err := RecordSession(NewProfile(now), -1, 0, now); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount for stake, got %v", err)
	}
	if _, err := RecordSession(NewProfile(now), 10, -1, now); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount for payout, got %v", err)
	}
}

func TestRecordSessionDailyAggregation(t *testing.T) {
	day := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	p := NewProfile(day)
	res, _ := RecordSession(p, 100, 0, day)
	res, _ = RecordSession(res.Profile, 50, 80, day.Add(4*time.Hour))
	p = res.Profile
	if len(p.Current.Days) != 1 {
		t.Fatalf("same-day sessions must share an aggregate, got %d", len(p.Current.Days))
	}
	d := p.Current.Days[0]
	if d.Sessions != 2 || !almostEqual(d.TotalStaked, 150) || !almostEqual(d.TotalPayout, 80) {
		t.Fatalf("unexpected aggregate: %+v", d)
	}
	// netLoss = staked - payout + fees = 150 - 80 + 15.
	if !almostEqual(d.NetLoss, 85) {
		t.Fatalf("expected day net loss 85, got %v", d.NetLoss)
	}

	next := day.Add(24 * time.Hour)
	res, _ = RecordSession(p, 10, 0, next)
	if len(res.Profile.Current.Days) != 2 {
		t.Fatalf("new day must open a new aggregate")
	}
	if TodaySessions(res.Profile, next) != 1 {
		t.Fatalf("expected 1 session today")
	}
}

func TestRolloverRefundsHalf(t *testing.T) {
	sep := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	p := NewProfile(sep)
	res, _ := RecordSession(p, 1000, 0, sep) // loss 1100, balance -100
	p = res.Profile

	rolled, changed := Rollover(p, oct)
	if !changed {
		t.Fatalf("month change must roll over")
	}
	if !almostEqual(rolled.Balance, p.Balance+550) {
		t.Fatalf("expected refund 550, got balance %v from %v", rolled.Balance, p.Balance)
	}
	if rolled.CycleKey != "2026-10" {
		t.Fatalf("cycle key not advanced: %q", rolled.CycleKey)
	}
	if len(rolled.Archived) != 1 || !almostEqual(rolled.Archived[0].TotalReturn, 550) {
		t.Fatalf("archived report wrong: %+v", rolled.Archived)
	}
	if !almostEqual(rolled.LifetimeLoss, 1100) || !almostEqual(rolled.LifetimeReturn, 550) {
		t.Fatalf("lifetime totals wrong: %+v", rolled)
	}
	if rolled.Current.TotalLoss != 0 || len(rolled.Current.Days) != 0 {
		t.Fatalf("fresh cycle not empty: %+v", rolled.Current)
	}

	if _, changed := Rollover(rolled, oct); changed {
		t.Fatalf("same month must not roll over twice")
	}
}

func TestDaysRemaining(t *testing.T) {
	cases := []struct {
		key  string
		now  time.Time
		want int
	}{
		{"2026-09", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 30},
		{"2026-09", time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), 15},
		{"2026-09", time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), 0},
		{"garbage", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, c := range cases {
		if got := DaysRemaining(c.key, c.now); got != c.want {
			t.Fatalf("%s at %v: expected %d, got %d", c.key, c.now, c.want, got)
		}
	}
}

func TestSpendChips(t *testing.T) {
	p := NewProfile(time.Now())
	out, err := SpendChips(p, 400)
	if err != nil || !almostEqual(out.Balance, 600) {
		t.Fatalf("expected balance 600, got %v err %v", out.Balance, err)
	}
	if _, err := SpendChips(out, 601); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := SpendChips(out, -5); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}
