package darkcoin

import (
	"testing"
	"time"
)

func TestDefaultSnapshotSeeding(t *testing.T) {
	s := DefaultSnapshot(nil)
	if s.PlayerBalance != 1000 || s.TotalSupply != 50000 || s.HouseProfit != 50000 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if len(s.Participants) != 4 {
		t.Fatalf("expected 4 participants, got %d", len(s.Participants))
	}
	if got := s.PlayerRank(); got != 4 {
		t.Fatalf("expected player rank 4, got %d", got)
	}
	if s.Participants[0].Name != "Coringa Negro" || s.Participants[0].Rank != 1 {
		t.Fatalf("unexpected top participant: %+v", s.Participants[0])
	}
}

func TestConvertFloorsAndGrowsSupply(t *testing.T) {
	s := DefaultSnapshot(nil)
	res, err := Convert(s, 105)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Earned != 10 {
		t.Fatalf("expected 10 earned, got %d", res.Earned)
	}
	if res.Snapshot.PlayerBalance != 1010 {
		t.Fatalf("expected balance 1010, got %d", res.Snapshot.PlayerBalance)
	}
	if res.Snapshot.TotalSupply != 50010 {
		t.Fatalf("expected supply 50010, got %d", res.Snapshot.TotalSupply)
	}
	if p := res.Snapshot.player(); p == nil || p.Darkcoins != 1010 {
		t.Fatalf("leaderboard row not synced: %+v", p)
	}
}

func TestConvertZeroAndSubRate(t *testing.T) {
	s := DefaultSnapshot(nil)
	res, err := Convert(s, 9)
	if err != nil || res.Earned != 0 {
		t.Fatalf("expected 0 earned for 9 chips, got %d err %v", res.Earned, err)
	}
	if res.Snapshot.TotalSupply != s.TotalSupply {
		t.Fatalf("supply moved on zero conversion")
	}
}

func TestConvertNegative(t *testing.T) {
	if _, err := Convert(DefaultSnapshot(nil), -1); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestExecuteBurnProportionalShares(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s := DefaultSnapshot(nil)
	res := ExecuteBurn(s, now)
	if res.BurnAmount != 5000 {
		t.Fatalf("expected burn 5000, got %d", res.BurnAmount)
	}
	// Each participant loses floor(balance * 5000 / 50000) = balance/10.
	if res.PlayerBurnAmount != 100 {
		t.Fatalf("expected player burn 100, got %d", res.PlayerBurnAmount)
	}
	if res.Snapshot.PlayerBalance != 900 {
		t.Fatalf("expected player balance 900, got %d", res.Snapshot.PlayerBalance)
	}
	if res.Snapshot.TotalSupply != 45000 {
		t.Fatalf("expected supply 45000, got %d", res.Snapshot.TotalSupply)
	}
	if res.Snapshot.HouseProfit != 50000+5000*5 {
		t.Fatalf("expected house profit 75000, got %d", res.Snapshot.HouseProfit)
	}
	if res.Snapshot.LastBurn == nil || !res.Snapshot.LastBurn.Equal(now) {
		t.Fatalf("last burn not stamped: %+v", res.Snapshot.LastBurn)
	}
	if len(res.Snapshot.BurnHistory) != 1 || res.Snapshot.BurnHistory[0].Amount != 5000 {
		t.Fatalf("burn history wrong: %+v", res.Snapshot.BurnHistory)
	}
}

func TestExecuteBurnRemainderLost(t *testing.T) {
	// Supply 101, burn floor(101/10)=10. Shares floor independently so
	// the sum of charged shares can be below the burned amount.
	s := Snapshot{
		PlayerBalance: 33,
		TotalSupply:   101,
		Participants: []Participant{
			{ID: PlayerID, Name: "You", Darkcoins: 33},
			{ID: "1", Name: "Rival", Darkcoins: 68},
		},
	}
	res := ExecuteBurn(s, time.Now())
	if res.BurnAmount != 10 {
		t.Fatalf("expected burn 10, got %d", res.BurnAmount)
	}
	// floor(33*10/101)=3, floor(68*10/101)=6; remainder 1 is not
	// redistributed anywhere.
	if res.PlayerBurnAmount != 3 {
		t.Fatalf("expected player share 3, got %d", res.PlayerBurnAmount)
	}
	if res.Snapshot.Participants[0].Darkcoins != 62 {
		t.Fatalf("expected rival at 62, got %+v", res.Snapshot.Participants)
	}
	if res.Snapshot.TotalSupply != 91 {
		t.Fatalf("expected supply 91, got %d", res.Snapshot.TotalSupply)
	}
}

func TestExecuteBurnZeroSupplyNoop(t *testing.T) {
	s := Snapshot{TotalSupply: 0, HouseProfit: 123}
	res := ExecuteBurn(s, time.Now())
	if res.BurnAmount != 0 || res.Snapshot.HouseProfit != 123 || res.Snapshot.LastBurn != nil {
		t.Fatalf("zero-supply burn not a no-op: %+v", res)
	}
}

func TestClaimPrizeRequiresTopRank(t *testing.T) {
	s := DefaultSnapshot(nil)
	if _, err := ClaimPrize(s, time.Now()); err != ErrNotTopRank {
		t.Fatalf("expected ErrNotTopRank, got %v", err)
	}
}

func TestClaimPrizeAwardsAndGates(t *testing.T) {
	now := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	s := DefaultSnapshot(nil)
	res, err := Convert(s, 200000) // enough to take rank 1
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	s = res.Snapshot
	if s.PlayerRank() != 1 {
		t.Fatalf("setup: expected rank 1, got %d", s.PlayerRank())
	}
	claim, err := ClaimPrize(s, now)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	wantPrize := s.HouseProfit / 20
	if !claim.Awarded || claim.Prize != wantPrize {
		t.Fatalf("expected prize %d, got %+v", wantPrize, claim)
	}
	if claim.Snapshot.PlayerBalance != s.PlayerBalance+wantPrize {
		t.Fatalf("prize not minted onto balance")
	}
	if claim.Snapshot.HouseProfit != s.HouseProfit {
		t.Fatalf("house profit must not change on claim")
	}
	if claim.Snapshot.TotalSupply != s.TotalSupply {
		t.Fatalf("total supply must not change on claim")
	}
	if _, err := ClaimPrize(claim.Snapshot, now); err != ErrAlreadyClaimed {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
}

func TestClaimedBeatsRankInErrorOrder(t *testing.T) {
	s := DefaultSnapshot(nil)
	s.MonthlyPrizeClaimed = true
	if _, err := ClaimPrize(s, time.Now()); err != ErrAlreadyClaimed {
		t.Fatalf("expected ErrAlreadyClaimed for non-top claimed ledger, got %v", err)
	}
}

func TestApplyMonthlyReset(t *testing.T) {
	march := time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 30, 0, 0, time.UTC)

	s := Snapshot{MonthlyPrizeClaimed: true, LastPrizeClaim: &march}
	if got := ApplyMonthlyReset(s, march); got.MonthlyPrizeClaimed != true {
		t.Fatalf("same-month reset must keep flag")
	}
	if got := ApplyMonthlyReset(s, april); got.MonthlyPrizeClaimed != false {
		t.Fatalf("month change must clear flag")
	}

	never := Snapshot{MonthlyPrizeClaimed: true}
	if got := ApplyMonthlyReset(never, march); got.MonthlyPrizeClaimed != false {
		t.Fatalf("ledger with no claim on record must reset")
	}
}

func TestRerankStableOnTies(t *testing.T) {
	ps := []Participant{
		{ID: "1", Darkcoins: 500},
		{ID: "2", Darkcoins: 500},
		{ID: PlayerID, Darkcoins: 500},
	}
	rerank(ps)
	if ps[0].ID != "1" || ps[1].ID != "2" || ps[2].ID != PlayerID {
		t.Fatalf("tie order not stable: %+v", ps)
	}
	if ps[0].Rank != 1 || ps[2].Rank != 3 {
		t.Fatalf("ranks not reassigned: %+v", ps)
	}
}

func TestDaysUntilNextBurn(t *testing.T) {
	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC), 1},
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 17},
		{time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC), 1},
	}
	for _, c := range cases {
		if got := DaysUntilNextBurn(c.now); got != c.want {
			t.Fatalf("%v: expected %d days, got %d", c.now, c.want, got)
		}
	}
}

func TestEndToEndMonthScenario(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	s := DefaultSnapshot(nil)

	res, err := Convert(s, 1000)
	if err != nil || res.Earned != 100 {
		t.Fatalf("convert: earned %d err %v", res.Earned, err)
	}
	s = res.Snapshot
	if s.PlayerBalance != 1100 || s.TotalSupply != 50100 {
		t.Fatalf("post-convert state wrong: %+v", s)
	}

	burn := ExecuteBurn(s, now)
	if burn.BurnAmount != 5010 {
		t.Fatalf("expected burn 5010, got %d", burn.BurnAmount)
	}
	if burn.PlayerBurnAmount != 110 {
		t.Fatalf("expected player burn 110, got %d", burn.PlayerBurnAmount)
	}
	s = burn.Snapshot
	if s.PlayerBalance != 990 || s.TotalSupply != 45090 {
		t.Fatalf("post-burn state wrong: %+v", s)
	}
	if s.HouseProfit != 75050 {
		t.Fatalf("expected house profit 75050, got %d", s.HouseProfit)
	}
	if got := MonthlyPrize(s.HouseProfit); got != 3752 {
		t.Fatalf("expected prize 3752, got %d", got)
	}
}
