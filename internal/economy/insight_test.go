package economy

import (
	"math/rand"
	"testing"
	"time"
)

func TestInsightVariants(t *testing.T) {
	now := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	p := NewProfile(now)
	res, _ := RecordSession(p, 200, 0, now)
	p = res.Profile

	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Insight(p, now, rng)] = true
	}
	want := []string{
		"You lost 220 chips this month",
		"Estimated return: 110 chips",
		"21 days left in the cycle",
		"Return rate: 50% of losses",
		"Sessions played today: 1",
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %d distinct insights, got %v", len(want), seen)
	}
	for _, w := range want {
		if !seen[w] {
			t.Fatalf("missing insight %q in %v", w, seen)
		}
	}
}

func TestTopLosersRanking(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := TopLosers(rng)
	if len(items) != len(loserNames) {
		t.Fatalf("expected %d rows, got %d", len(loserNames), len(items))
	}
	for i, it := range items {
		if it.Rank != i+1 {
			t.Fatalf("rank %d at index %d: %+v", it.Rank, i, it)
		}
		if it.Amount < 10000 || it.Amount >= 60000 {
			t.Fatalf("amount out of range: %+v", it)
		}
		if i > 0 && items[i-1].Amount < it.Amount {
			t.Fatalf("not sorted descending at %d: %+v", i, items)
		}
	}
}

func TestTopRecoveriesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, it := range TopRecoveries(rng) {
		if it.Amount < 5000 || it.Amount >= 30000 {
			t.Fatalf("amount out of range: %+v", it)
		}
	}
}
