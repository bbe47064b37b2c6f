package darkcoin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// StorageKey is the snapshot key the ledger persists under.
const StorageKey = "darkcoin_system"

// Storage is the slice of the snapshot store the ledger needs.
type Storage interface {
	GetSnapshot(ctx context.Context, key string) ([]byte, error)
	PutSnapshot(ctx context.Context, key string, payload []byte) error
}

// Service binds the pure ledger transitions to persisted state. Every
// mutation loads the snapshot, applies one transition and saves the
// whole snapshot back; storage failures are logged and swallowed so the
// in-memory result still reaches the caller.
type Service struct {
	store  Storage
	roster []SeedCompetitor
	now    func() time.Time
}

func NewService(store Storage, roster []SeedCompetitor) *Service {
	return &Service{store: store, roster: roster, now: time.Now}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load returns the persisted snapshot, falling back to a freshly seeded
// default when nothing is stored or the stored payload does not parse.
// The monthly prize flag is re-evaluated against the current month on
// every load.
func (s *Service) Load(ctx context.Context) Snapshot {
	snap, ok := s.load(ctx)
	if !ok {
		snap = DefaultSnapshot(s.roster)
	}
	snap = ApplyMonthlyReset(snap, s.now())
	return snap
}

func (s *Service) load(ctx context.Context) (Snapshot, bool) {
	raw, err := s.store.GetSnapshot(ctx, StorageKey)
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("corrupt ledger snapshot, reseeding")
		return Snapshot{}, false
	}
	return snap, true
}

func (s *Service) save(ctx context.Context, snap Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("marshal ledger snapshot failed")
		return
	}
	if err := s.store.PutSnapshot(ctx, StorageKey, raw); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("persist ledger snapshot failed")
	}
}

// Convert exchanges session chips for darkcoins and persists the result.
func (s *Service) Convert(ctx context.Context, chips int64) (ConvertResult, error) {
	res, err := Convert(s.Load(ctx), chips)
	if err != nil {
		return ConvertResult{}, err
	}
	s.save(ctx, res.Snapshot)
	return res, nil
}

// Burn executes one proportional supply burn and persists the result.
// There is no cooldown here; callers gate how often they trigger it.
func (s *Service) Burn(ctx context.Context) BurnResult {
	res := ExecuteBurn(s.Load(ctx), s.now())
	s.save(ctx, res.Snapshot)
	return res
}

// ClaimPrize attempts the monthly rank-gated prize claim.
func (s *Service) ClaimPrize(ctx context.Context) (ClaimResult, error) {
	res, err := ClaimPrize(s.Load(ctx), s.now())
	if err != nil {
		return res, err
	}
	s.save(ctx, res.Snapshot)
	return res, nil
}

// Reset discards all ledger state and reseeds the default snapshot.
func (s *Service) Reset(ctx context.Context) Snapshot {
	snap := DefaultSnapshot(s.roster)
	s.save(ctx, snap)
	return snap
}

// DaysUntilBurn reports days remaining before the next scheduled burn.
func (s *Service) DaysUntilBurn() int {
	return DaysUntilNextBurn(s.now())
}
