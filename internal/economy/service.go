package economy

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// StorageKey is the snapshot key the profile persists under.
const StorageKey = "game_economy_profile"

// Storage is the slice of the snapshot store the tracker needs.
type Storage interface {
	GetSnapshot(ctx context.Context, key string) ([]byte, error)
	PutSnapshot(ctx context.Context, key string, payload []byte) error
}

// Service binds the pure cycle-tracker transitions to persisted state.
// Mutations follow the same discipline as the darkcoin service: load,
// one pure transition, best-effort whole-snapshot save.
type Service struct {
	store Storage
	now   func() time.Time

	// rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(store Storage) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load returns the persisted profile, creating a default when nothing
// usable is stored. A calendar-month change triggers cycle rollover
// before the profile is returned, and the rolled state is persisted.
func (s *Service) Load(ctx context.Context) Profile {
	now := s.now()
	p, ok := s.load(ctx)
	if !ok {
		p = NewProfile(now)
	}
	if rolled, changed := Rollover(p, now); changed {
		log.Info().
			Str("cycle", rolled.CycleKey).
			Float64("refund", rolled.LifetimeReturn-p.LifetimeReturn).
			Msg("economy cycle rollover")
		p = rolled
		s.save(ctx, p)
	}
	return p
}

func (s *Service) load(ctx context.Context) (Profile, bool) {
	raw, err := s.store.GetSnapshot(ctx, StorageKey)
	if err != nil {
		return Profile{}, false
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("corrupt economy profile, recreating")
		return Profile{}, false
	}
	return p, true
}

func (s *Service) save(ctx context.Context, p Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).Msg("marshal economy profile failed")
		return
	}
	if err := s.store.PutSnapshot(ctx, StorageKey, raw); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("persist economy profile failed")
	}
}

// RecordSession records one completed game round and persists the
// updated profile.
func (s *Service) RecordSession(ctx context.Context, stake, payout float64) (SessionResult, error) {
	res, err := RecordSession(s.Load(ctx), stake, payout, s.now())
	if err != nil {
		return SessionResult{}, err
	}
	s.save(ctx, res.Profile)
	return res, nil
}

// SpendChips deducts session chips, e.g. ahead of a darkcoin conversion.
func (s *Service) SpendChips(ctx context.Context, amount float64) (Profile, error) {
	p, err := SpendChips(s.Load(ctx), amount)
	if err != nil {
		return p, err
	}
	s.save(ctx, p)
	return p, nil
}

// Insight returns one randomly chosen derived fact for display.
func (s *Service) Insight(ctx context.Context) string {
	p := s.Load(ctx)
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return Insight(p, s.now(), s.rng)
}

// TopLosers returns the simulated biggest-losers ranking.
func (s *Service) TopLosers() []RankedEntry {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return TopLosers(s.rng)
}

// TopRecoveries returns the simulated biggest-recoveries ranking.
func (s *Service) TopRecoveries() []RankedEntry {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return TopRecoveries(s.rng)
}

// Reset discards the profile and starts a fresh one.
func (s *Service) Reset(ctx context.Context) Profile {
	p := NewProfile(s.now())
	s.save(ctx, p)
	return p
}
