package companion

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// StorageKey is the snapshot key the learning state persists under.
const StorageKey = "ai_learning_data"

type Storage interface {
	GetSnapshot(ctx context.Context, key string) ([]byte, error)
	PutSnapshot(ctx context.Context, key string, payload []byte) error
}

// Service persists the companion's learning state, reloading it on
// every call the same way the economy services do.
type Service struct {
	store Storage

	// rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(store Storage) *Service {
	return &Service{store: store, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Service) load(ctx context.Context) State {
	raw, err := s.store.GetSnapshot(ctx, StorageKey)
	if err != nil {
		return NewState()
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("corrupt companion state, resetting")
		return NewState()
	}
	st.Normalize()
	return st
}

func (s *Service) save(ctx context.Context, st State) {
	raw, err := json.Marshal(st)
	if err != nil {
		log.Error().Err(err).Msg("marshal companion state failed")
		return
	}
	if err := s.store.PutSnapshot(ctx, StorageKey, raw); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("persist companion state failed")
	}
}

// Observe feeds one round into the tracker.
func (s *Service) Observe(ctx context.Context, obs Observation) {
	st := s.load(ctx)
	st.Observe(obs)
	s.save(ctx, st)
}

// Stats returns the derived HUD summary.
func (s *Service) Stats(ctx context.Context) Stats {
	st := s.load(ctx)
	return st.Stats()
}

// Chat produces one canned companion line.
func (s *Service) Chat(ctx context.Context, personality string) string {
	st := s.load(ctx)
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return st.ChatResponse(personality, s.rng)
}

// Reset wipes the learning state.
func (s *Service) Reset(ctx context.Context) {
	s.save(ctx, NewState())
}

// Toggle flips learning on or off and reports the new setting.
func (s *Service) Toggle(ctx context.Context) bool {
	st := s.load(ctx)
	st.Learning = !st.Learning
	s.save(ctx, st)
	return st.Learning
}
