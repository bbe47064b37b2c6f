package httptransport

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"joker-casino/internal/companion"
	"joker-casino/internal/economy"
	"joker-casino/internal/game"
	"joker-casino/internal/store"
)

type gameHandlers struct {
	games     map[string]game.Game
	economy   *economy.Service
	companion *companion.Service
	store     *store.Store

	// rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// Play resolves one round end to end: stake is checked against the
// session balance, the game produces a delta, the economy records it
// with the daily fee, the companion observes the outcome and the round
// lands in the history log.
func (h *gameHandlers) Play() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "game")
		g, ok := h.games[name]
		if !ok {
			writeHTTPError(w, http.StatusNotFound, "unknown_game")
			return
		}
		var body struct {
			Stake  float64 `json:"stake"`
			Pick   string  `json:"pick"`
			Number int     `json:"number"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.Stake <= 0 {
			writeHTTPError(w, http.StatusBadRequest, "invalid_stake")
			return
		}
		if profile := h.economy.Load(r.Context()); profile.Balance < body.Stake {
			writeHTTPError(w, http.StatusUnprocessableEntity, "insufficient_funds")
			return
		}

		h.rngMu.Lock()
		result, err := g.Play(h.rng, game.Request{
			Stake:  body.Stake,
			Pick:   body.Pick,
			Number: body.Number,
		})
		h.rngMu.Unlock()
		if err != nil {
			switch {
			case errors.Is(err, game.ErrInvalidStake):
				writeHTTPError(w, http.StatusBadRequest, "invalid_stake")
			case errors.Is(err, game.ErrInvalidPick):
				writeHTTPError(w, http.StatusBadRequest, "invalid_pick")
			default:
				writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			}
			return
		}

		session, err := h.economy.RecordSession(r.Context(), result.Stake, result.Payout)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		metricSessionsTotal.Inc()
		metricRoundsPlayed.WithLabelValues(name).Inc()

		obsResult := "ai_win"
		if result.Won {
			obsResult = "player_win"
		}
		h.companion.Observe(r.Context(), companion.Observation{
			Game:   name,
			Action: body.Pick,
			Result: obsResult,
			At:     time.Now(),
		})

		id, err := h.store.InsertRound(r.Context(), store.Round{
			Game:   name,
			Stake:  result.Stake,
			Payout: result.Payout,
			Won:    result.Won,
			Detail: result.Detail,
		})
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}

		writeJSON(w, map[string]any{
			"round_id": id,
			"result":   result,
			"fee":      session.Fee,
			"balance":  session.Profile.Balance,
			"summary":  session.Summary,
		})
	}
}

func (h *gameHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := make([]string, 0, len(h.games))
		for name := range h.games {
			names = append(names, name)
		}
		sort.Strings(names)
		writeJSON(w, map[string]any{"games": names})
	}
}

func (h *gameHandlers) Rounds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		gameName := r.URL.Query().Get("game")
		rounds, err := h.store.ListRounds(r.Context(), gameName, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		total, err := h.store.CountRounds(r.Context(), gameName)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, map[string]any{
			"items":  rounds,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}
}
