package httptransport

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"joker-casino/internal/companion"
	"joker-casino/internal/darkcoin"
	"joker-casino/internal/economy"
	"joker-casino/internal/store"
)

type adminHandlers struct {
	store     *store.Store
	ledger    *darkcoin.Service
	economy   *economy.Service
	companion *companion.Service
}

func (h *adminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			writeHTTPError(w, http.StatusServiceUnavailable, "store_unavailable")
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	}
}

// Reset reseeds every persisted subsystem. The three stored states are
// independent, so each is reset on its own; a partial failure leaves
// the others reseeded.
func (h *adminHandlers) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.ledger.Reset(r.Context())
		profile := h.economy.Reset(r.Context())
		h.companion.Reset(r.Context())
		log.Info().Msg("all persisted state reseeded")
		writeJSON(w, map[string]any{
			"snapshot": snap,
			"profile":  profile,
		})
	}
}
