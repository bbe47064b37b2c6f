package httptransport

import (
	"encoding/json"
	"net/http"

	"joker-casino/internal/companion"
)

type companionHandlers struct {
	companion *companion.Service
}

func (h *companionHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, h.companion.Stats(r.Context()))
	}
}

func (h *companionHandlers) Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Personality string `json:"personality"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		writeJSON(w, map[string]string{
			"message": h.companion.Chat(r.Context(), body.Personality),
		})
	}
}

func (h *companionHandlers) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learning := h.companion.Toggle(r.Context())
		writeJSON(w, map[string]bool{"learning": learning})
	}
}

func (h *companionHandlers) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.companion.Reset(r.Context())
		writeJSON(w, map[string]string{"status": "reset"})
	}
}
