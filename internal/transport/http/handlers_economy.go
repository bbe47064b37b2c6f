package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"joker-casino/internal/economy"
)

type economyHandlers struct {
	economy *economy.Service
}

func (h *economyHandlers) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.economy.Load(r.Context())
		writeJSON(w, p)
	}
}

func (h *economyHandlers) RecordSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			StakeAmount  float64 `json:"stake_amount"`
			PayoutAmount float64 `json:"payout_amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.economy.RecordSession(r.Context(), body.StakeAmount, body.PayoutAmount)
		if err != nil {
			if errors.Is(err, economy.ErrNegativeAmount) {
				writeHTTPError(w, http.StatusBadRequest, "negative_amount")
				return
			}
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricSessionsTotal.Inc()
		writeJSON(w, map[string]any{
			"profile":    res.Profile,
			"fee":        res.Fee,
			"net_result": res.NetResult,
			"summary":    res.Summary,
		})
	}
}

func (h *economyHandlers) Insight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"insight": h.economy.Insight(r.Context())})
	}
}

func (h *economyHandlers) TopLosers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": h.economy.TopLosers()})
	}
}

func (h *economyHandlers) TopRecoveries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": h.economy.TopRecoveries()})
	}
}
