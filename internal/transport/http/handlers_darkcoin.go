package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"joker-casino/internal/darkcoin"
	"joker-casino/internal/economy"
)

type darkcoinHandlers struct {
	ledger  *darkcoin.Service
	economy *economy.Service
}

func (h *darkcoinHandlers) Snapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.ledger.Load(r.Context())
		writeJSON(w, map[string]any{
			"snapshot":        snap,
			"days_until_burn": h.ledger.DaysUntilBurn(),
			"monthly_prize":   darkcoin.MonthlyPrize(snap.HouseProfit),
		})
	}
}

func (h *darkcoinHandlers) Leaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.ledger.Load(r.Context())
		writeJSON(w, map[string]any{
			"items":                 snap.Participants,
			"player_rank":           snap.PlayerRank(),
			"monthly_prize":         darkcoin.MonthlyPrize(snap.HouseProfit),
			"monthly_prize_claimed": snap.MonthlyPrizeClaimed,
		})
	}
}

// Convert spends session chips for darkcoins. The session balance check
// lives here, on the caller side; the ledger itself only floors and mints.
func (h *darkcoinHandlers) Convert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ChipsAmount int64 `json:"chips_amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.ChipsAmount < 0 {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		profile, err := h.economy.SpendChips(r.Context(), float64(body.ChipsAmount))
		if err != nil {
			if errors.Is(err, economy.ErrInsufficientFunds) {
				writeHTTPError(w, http.StatusUnprocessableEntity, "insufficient_funds")
				return
			}
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := h.ledger.Convert(r.Context(), body.ChipsAmount)
		if err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricConversionsTotal.Inc()
		writeJSON(w, map[string]any{
			"darkcoins_earned": res.Earned,
			"chips_balance":    profile.Balance,
			"snapshot":         res.Snapshot,
		})
	}
}

func (h *darkcoinHandlers) Burn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.ledger.Burn(r.Context())
		metricBurnsTotal.Inc()
		metricCoinsBurnedTotal.Add(float64(res.BurnAmount))
		writeJSON(w, map[string]any{
			"burn_amount":        res.BurnAmount,
			"player_burn_amount": res.PlayerBurnAmount,
			"snapshot":           res.Snapshot,
		})
	}
}

func (h *darkcoinHandlers) ClaimPrize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.ledger.ClaimPrize(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, darkcoin.ErrNotTopRank):
				metricPrizeClaims.WithLabelValues("not_top_rank").Inc()
				writeHTTPError(w, http.StatusConflict, "not_top_rank")
			case errors.Is(err, darkcoin.ErrAlreadyClaimed):
				metricPrizeClaims.WithLabelValues("already_claimed").Inc()
				writeHTTPError(w, http.StatusConflict, "already_claimed")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		metricPrizeClaims.WithLabelValues("awarded").Inc()
		writeJSON(w, map[string]any{
			"awarded":      res.Awarded,
			"prize_amount": res.Prize,
			"snapshot":     res.Snapshot,
		})
	}
}
