package httptransport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "darkcoin_conversions_total",
		Help: "Chip-to-darkcoin conversions performed.",
	})
	metricBurnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "darkcoin_burns_total",
		Help: "Supply burns executed.",
	})
	metricCoinsBurnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "darkcoin_coins_burned_total",
		Help: "Total darkcoins destroyed by burns.",
	})
	metricPrizeClaims = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "darkcoin_prize_claims_total",
		Help: "Monthly prize claim attempts by result.",
	}, []string{"result"})
	metricSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "economy_sessions_recorded_total",
		Help: "Game sessions recorded by the cycle tracker.",
	})
	metricRoundsPlayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "game_rounds_played_total",
		Help: "Rounds played by game.",
	}, []string{"game"})
)
