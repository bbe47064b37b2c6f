package httptransport

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"joker-casino/internal/companion"
	"joker-casino/internal/config"
	"joker-casino/internal/darkcoin"
	"joker-casino/internal/economy"
	"joker-casino/internal/game"
	"joker-casino/internal/store"
)

// Deps collects everything the router serves.
type Deps struct {
	Store     *store.Store
	Ledger    *darkcoin.Service
	Economy   *economy.Service
	Companion *companion.Service
	Games     map[string]game.Game
	Cfg       config.ServerConfig
	Rand      *rand.Rand
}

func NewRouter(d Deps) *chi.Mux {
	if d.Games == nil {
		d.Games = game.Catalog()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dc := &darkcoinHandlers{ledger: d.Ledger, economy: d.Economy}
	eco := &economyHandlers{economy: d.Economy}
	games := &gameHandlers{
		games:     d.Games,
		economy:   d.Economy,
		companion: d.Companion,
		store:     d.Store,
		rng:       d.Rand,
	}
	comp := &companionHandlers{companion: d.Companion}
	admin := &adminHandlers{
		store:     d.Store,
		ledger:    d.Ledger,
		economy:   d.Economy,
		companion: d.Companion,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", admin.Health())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Route("/darkcoin", func(r chi.Router) {
			r.Get("/", dc.Snapshot())
			r.Get("/leaderboard", dc.Leaderboard())
			r.Post("/convert", dc.Convert())
			r.Post("/burn", dc.Burn())
			r.Post("/prize/claim", dc.ClaimPrize())
		})

		r.Route("/economy", func(r chi.Router) {
			r.Get("/profile", eco.Profile())
			r.Post("/sessions", eco.RecordSession())
			r.Get("/insight", eco.Insight())
			r.Get("/top-losers", eco.TopLosers())
			r.Get("/top-recoveries", eco.TopRecoveries())
		})

		r.Post("/games/{game}/play", games.Play())
		r.Get("/games", games.List())
		r.Get("/rounds", games.Rounds())

		r.Route("/companion", func(r chi.Router) {
			r.Get("/stats", comp.Stats())
			r.Post("/chat", comp.Chat())
			r.Post("/toggle", comp.Toggle())
			r.Post("/reset", comp.Reset())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(d.Cfg.AdminAPIKey))
			r.Use(BodyCaptureMiddleware(4096))
			r.Post("/admin/reset", admin.Reset())
		})
	})

	return r
}

// LogRoutes prints the mounted route table at startup.
func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeHTTPError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": code})
}

func parsePagination(r *http.Request) (int, int) {
	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
