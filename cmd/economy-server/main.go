package main

import (
	"context"
	"net/http"
	"time"

	"joker-casino/internal/companion"
	"joker-casino/internal/config"
	"joker-casino/internal/darkcoin"
	"joker-casino/internal/economy"
	"joker-casino/internal/game"
	"joker-casino/internal/logging"
	"joker-casino/internal/store"
	httptransport "joker-casino/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	appCfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(appCfg.Log)
	cfg := appCfg.Server

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	roster, err := config.LoadSeedRoster(cfg.SeedRosterPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SeedRosterPath).Msg("load seed roster failed")
	}

	r := httptransport.NewRouter(httptransport.Deps{
		Store:     st,
		Ledger:    darkcoin.NewService(st, roster),
		Economy:   economy.NewService(st),
		Companion: companion.NewService(st),
		Games:     game.Catalog(),
		Cfg:       cfg,
	})
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Str("db", cfg.DBPath).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
