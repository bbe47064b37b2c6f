package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string `env:"DB_PATH" envDefault:"joker-casino.db"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// Optional TOML file overriding the default leaderboard competitors.
	SeedRosterPath string `env:"SEED_ROSTER_PATH"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
