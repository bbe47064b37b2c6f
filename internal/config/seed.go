package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"joker-casino/internal/darkcoin"
)

type seedRosterFile struct {
	Competitors []seedCompetitor `toml:"competitor"`
}

type seedCompetitor struct {
	Name      string `toml:"name"`
	Darkcoins int64  `toml:"darkcoins"`
	TotalWins int64  `toml:"total_wins"`
}

// LoadSeedRoster reads the competitor roster from a TOML file. An empty
// path means the built-in default roster; a missing or invalid file is
// an error so a typo'd path fails loudly at startup.
func LoadSeedRoster(path string) ([]darkcoin.SeedCompetitor, error) {
	if path == "" {
		return darkcoin.DefaultRoster(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file seedRosterFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Competitors) == 0 {
		return nil, fmt.Errorf("seed roster %s has no competitors", path)
	}
	out := make([]darkcoin.SeedCompetitor, 0, len(file.Competitors))
	for _, c := range file.Competitors {
		if c.Name == "" || c.Darkcoins < 0 {
			return nil, fmt.Errorf("seed roster %s has an invalid competitor entry", path)
		}
		out = append(out, darkcoin.SeedCompetitor{
			Name:      c.Name,
			Darkcoins: c.Darkcoins,
			TotalWins: c.TotalWins,
		})
	}
	return out, nil
}
