// Package companion implements the casino's rule-based chat companion:
// a pattern tracker that pretends to learn from play. It consumes the
// same session deltas as the economy engine but never touches economic
// state; everything here is display flavor.
package companion

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	historyCap    = 1000
	learningRate  = 0.02
	levelDivisor  = 500
	defaultFavour = "slots"
)

// Observation is one watched game round.
type Observation struct {
	Game      string    `json:"gameType"`
	Action    string    `json:"playerAction"`
	Result    string    `json:"result"` // player_win | ai_win | tie
	Darkcoins int64     `json:"darkcoins"`
	At        time.Time `json:"timestamp"`
}

// Strategy is the per-game "personality" the companion claims to adapt.
type Strategy struct {
	Aggressiveness float64 `json:"aggressiveness"`
	RiskTolerance  float64 `json:"riskTolerance"`
	Adaptability   float64 `json:"adaptability"`
}

// State is the persisted learning state.
type State struct {
	History    []Observation       `json:"gameHistory"`
	Patterns   map[string]int      `json:"playerPatterns"`
	Strategies map[string]Strategy `json:"strategies"`
	Learning   bool                `json:"isLearning"`
}

// Stats is the derived summary shown on the HUD.
type Stats struct {
	GamesAnalyzed    int     `json:"gamesAnalyzed"`
	PatternsLearned  int     `json:"patternsLearned"`
	StrategiesKnown  int     `json:"strategiesAdapted"`
	PlayerWinRate    float64 `json:"playerWinRate"`
	LearningLevel    float64 `json:"learningLevel"`
	Active           bool    `json:"isActive"`
	FavoriteGame     string  `json:"favoriteGame"`
	DarkcoinsTracked int64   `json:"totalDarkcoinsEarned"`
}

func defaultStrategies() map[string]Strategy {
	return map[string]Strategy{
		"blackjack": {Aggressiveness: 0.5, RiskTolerance: 0.4, Adaptability: 0.6},
		"roulette":  {Aggressiveness: 0.6, RiskTolerance: 0.5, Adaptability: 0.7},
		"slots":     {Aggressiveness: 0.4, RiskTolerance: 0.6, Adaptability: 0.5},
		"highlow":   {Aggressiveness: 0.7, RiskTolerance: 0.4, Adaptability: 0.8},
		"arena":     {Aggressiveness: 0.8, RiskTolerance: 0.3, Adaptability: 0.9},
	}
}

// NewState returns a fresh learning state with default strategies.
func NewState() State {
	return State{
		History:    []Observation{},
		Patterns:   map[string]int{},
		Strategies: defaultStrategies(),
		Learning:   true,
	}
}

// Normalize repairs a state loaded from storage: nil maps become empty
// and missing default strategies are restored.
func (s *State) Normalize() {
	if s.Patterns == nil {
		s.Patterns = map[string]int{}
	}
	if s.Strategies == nil {
		s.Strategies = map[string]Strategy{}
	}
	for game, strat := range defaultStrategies() {
		if _, ok := s.Strategies[game]; !ok {
			s.Strategies[game] = strat
		}
	}
}

// Observe records one round and nudges the game's strategy. A win for
// the player makes the companion claim more aggression; a loss makes it
// claim more caution. History is capped to the most recent rounds.
func (s *State) Observe(obs Observation) {
	if !s.Learning {
		return
	}
	if obs.At.IsZero() {
		obs.At = time.Now()
	}
	s.History = append(s.History, obs)
	if len(s.History) > historyCap {
		s.History = s.History[len(s.History)-historyCap:]
	}
	s.Patterns[obs.Game+"_"+obs.Action]++

	strat, ok := s.Strategies[obs.Game]
	if !ok {
		strat = Strategy{Aggressiveness: 0.5, RiskTolerance: 0.5, Adaptability: 0.5}
	}
	switch obs.Result {
	case "player_win":
		strat.Aggressiveness = clamp01(strat.Aggressiveness + learningRate)
		strat.RiskTolerance = clamp01(strat.RiskTolerance - learningRate/2)
	case "ai_win":
		strat.Aggressiveness = clamp01(strat.Aggressiveness - learningRate/3)
		strat.RiskTolerance = clamp01(strat.RiskTolerance + learningRate/2)
	}
	games := 0
	for _, h := range s.History {
		if h.Game == obs.Game {
			games++
		}
	}
	strat.Adaptability = clamp01(0.3 + float64(games)/200)
	s.Strategies[obs.Game] = strat
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Stats derives the display summary from the current state.
func (s *State) Stats() Stats {
	level := float64(len(s.History)) / levelDivisor
	if level > 1 {
		level = 1
	}
	var coins int64
	for _, h := range s.History {
		coins += h.Darkcoins
	}
	return Stats{
		GamesAnalyzed:    len(s.History),
		PatternsLearned:  len(s.Patterns),
		StrategiesKnown:  len(s.Strategies),
		PlayerWinRate:    s.WinRate(),
		LearningLevel:    level,
		Active:           s.Learning,
		FavoriteGame:     s.FavoriteGame(),
		DarkcoinsTracked: coins,
	}
}

// WinRate is the player's observed win fraction, 0.5 with no data.
func (s *State) WinRate() float64 {
	if len(s.History) == 0 {
		return 0.5
	}
	wins := 0
	for _, h := range s.History {
		if h.Result == "player_win" {
			wins++
		}
	}
	return float64(wins) / float64(len(s.History))
}

// FavoriteGame is the most observed game, defaulting to slots.
func (s *State) FavoriteGame() string {
	counts := map[string]int{}
	for _, h := range s.History {
		counts[h.Game]++
	}
	favorite := defaultFavour
	max := 0
	for game, n := range counts {
		if n > max {
			max = n
			favorite = game
		}
	}
	return favorite
}

// ChatResponse produces one canned line in the requested personality.
// Unknown personalities fall back to friendly.
func (s *State) ChatResponse(personality string, rng *rand.Rand) string {
	games := len(s.History)
	rate := s.WinRate() * 100
	favorite := s.FavoriteGame()

	var lines []string
	switch personality {
	case "aggressive":
		lines = []string{
			fmt.Sprintf("%d games analyzed and you still haven't beaten me!", games),
			fmt.Sprintf("A %.1f%% win rate? I can do better!", rate),
			"Your patterns are predictable - I'll exploit every weakness!",
		}
	case "strategic":
		lines = []string{
			fmt.Sprintf("Analysis: %d games, %.1f%% success rate at %s", games, rate, favorite),
			"Pattern identified: you raise your bets while winning",
			"Recommendation: diversify strategies to optimize results",
		}
	default:
		lines = []string{
			fmt.Sprintf("With %d games analyzed, I can tell you prefer %s!", games, favorite),
			fmt.Sprintf("Your %.1f%% win rate shows real progress!", rate),
			"My data says you play better when you relax!",
		}
	}
	return lines[rng.Intn(len(lines))]
}
