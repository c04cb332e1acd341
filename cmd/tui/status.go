package main

import (
	"fmt"
	"slices"
	"strings"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
)

// Status is the latest state pushed by the simulation.
type Status struct {
	Score      int
	Health     int
	MaxHealth  int
	Wave       int
	TotalWaves int
	Progress   float64
	PowerUps   []string
	Paused     bool
	Result     string // "GAME OVER" or "VICTORY" once the run has ended
}

var _ game.Notifier = (*Status)(nil)

func (s *Status) UpdateScoreDisplay(score int) {
	s.Score = score
}

func (s *Status) UpdateHealthDisplay(health, maxHealth int) {
	s.Health = health
	s.MaxHealth = maxHealth
}

func (s *Status) UpdateWaveDisplay(wave, totalWaves int, progress float64) {
	s.Wave = wave
	s.TotalWaves = totalWaves
	s.Progress = progress
}

func (s *Status) UpdatePowerUpDisplay(active map[cfg.PowerUpKind]float64) {
	kinds := make([]cfg.PowerUpKind, 0, len(active))
	for kind := range active {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	s.PowerUps = s.PowerUps[:0]
	for _, kind := range kinds {
		s.PowerUps = append(s.PowerUps, fmt.Sprintf("%s %.0fs", strings.ToUpper(kind.String()), active[kind]))
	}
}

func (s *Status) OnGameOver(finalScore, finalWave int) {
	s.Score = finalScore
	s.Wave = finalWave
	s.Result = "GAME OVER"
}

func (s *Status) OnVictory(finalScore, finalWave int) {
	s.Score = finalScore
	s.Wave = finalWave
	s.Result = "VICTORY"
}
