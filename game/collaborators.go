package game

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Notifier,SoundPlayer

// Notifier receives one-way display updates from the simulation.
type Notifier interface {
	UpdateScoreDisplay(score int)
	UpdateHealthDisplay(health, maxHealth int)
	UpdateWaveDisplay(wave, totalWaves int, progress float64)
	UpdatePowerUpDisplay(active map[cfg.PowerUpKind]float64)
	OnGameOver(finalScore, finalWave int)
	OnVictory(finalScore, finalWave int)
}

// SoundOptions describes how a sound should be played.
type SoundOptions struct {
	Volume   float64
	Position *gamemath.Vec3 // nil for non-positional sounds
	Loop     bool
	Key      string // handle for Stop, empty for fire-and-forget sounds
}

// SoundPlayer plays sounds on a best-effort basis. Implementations log their
// own failures; nothing is reported back to the simulation.
type SoundPlayer interface {
	Play(name string, opts SoundOptions)
	Stop(key string)
}

type nopNotifier struct{}

func (nopNotifier) UpdateScoreDisplay(int)                           {}
func (nopNotifier) UpdateHealthDisplay(int, int)                     {}
func (nopNotifier) UpdateWaveDisplay(int, int, float64)              {}
func (nopNotifier) UpdatePowerUpDisplay(map[cfg.PowerUpKind]float64) {}
func (nopNotifier) OnGameOver(int, int)                              {}
func (nopNotifier) OnVictory(int, int)                               {}

type nopSoundPlayer struct{}

func (nopSoundPlayer) Play(string, SoundOptions) {}
func (nopSoundPlayer) Stop(string)               {}
