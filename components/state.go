package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// GameData is the singleton run state.
type GameData struct {
	Phase config.GamePhase
	Score int
	RunID uuid.UUID

	Time  float64 // simulation seconds since the run started
	Delta float64 // clamped seconds for the current step
	Frame int
}

var Game = donburi.NewComponentType[GameData]()

// PauseData freezes the clock and every gameplay system while set.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// Rand is the randomness the simulation draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type RandomData struct {
	Source Rand
}

var Random = donburi.NewComponentType[RandomData]()

// ArenaData is the singleton arena layout the spawner draws lanes from.
type ArenaData struct {
	Layout config.ArenaLayout
}

var Arena = donburi.NewComponentType[ArenaData]()
