package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/yohamta/donburi"
)

// WaveData is the singleton wave director state.
type WaveData struct {
	Number   int
	Total    int
	Kills    int
	Progress float64 // min(1, Kills/quota)

	Complete      bool
	CompleteTimer float64 // seconds left in the celebration window
	Victory       bool

	ActiveKinds []config.EnemyKind
	SpawnTimer  float64 // seconds until the next spawn
}

var Wave = donburi.NewComponentType[WaveData]()
