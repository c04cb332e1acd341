package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// ResetRun clears every entity collection and restores the start-of-run
// state in one call. It returns the new run identifier.
func ResetRun(w donburi.World) uuid.UUID {
	factory.DestroyAll(w)

	if _, ok := components.Space.First(w); !ok {
		factory.CreateSpace(w)
	}

	game := GetOrCreateGame(w)
	*game = components.GameData{
		Phase: cfg.PhasePlaying,
		RunID: uuid.New(),
	}
	*GetOrCreateWave(w) = NewWaveData()
	GetOrCreatePause(w).IsPaused = false
	GetOrCreateAudio(w).Pending = GetOrCreateAudio(w).Pending[:0]

	start := GetArena(w).PlayerStart
	playerEntry, ok := GetPlayer(w)
	if !ok {
		playerEntry = factory.CreatePlayer(w, start)
	} else {
		components.Transform.SetValue(playerEntry, components.TransformData{Position: start})
		components.Health.SetValue(playerEntry, components.HealthData{
			Current: cfg.Player.Health,
			Max:     cfg.Player.Health,
		})
		components.Player.SetValue(playerEntry, factory.NewPlayerData(start))
		factory.PlaceObject(components.Object.Get(playerEntry).Object, start.Add(cfg.Player.HitboxOffset))
	}

	ScoreChanged.Publish(w, ScoreEvent{Score: 0})
	publishHealth(w, playerEntry)
	publishWave(w, GetOrCreateWave(w))
	publishPowerUps(w, components.Player.Get(playerEntry))
	PlayMusic(w)

	return game.RunID
}

// EndRun drops back to the menu phase and clears the arena.
func EndRun(w donburi.World) {
	factory.DestroyAll(w)
	GetOrCreateGame(w).Phase = cfg.PhaseMenu
	GetOrCreatePause(w).IsPaused = false
	StopMusic(w)
}
