package systems

import (
	"math/rand/v2"

	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
)

// GetOrCreateGame returns the singleton run state, creating if needed.
func GetOrCreateGame(w donburi.World) *components.GameData {
	entry, ok := components.Game.First(w)
	if !ok {
		entry = archetypes.Game.Spawn(w)
		components.Game.SetValue(entry, components.GameData{Phase: cfg.PhaseMenu})
		components.Random.SetValue(entry, components.RandomData{
			Source: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		})
		components.Arena.SetValue(entry, components.ArenaData{Layout: cfg.DefaultArena()})
	}
	return components.Game.Get(entry)
}

// GetRand returns the simulation's random source.
func GetRand(w donburi.World) components.Rand {
	GetOrCreateGame(w)
	entry, _ := components.Random.First(w)
	return components.Random.Get(entry).Source
}

// SetRand replaces the random source, e.g. with a seeded one.
func SetRand(w donburi.World, r components.Rand) {
	GetOrCreateGame(w)
	entry, _ := components.Random.First(w)
	components.Random.Get(entry).Source = r
}

// GetArena returns the arena layout the spawner uses.
func GetArena(w donburi.World) *cfg.ArenaLayout {
	GetOrCreateGame(w)
	entry, _ := components.Arena.First(w)
	return &components.Arena.Get(entry).Layout
}

func IsPlaying(w donburi.World) bool {
	return GetOrCreateGame(w).Phase == cfg.PhasePlaying
}

// Now returns the simulation clock in seconds.
func Now(w donburi.World) float64 {
	return GetOrCreateGame(w).Time
}

// Delta returns the clamped length of the current step in seconds.
func Delta(w donburi.World) float64 {
	return GetOrCreateGame(w).Delta
}

// AdvanceClock records a step of dt seconds, clamped to [0, MaxDelta].
func AdvanceClock(w donburi.World, dt float64) float64 {
	game := GetOrCreateGame(w)
	if dt < 0 {
		dt = 0
	}
	if dt > cfg.Sim.MaxDelta {
		dt = cfg.Sim.MaxDelta
	}
	game.Delta = dt
	game.Time += dt
	game.Frame++
	return dt
}

// AddScore awards points and notifies the score display.
func AddScore(w donburi.World, points int) {
	game := GetOrCreateGame(w)
	game.Score += points
	ScoreChanged.Publish(w, ScoreEvent{Score: game.Score})
}

// GetPlayer returns the player entry.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// playerHitbox returns the point enemy projectiles and pick-ups are tested against.
func playerHitbox(e *donburi.Entry) gamemath.Vec3 {
	return components.Transform.Get(e).Position.Add(components.Player.Get(e).HitboxOffset)
}
