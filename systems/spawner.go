package systems

import (
	"math"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// SpawnInterval returns the seconds between spawns on the given wave.
func SpawnInterval(wave int) float64 {
	return math.Max(cfg.Wave.MinSpawnInterval, cfg.Wave.BaseSpawnInterval-float64(wave)*cfg.Wave.SpawnIntervalStep)
}

// UpdateSpawner spawns one enemy each interval. Spawning pauses while a
// completed wave is waiting for the next one.
func UpdateSpawner(w donburi.World) {
	wave := GetOrCreateWave(w)
	if wave.Complete || wave.Victory || len(wave.ActiveKinds) == 0 {
		return
	}

	wave.SpawnTimer -= Delta(w)
	if wave.SpawnTimer > 0 {
		return
	}
	wave.SpawnTimer += SpawnInterval(wave.Number)
	if wave.SpawnTimer < 0 {
		wave.SpawnTimer = 0
	}

	rng := GetRand(w)
	kind := wave.ActiveKinds[rng.IntN(len(wave.ActiveKinds))]
	lane, ok := pickLane(GetArena(w).Lanes, kind, rng)
	if !ok {
		return
	}
	SpawnEnemy(w, kind, gamemath.Vec3{X: lane.X, Z: lane.Z})
}

// SpawnEnemy creates an enemy at pos. Spawns beyond the enemy cap are skipped.
func SpawnEnemy(w donburi.World, kind cfg.EnemyKind, pos gamemath.Vec3) *donburi.Entry {
	return factory.CreateEnemy(w, kind, pos, Now(w))
}

func pickLane(lanes []cfg.SpawnLane, kind cfg.EnemyKind, rng components.Rand) (cfg.SpawnLane, bool) {
	candidates := make([]cfg.SpawnLane, 0, len(lanes))
	for _, lane := range lanes {
		if lane.Allows(kind) {
			candidates = append(candidates, lane)
		}
	}
	if len(candidates) == 0 {
		return cfg.SpawnLane{}, false
	}
	return candidates[rng.IntN(len(candidates))], true
}
