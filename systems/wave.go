package systems

import (
	"math"
	"slices"

	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateWave returns the singleton wave state, creating if needed.
func GetOrCreateWave(w donburi.World) *components.WaveData {
	if _, ok := components.Wave.First(w); !ok {
		ent := archetypes.Wave.Spawn(w)
		components.Wave.SetValue(ent, NewWaveData())
	}

	ent, _ := components.Wave.First(w)
	return components.Wave.Get(ent)
}

// NewWaveData returns the state at the start of wave 1.
func NewWaveData() components.WaveData {
	return components.WaveData{
		Number:      1,
		Total:       cfg.Wave.TotalWaves,
		ActiveKinds: slices.Clone(cfg.Wave.StartingKinds),
		SpawnTimer:  SpawnInterval(1) / 2,
	}
}

// WaveProgress returns min(1, kills/quota) for the given wave.
func WaveProgress(kills, wave int) float64 {
	return math.Min(1, float64(kills)/float64(cfg.KillQuota(wave)))
}

// RecordKill counts an enemy kill toward the current wave and starts the
// completion window once the quota is met.
func RecordKill(w donburi.World) {
	wave := GetOrCreateWave(w)
	wave.Kills++
	wave.Progress = WaveProgress(wave.Kills, wave.Number)
	publishWave(w, wave)

	if !wave.Complete && wave.Kills >= cfg.KillQuota(wave.Number) {
		wave.Complete = true
		wave.CompleteTimer = cfg.Wave.CompleteDelay
		PlaySFX(w, cfg.SoundWaveComplete)
		WaveCompleted.Publish(w, WaveCompleteEvent{Wave: wave.Number})
	}
}

// UpdateWave runs the completion window and advances to the next wave,
// or to victory, when it ends.
func UpdateWave(w donburi.World) {
	wave := GetOrCreateWave(w)
	if !wave.Complete {
		return
	}

	wave.CompleteTimer -= Delta(w)
	if wave.CompleteTimer > 0 {
		return
	}

	wave.Number++
	wave.Complete = false
	wave.CompleteTimer = 0
	wave.Kills = 0
	wave.Progress = 0
	if kind, ok := cfg.Wave.Unlocks[wave.Number]; ok && !slices.Contains(wave.ActiveKinds, kind) {
		wave.ActiveKinds = append(wave.ActiveKinds, kind)
	}

	if wave.Number > wave.Total {
		triggerVictory(w)
		return
	}
	wave.SpawnTimer = SpawnInterval(wave.Number)
	publishWave(w, wave)
}

func publishWave(w donburi.World, wave *components.WaveData) {
	WaveChanged.Publish(w, WaveEvent{
		Wave:     wave.Number,
		Total:    wave.Total,
		Progress: wave.Progress,
	})
}
