package systems

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	"github.com/yohamta/donburi"
)

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := archetypes.Pause.Spawn(w)
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}

// TogglePause flips the pause flag while a run is active and returns the new state.
func TogglePause(w donburi.World) bool {
	pause := GetOrCreatePause(w)
	if !IsPlaying(w) {
		pause.IsPaused = false
		return false
	}
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		PauseMusic(w)
	} else {
		ResumeMusic(w)
	}
	return pause.IsPaused
}

func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}
