package systems

import "github.com/yohamta/donburi"

// System advances one concern of the simulation by one step.
type System func(w donburi.World)

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if pause := GetOrCreatePause(w); pause.IsPaused {
			return
		}
		system(w)
	}
}

// WithPlayingCheck wraps a system to skip execution outside of an active run.
func WithPlayingCheck(system System) System {
	return func(w donburi.World) {
		if !IsPlaying(w) {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when the
// run has ended.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(WithPlayingCheck(system))
}
