package systems

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/yohamta/donburi"
)

// MusicKey is the sound key the background loop is registered under.
const MusicKey = "music"

// GetOrCreateAudio returns the singleton audio queue, creating if needed.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = archetypes.Audio.Spawn(w)
		components.Audio.SetValue(entry, components.AudioData{
			Pending: make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect to be played at the end of the step
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	queueSound(w, components.SoundRequest{ID: sound, Volume: soundVolume(sound)})
}

// PlaySFXAt queues a positional sound effect
func PlaySFXAt(w donburi.World, sound cfg.SoundID, pos gamemath.Vec3) {
	queueSound(w, components.SoundRequest{ID: sound, Volume: soundVolume(sound), Position: &pos})
}

// PlayMusic starts the background loop
func PlayMusic(w donburi.World) {
	queueSound(w, components.SoundRequest{ID: cfg.SoundMusic, Volume: 1, Loop: true, Key: MusicKey})
}

// StopMusic stops the background loop
func StopMusic(w donburi.World) {
	queueSound(w, components.SoundRequest{Key: MusicKey, Stop: true})
}

// PauseMusic and ResumeMusic bracket the pause overlay.
func PauseMusic(w donburi.World)  { StopMusic(w) }
func ResumeMusic(w donburi.World) { PlayMusic(w) }

// DrainSounds returns the queued requests and empties the queue.
func DrainSounds(w donburi.World) []components.SoundRequest {
	audioData := GetOrCreateAudio(w)
	if len(audioData.Pending) == 0 {
		return nil
	}
	pending := make([]components.SoundRequest, len(audioData.Pending))
	copy(pending, audioData.Pending)
	audioData.Pending = audioData.Pending[:0]
	return pending
}

func queueSound(w donburi.World, req components.SoundRequest) {
	audioData := GetOrCreateAudio(w)
	audioData.Pending = append(audioData.Pending, req)
}

func soundVolume(sound cfg.SoundID) float64 {
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		return mult
	}
	return 1
}
