package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/lockstrike/assets/sfx"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sounds on first use and caches the PCM
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	music    []byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured sound effect ahead of time so the
// first play does not stall a frame.
func (l *AudioLoader) PreloadSFX() {
	for id := range cfg.Sound.Synth {
		_, _ = l.pcm(id)
	}
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	data, ok := sfx.RenderSound(id)
	if !ok {
		return nil, fmt.Errorf("no synth config for sound %s", id)
	}
	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadMusic returns a looping player for the background track.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	if l.music == nil {
		data, err := sfx.RenderMusic()
		if err != nil {
			return nil, fmt.Errorf("failed to render music: %w", err)
		}
		l.music = data
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(l.music), int64(len(l.music)))
	return l.context.NewPlayer(loop)
}
