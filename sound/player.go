// Package sound plays the simulation's sound requests through ebiten audio.
package sound

import (
	"log"
	"sync"

	"github.com/automoto/lockstrike/assets"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/settings"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// audioContext returns the process-wide audio context, created once.
func audioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// Player implements game.SoundPlayer. Failures are logged and otherwise
// ignored.
type Player struct {
	loader   *assets.AudioLoader
	loops    map[string]loop
	voices   []*audio.Player
	listener gamemath.Vec3
	settings settings.Settings
}

type loop struct {
	player *audio.Player
	base   float64
}

var _ game.SoundPlayer = (*Player)(nil)

// NewPlayer creates a sound player using the given volume settings.
func NewPlayer(s settings.Settings) *Player {
	loader := assets.NewAudioLoader(audioContext())
	loader.PreloadSFX()
	return &Player{
		loader:   loader,
		loops:    make(map[string]loop),
		settings: s,
	}
}

// SetListener moves the point positional sounds are heard from.
func (p *Player) SetListener(pos gamemath.Vec3) {
	p.listener = pos
}

// ApplySettings updates volumes, including loops already playing.
func (p *Player) ApplySettings(s settings.Settings) {
	p.settings = s
	for _, l := range p.loops {
		l.player.SetVolume(l.base * s.EffectiveMusic())
	}
}

func (p *Player) Play(name string, opts game.SoundOptions) {
	id, ok := cfg.ParseSoundID(name)
	if !ok {
		log.Printf("Warning: unknown sound %q", name)
		return
	}

	if opts.Loop {
		p.playLoop(id, opts)
		return
	}

	volume := Volume(opts.Volume*p.settings.EffectiveSFX(), opts.Position, p.listener)
	if volume <= 0 {
		return
	}

	p.pruneVoices()
	if len(p.voices) >= cfg.Audio.MaxVoices {
		return
	}

	player, err := p.loader.LoadSFX(id)
	if err != nil {
		log.Printf("Warning: Could not play %s: %v", name, err)
		return
	}
	player.SetVolume(volume)
	player.Play()
	p.voices = append(p.voices, player)
}

func (p *Player) playLoop(id cfg.SoundID, opts game.SoundOptions) {
	key := opts.Key
	if key == "" {
		key = id.String()
	}
	// Already playing this loop
	if l, ok := p.loops[key]; ok && l.player.IsPlaying() {
		return
	}
	p.Stop(key)

	player, err := p.loader.LoadMusic()
	if err != nil {
		log.Printf("Warning: Could not start %s: %v", id, err)
		return
	}
	player.SetVolume(opts.Volume * p.settings.EffectiveMusic())
	player.Play()
	p.loops[key] = loop{player: player, base: opts.Volume}
}

func (p *Player) Stop(key string) {
	l, ok := p.loops[key]
	if !ok {
		return
	}
	if err := l.player.Close(); err != nil {
		log.Printf("Warning: Could not stop %s: %v", key, err)
	}
	delete(p.loops, key)
}

// StopAll silences every loop and voice.
func (p *Player) StopAll() {
	for key := range p.loops {
		p.Stop(key)
	}
	for _, v := range p.voices {
		_ = v.Close()
	}
	p.voices = p.voices[:0]
}

func (p *Player) pruneVoices() {
	active := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			active = append(active, v)
			continue
		}
		_ = v.Close()
	}
	p.voices = active
}

// Volume attenuates base linearly with the distance between pos and the
// listener, reaching silence at Audio.Falloff. A nil pos is not attenuated.
func Volume(base float64, pos *gamemath.Vec3, listener gamemath.Vec3) float64 {
	if base <= 0 {
		return 0
	}
	if pos == nil {
		return base
	}
	d := gamemath.Distance(*pos, listener)
	return base * gamemath.Clamp(1-d/cfg.Audio.Falloff, 0, 1)
}
