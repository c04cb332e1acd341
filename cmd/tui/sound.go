package main

import (
	"math"
	"sync"
	"time"

	"github.com/automoto/lockstrike/assets/sfx"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// terminalSound plays the synthesized effects straight through the speaker.
type terminalSound struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	loops  map[string]*beep.Ctrl
	seed   uint64
	volume float64
}

var _ game.SoundPlayer = (*terminalSound)(nil)

func newTerminalSound(volume float64) (*terminalSound, error) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	ts := &terminalSound{
		rate:   rate,
		mixer:  &beep.Mixer{},
		loops:  map[string]*beep.Ctrl{},
		volume: volume,
	}
	speaker.Play(ts.mixer)
	return ts, nil
}

func (ts *terminalSound) Play(name string, opts game.SoundOptions) {
	id, ok := cfg.ParseSoundID(name)
	if !ok {
		return
	}
	vol := opts.Volume * ts.volume
	if vol <= 0 {
		return
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if opts.Loop {
		if opts.Key == "" {
			return
		}
		if _, playing := ts.loops[opts.Key]; playing {
			return
		}
		rate, pass := ts.rate, ts.nextSeed()
		s := &repeat{next: func() beep.Streamer {
			pass++
			return build(id, rate, pass)
		}}
		ctrl := &beep.Ctrl{Streamer: volume(s, vol)}
		ts.loops[opts.Key] = ctrl
		speaker.Lock()
		ts.mixer.Add(ctrl)
		speaker.Unlock()
		return
	}

	s := build(id, ts.rate, ts.nextSeed())
	if s == nil {
		return
	}
	speaker.Lock()
	ts.mixer.Add(volume(s, vol))
	speaker.Unlock()
}

func (ts *terminalSound) Stop(key string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ctrl, ok := ts.loops[key]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(ts.loops, key)
}

func (ts *terminalSound) Close() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	speaker.Lock()
	ts.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

func (ts *terminalSound) nextSeed() uint64 {
	ts.seed++
	return ts.seed << 16
}

// build synthesizes one pass of a sound, nil for sounds without a recipe.
func build(id cfg.SoundID, rate beep.SampleRate, seed uint64) beep.Streamer {
	if id == cfg.SoundMusic {
		s, err := sfx.MusicStreamer(cfg.Sound.MusicNotes, cfg.Sound.MusicBeat, rate)
		if err != nil {
			return nil
		}
		return s
	}
	c, ok := cfg.Sound.Synth[id]
	if !ok {
		return nil
	}
	return sfx.Streamer(c, rate, seed)
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// repeat plays a freshly built streamer each time the previous one drains.
type repeat struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		fresh := false
		if r.cur == nil {
			if r.cur = r.next(); r.cur == nil {
				return n, n > 0
			}
			fresh = true
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			r.cur = nil
			if fresh && m == 0 {
				return n, n > 0
			}
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }
