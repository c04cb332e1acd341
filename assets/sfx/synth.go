// Package sfx synthesizes the game's sound effects and music loop as PCM.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// bytesPerFrame is 16-bit signed little endian stereo.
const bytesPerFrame = 4

// sweep is an oscillator whose frequency moves linearly from start to end.
type sweep struct {
	start, end float64
	phase      float64
	position   int
	total      int
	wave       cfg.Waveform
	rate       beep.SampleRate
	noise      *rand.Rand
}

func newSweep(c cfg.SynthConfig, rate beep.SampleRate, seed uint64) *sweep {
	return &sweep{
		start: c.StartFreq,
		end:   c.EndFreq,
		total: rate.N(seconds(c.Duration)),
		wave:  c.Wave,
		rate:  rate,
		noise: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case cfg.WaveSquare:
			val = -1
			if s.phase < 0.5 {
				val = 1
			}
		case cfg.WaveSaw:
			val = 2 * (s.phase - 0.5)
		case cfg.WaveNoise:
			val = s.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack samples and out over release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Streamer builds the streamer for one synthesized sound.
func Streamer(c cfg.SynthConfig, rate beep.SampleRate, seed uint64) beep.Streamer {
	osc := newSweep(c, rate, seed)
	shaped := &envelope{
		streamer: osc,
		attack:   rate.N(seconds(c.Attack)),
		release:  rate.N(seconds(c.Release)),
		total:    osc.total,
	}
	return gain(shaped, c.Gain)
}

// MusicStreamer builds one pass of the background loop: a sine note per beat,
// silence for zero entries.
func MusicStreamer(notes []float64, beat float64, rate beep.SampleRate) (beep.Streamer, error) {
	perBeat := rate.N(seconds(beat))
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		if freq <= 0 {
			parts = append(parts, beep.Silence(perBeat))
			continue
		}
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &envelope{
			streamer: beep.Take(perBeat, tone),
			attack:   perBeat / 20,
			release:  perBeat / 2,
			total:    perBeat,
		})
	}
	return gain(beep.Seq(parts...), 0.3), nil
}

// gain scales a stream linearly. effects.Volume works in powers of Base,
// so a linear gain g becomes log2(g).
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Render drains s into 16-bit little endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// RenderSound synthesizes one sound effect at the configured sample rate.
func RenderSound(id cfg.SoundID) ([]byte, bool) {
	c, ok := cfg.Sound.Synth[id]
	if !ok {
		return nil, false
	}
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	return Render(Streamer(c, rate, uint64(id)+1)), true
}

// RenderMusic synthesizes one pass of the background loop.
func RenderMusic() ([]byte, error) {
	s, err := MusicStreamer(cfg.Sound.MusicNotes, cfg.Sound.MusicBeat, beep.SampleRate(cfg.Audio.SampleRate))
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
