package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPlayerShoot
	SoundEnemyShoot
	SoundHit
	SoundExplosion
	SoundShieldImpact
	SoundPlayerHurt
	// Progression sounds
	SoundPowerUp
	SoundWaveComplete
	SoundGameOver
	SoundVictory
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundMusic
)

var soundNames = map[SoundID]string{
	SoundPlayerShoot:  "player_shoot",
	SoundEnemyShoot:   "enemy_shoot",
	SoundHit:          "hit",
	SoundExplosion:    "explosion",
	SoundShieldImpact: "shield_impact",
	SoundPlayerHurt:   "player_hurt",
	SoundPowerUp:      "powerup",
	SoundWaveComplete: "wave_complete",
	SoundGameOver:     "game_over",
	SoundVictory:      "victory",
	SoundMenuNavigate: "menu_navigate",
	SoundMenuSelect:   "menu_select",
	SoundMusic:        "music",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "none"
}

// Waveform selects the oscillator used to synthesize a sound
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SynthConfig describes one procedurally generated sound
type SynthConfig struct {
	Wave      Waveform
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep over the duration
	Duration  float64 // seconds
	Attack    float64 // seconds
	Release   float64 // seconds
	Gain      float64 // 0..1
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MaxVoices       int     // concurrent SFX players before new ones are dropped
	Falloff         float64 // distance at which positional sounds are silent
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Synth             map[SoundID]SynthConfig
	MusicNotes        []float64 // Hz, one per beat, 0 = rest
	MusicBeat         float64   // seconds per note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
		MaxVoices:       24,
		Falloff:         120,
	}

	Sound = SoundConfig{
		Synth: map[SoundID]SynthConfig{
			SoundPlayerShoot:  {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.08, Attack: 0.002, Release: 0.05, Gain: 0.25},
			SoundEnemyShoot:   {Wave: WaveSaw, StartFreq: 330, EndFreq: 180, Duration: 0.12, Attack: 0.005, Release: 0.08, Gain: 0.3},
			SoundHit:          {Wave: WaveNoise, Duration: 0.06, Attack: 0.001, Release: 0.05, Gain: 0.35},
			SoundExplosion:    {Wave: WaveNoise, Duration: 0.5, Attack: 0.005, Release: 0.45, Gain: 0.6},
			SoundShieldImpact: {Wave: WaveSine, StartFreq: 1200, EndFreq: 900, Duration: 0.15, Attack: 0.002, Release: 0.12, Gain: 0.35},
			SoundPlayerHurt:   {Wave: WaveSquare, StartFreq: 200, EndFreq: 90, Duration: 0.2, Attack: 0.005, Release: 0.15, Gain: 0.4},
			SoundPowerUp:      {Wave: WaveSine, StartFreq: 440, EndFreq: 1320, Duration: 0.35, Attack: 0.01, Release: 0.15, Gain: 0.4},
			SoundWaveComplete: {Wave: WaveSquare, StartFreq: 523, EndFreq: 1046, Duration: 0.6, Attack: 0.02, Release: 0.3, Gain: 0.3},
			SoundGameOver:     {Wave: WaveSaw, StartFreq: 440, EndFreq: 55, Duration: 1.2, Attack: 0.02, Release: 0.6, Gain: 0.4},
			SoundVictory:      {Wave: WaveSquare, StartFreq: 660, EndFreq: 1320, Duration: 1.0, Attack: 0.02, Release: 0.5, Gain: 0.35},
			SoundMenuNavigate: {Wave: WaveSine, StartFreq: 660, EndFreq: 660, Duration: 0.05, Attack: 0.002, Release: 0.03, Gain: 0.2},
			SoundMenuSelect:   {Wave: WaveSine, StartFreq: 880, EndFreq: 1320, Duration: 0.1, Attack: 0.002, Release: 0.06, Gain: 0.25},
		},
		MusicNotes: []float64{
			110, 0, 110, 165, 0, 147, 0, 131,
			110, 0, 110, 196, 0, 165, 147, 0,
		},
		MusicBeat: 0.18,
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.3,
			SoundHit:       1.2,
		},
	}
}

// ParseSoundID maps a sound name back to its ID.
func ParseSoundID(name string) (SoundID, bool) {
	for id, n := range soundNames {
		if n == name {
			return id, true
		}
	}
	return SoundNone, false
}
