package components

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/yohamta/donburi"
)

// SoundRequest is a queued call to the sound player.
type SoundRequest struct {
	ID       cfg.SoundID
	Volume   float64
	Position *gamemath.Vec3 // nil for non-positional sounds
	Loop     bool
	Key      string
	Stop     bool // stop the sound registered under Key
}

// AudioData stores sounds requested during the current step (singleton component)
type AudioData struct {
	Pending []SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
