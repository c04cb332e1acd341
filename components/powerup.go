package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PowerUpData is a world pick-up floating in the lane.
type PowerUpData struct {
	Kind  config.PowerUpKind
	BaseY float64
	Bob   *gween.Sequence // offset from BaseY, loops
	Spin  float64         // radians
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// ActivePowerUp is a timed buff currently applied to the player.
type ActivePowerUp struct {
	Kind      config.PowerUpKind
	Remaining float64        // seconds
	Visual    donburi.Entity // shield bubble, donburi.Null otherwise
}
