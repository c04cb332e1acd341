package components

import (
	"github.com/automoto/lockstrike/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's root position in world space.
type TransformData struct {
	Position gamemath.Vec3
	Facing   float64 // yaw in radians, 0 faces +z
}

var Transform = donburi.NewComponentType[TransformData]()
