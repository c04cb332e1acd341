package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Side     config.Side
	Velocity gamemath.Vec3 // units per frame
	Damage   int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
