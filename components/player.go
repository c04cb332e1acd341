package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	TargetX float64 // steering target, position.X eases toward it
	Steer   float64 // -1..1 from the host

	MoveSpeed        float64
	ProjectileDamage int
	LastShot         float64 // simulation seconds, negative until the first shot

	LockTarget donburi.Entity
	Active     map[config.PowerUpKind]*ActivePowerUp

	HitboxOffset gamemath.Vec3
	Hidden       bool // model hidden after death
	Dead         bool
}

var Player = donburi.NewComponentType[PlayerData]()
