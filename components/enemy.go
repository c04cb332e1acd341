package components

import (
	"github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ID         uuid.UUID
	Kind       config.EnemyKind
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	Speed        float64 // units per frame
	Damage       int
	FireRate     float64 // seconds, 0 = never fires
	LastFireTime float64 // simulation seconds
	ScoreValue   int

	HitboxOffset gamemath.Vec3

	// Cannon mounts relative to the root, cycled per shot.
	Mounts     []gamemath.Vec3
	NextCannon int
}

var Enemy = donburi.NewComponentType[EnemyData]()
