package factory

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a projectile moving by velocity every frame.
// It returns nil when the projectile cap is reached.
func CreateProjectile(w donburi.World, side cfg.Side, pos, velocity gamemath.Vec3, damage int) *donburi.Entry {
	if ProjectileCount(w) >= cfg.Limits.MaxProjectiles {
		return nil
	}

	projectile := archetypes.Projectile.Spawn(w)

	resolvTag := tags.ResolvPlayerProjectile
	if side == cfg.SideEnemy {
		resolvTag = tags.ResolvEnemyProjectile
	}
	obj := newGridObject(w, pos, FootprintHalfSize(cfg.Combat.HitRadius), resolvTag)
	obj.Data = projectile.Entity()
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	facing, _ := gamemath.FacingAngle(velocity)
	components.Transform.SetValue(projectile, components.TransformData{
		Position: pos,
		Facing:   facing,
	})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Side:     side,
		Velocity: velocity,
		Damage:   damage,
	})

	return projectile
}
