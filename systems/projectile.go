package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles advances every projectile by its per-frame velocity and
// drops the ones that left the playable volume.
func UpdateProjectiles(w donburi.World) {
	var toRemove []*donburi.Entry

	projectileQuery.Each(w, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		transform := components.Transform.Get(e)

		transform.Position = transform.Position.Add(projectile.Velocity)

		if OutOfBounds(transform.Position) {
			toRemove = append(toRemove, e)
			return
		}
		factory.PlaceObject(components.Object.Get(e).Object, transform.Position)
	})

	// Remove projectiles that left the arena
	destroyAll(w, toRemove)
}

// OutOfBounds reports whether pos lies outside the projectile volume.
func OutOfBounds(pos gamemath.Vec3) bool {
	return pos.X < cfg.World.MinX || pos.X > cfg.World.MaxX ||
		pos.Z < cfg.World.MinZ || pos.Z > cfg.World.MaxZ
}
