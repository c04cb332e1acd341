package factory

import (
	"github.com/automoto/lockstrike/components"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	enemyQuery      = donburi.NewQuery(filter.Contains(tags.Enemy))
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))
	powerUpQuery    = donburi.NewQuery(filter.Contains(tags.PowerUp))
	effectQuery     = donburi.NewQuery(filter.Contains(tags.Effect))
)

func EnemyCount(w donburi.World) int      { return enemyQuery.Count(w) }
func ProjectileCount(w donburi.World) int { return projectileQuery.Count(w) }
func PowerUpCount(w donburi.World) int    { return powerUpQuery.Count(w) }
func EffectCount(w donburi.World) int     { return effectQuery.Count(w) }

// Destroy removes an entity together with its grid footprint.
// Stale entries are ignored.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// DestroyEntity is Destroy for a stored handle.
func DestroyEntity(w donburi.World, ent donburi.Entity) {
	if !w.Valid(ent) {
		return
	}
	Destroy(w, w.Entry(ent))
}

// DestroyAll clears every enemy, projectile, pick-up and effect.
func DestroyAll(w donburi.World) {
	var toRemove []*donburi.Entry
	for _, q := range []*donburi.Query{enemyQuery, projectileQuery, powerUpQuery, effectQuery} {
		q.Each(w, func(e *donburi.Entry) {
			toRemove = append(toRemove, e)
		})
	}
	for _, e := range toRemove {
		Destroy(w, e)
	}
}
