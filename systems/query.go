package systems

import (
	"github.com/automoto/lockstrike/systems/factory"
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

// snapshot collects the entries matching q so the caller can spawn and
// destroy entities while walking them.
func snapshot(w donburi.World, q *donburi.Query) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, q.Count(w))
	q.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

// destroyAll removes every collected entry once the scan that found them is done.
func destroyAll(w donburi.World, toRemove []*donburi.Entry) {
	for _, e := range toRemove {
		factory.Destroy(w, e)
	}
}
