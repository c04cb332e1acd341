package archetypes

import (
	"github.com/automoto/lockstrike/components"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Object,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Transform,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
		components.Random,
		components.Arena,
	)
	Wave = newArchetype(
		components.Wave,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
