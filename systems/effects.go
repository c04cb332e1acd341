package systems

import (
	"github.com/automoto/lockstrike/components"
	"github.com/yohamta/donburi"
)

const particleDrag = 0.92

// UpdateEffects ages every visual effect and removes the ones that finished.
// It keeps running after the run ends so the last explosion can play out.
func UpdateEffects(w donburi.World) {
	var toRemove []*donburi.Entry
	dt := Delta(w)

	effectQuery.Each(w, func(e *donburi.Entry) {
		if !updateEffect(w, components.Effect.Get(e), dt) {
			toRemove = append(toRemove, e)
		}
	})

	destroyAll(w, toRemove)
}

// updateEffect advances one effect and reports whether it should continue.
func updateEffect(w donburi.World, effect *components.EffectData, dt float64) bool {
	effect.Age += dt

	switch effect.Kind {
	case components.EffectHit, components.EffectMuzzleFlash:
		return effect.Age < effect.Lifetime

	case components.EffectShieldImpact:
		followTarget(w, effect)
		return effect.Age < effect.Lifetime

	case components.EffectPowerUpCollect:
		// Rising ring
		effect.Position.Y += dt * 2
		return effect.Age < effect.Lifetime

	case components.EffectExplosion:
		drag := 1 - (1-particleDrag)*dt*60
		for i := range effect.Particles {
			p := &effect.Particles[i]
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			p.Velocity = p.Velocity.Scale(drag)
		}
		return effect.Age < effect.Lifetime

	case components.EffectShieldBubble:
		if !followTarget(w, effect) {
			return false
		}
		if effect.Pulse != nil {
			scale, _, finished := effect.Pulse.Update(float32(dt))
			if finished {
				effect.Pulse.Reset()
			}
			effect.Scale = float64(scale)
		}
		return true
	}

	return false
}

// followTarget snaps the effect onto its follow entity's hitbox. It returns
// false when the entity no longer exists.
func followTarget(w donburi.World, effect *components.EffectData) bool {
	if !w.Valid(effect.Follow) {
		return false
	}
	target := w.Entry(effect.Follow)
	pos := components.Transform.Get(target).Position
	if target.HasComponent(components.Player) {
		pos = pos.Add(components.Player.Get(target).HitboxOffset)
	}
	effect.Position = pos
	return true
}
