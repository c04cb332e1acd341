package factory

import (
	"math"

	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EffectParams tweaks a spawned effect. The zero value uses the kind defaults.
type EffectParams struct {
	Scale  float64
	Follow donburi.Entity
	Rand   components.Rand // explosion particle spread, even ring when nil
}

var effectLifetimes = map[components.EffectKind]*float64{
	components.EffectHit:            &cfg.Effect.HitLifetime,
	components.EffectExplosion:      &cfg.Effect.ExplosionLifetime,
	components.EffectShieldImpact:   &cfg.Effect.ImpactLifetime,
	components.EffectPowerUpCollect: &cfg.Effect.CollectLifetime,
	components.EffectMuzzleFlash:    &cfg.Effect.MuzzleLifetime,
}

// SpawnEffect creates a transient visual effect. Effects past the cap are dropped.
func SpawnEffect(w donburi.World, kind components.EffectKind, pos gamemath.Vec3, params EffectParams) *donburi.Entry {
	if EffectCount(w) >= cfg.Limits.MaxEffects {
		return nil
	}

	scale := params.Scale
	if scale == 0 {
		scale = 1
	}
	effect := components.EffectData{
		Kind:     kind,
		Position: pos,
		Scale:    scale,
		Follow:   params.Follow,
	}
	if lifetime, ok := effectLifetimes[kind]; ok {
		effect.Lifetime = *lifetime
	}

	switch kind {
	case components.EffectExplosion:
		effect.Particles = explosionParticles(pos, scale, params.Rand)
	case components.EffectShieldBubble:
		period := float32(cfg.Effect.ShieldPulsePeriod)
		effect.Pulse = gween.NewSequence(
			gween.New(1, 1.15, period, ease.InOutQuad),
			gween.New(1.15, 1, period, ease.InOutQuad),
		)
	}

	entry := archetypes.Effect.Spawn(w)
	components.Effect.SetValue(entry, effect)
	return entry
}

func explosionParticles(origin gamemath.Vec3, scale float64, rng components.Rand) []components.Particle {
	n := cfg.Effect.ExplosionParticles
	particles := make([]components.Particle, n)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := cfg.Effect.ParticleSpeed * scale
		rise := 0.5
		if rng != nil {
			angle += (rng.Float64() - 0.5) * 0.6
			speed *= 0.6 + rng.Float64()*0.8
			rise = rng.Float64()
		}
		particles[i] = components.Particle{
			Position: origin,
			Velocity: gamemath.Vec3{
				X: math.Cos(angle) * speed,
				Y: rise * speed,
				Z: math.Sin(angle) * speed,
			},
		}
	}
	return particles
}
