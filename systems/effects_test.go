package systems

import (
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
)

func TestUpdateEffects_Lifetime(t *testing.T) {
	w := newTestWorld(t)
	factory.SpawnEffect(w, components.EffectHit, gamemath.Vec3{Z: -5}, factory.EffectParams{})

	elapsed := AdvanceClock(w, cfg.Effect.HitLifetime/2)
	UpdateEffects(w)
	if n := factory.EffectCount(w); n != 1 {
		t.Fatalf("effects = %d, want 1 mid-lifetime", n)
	}

	// Steps are clamped, so run frames until the lifetime has passed.
	for elapsed <= cfg.Effect.HitLifetime {
		elapsed += AdvanceClock(w, cfg.Sim.MaxDelta)
		UpdateEffects(w)
	}
	if n := factory.EffectCount(w); n != 0 {
		t.Errorf("effects = %d, want 0 after lifetime", n)
	}
}

func TestUpdateEffects_ExplosionParticlesMove(t *testing.T) {
	w := newTestWorld(t)
	origin := gamemath.Vec3{X: 3, Z: -20}
	e := factory.SpawnEffect(w, components.EffectExplosion, origin, factory.EffectParams{})

	effect := components.Effect.Get(e)
	if len(effect.Particles) != cfg.Effect.ExplosionParticles {
		t.Fatalf("particles = %d, want %d", len(effect.Particles), cfg.Effect.ExplosionParticles)
	}

	AdvanceClock(w, 0.05)
	UpdateEffects(w)

	for i, p := range effect.Particles {
		if gamemath.Distance(p.Position, origin) == 0 {
			t.Errorf("particle %d did not move", i)
		}
	}
	if p := effect.Progress(); p <= 0 || p >= 1 {
		t.Errorf("progress = %f, want in (0, 1)", p)
	}
}

func TestUpdateEffects_ShieldBubble(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	ActivatePowerUp(w, cfg.PowerUpShield, 10)
	visual := components.Player.Get(player).Active[cfg.PowerUpShield].Visual
	if !w.Valid(visual) {
		t.Fatal("shield bubble not spawned")
	}

	// Outlives every timed effect and pulses in range.
	for range 30 {
		AdvanceClock(w, 0.1)
		UpdateEffects(w)

		bubble := components.Effect.Get(w.Entry(visual))
		if bubble.Scale < 1 || bubble.Scale > 1.15 {
			t.Fatalf("bubble scale = %f, want within [1, 1.15]", bubble.Scale)
		}
		if bubble.Position != playerHitbox(player) {
			t.Fatalf("bubble at %v, want on player hitbox %v", bubble.Position, playerHitbox(player))
		}
	}

	RevertPowerUp(w, cfg.PowerUpShield)
	if w.Valid(visual) {
		t.Error("shield bubble still present after the shield ended")
	}
}

func TestFactory_EffectCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < cfg.Limits.MaxEffects+10; i++ {
		factory.SpawnEffect(w, components.EffectHit, gamemath.Vec3{}, factory.EffectParams{})
	}
	if n := factory.EffectCount(w); n != cfg.Limits.MaxEffects {
		t.Errorf("effects = %d, want %d", n, cfg.Limits.MaxEffects)
	}
}
