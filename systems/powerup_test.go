package systems

import (
	"math"
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
)

func TestActivatePowerUp_AppliesAndExtends(t *testing.T) {
	w := newTestWorld(t)
	p := components.Player.Get(mustPlayer(t, w))

	ActivatePowerUp(w, cfg.PowerUpDamage, 10)
	ActivatePowerUp(w, cfg.PowerUpSpeed, 10)

	if p.ProjectileDamage != 20 {
		t.Errorf("damage = %d, want 20", p.ProjectileDamage)
	}
	if math.Abs(p.MoveSpeed-0.45) > 1e-9 {
		t.Errorf("move speed = %f, want 0.45", p.MoveSpeed)
	}

	// Re-pickup extends instead of stacking.
	ActivatePowerUp(w, cfg.PowerUpDamage, 5)
	if p.ProjectileDamage != 20 {
		t.Errorf("damage = %d after re-pickup, want 20", p.ProjectileDamage)
	}
	if got := p.Active[cfg.PowerUpDamage].Remaining; got != 15 {
		t.Errorf("remaining = %f, want 15", got)
	}
	if len(p.Active) != 2 {
		t.Errorf("active power-ups = %d, want 2", len(p.Active))
	}
}

func TestActivatePowerUp_HealthIsInstant(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)
	health := components.Health.Get(player)
	health.Current = 50

	ActivatePowerUp(w, cfg.PowerUpHealth, 0)
	if want := 50 + cfg.PowerUp.Types[cfg.PowerUpHealth].Heal; health.Current != want {
		t.Errorf("health = %d, want %d", health.Current, want)
	}

	health.Current = health.Max - 1
	ActivatePowerUp(w, cfg.PowerUpHealth, 0)
	if health.Current != health.Max {
		t.Errorf("health = %d, want capped at %d", health.Current, health.Max)
	}
	if len(components.Player.Get(player).Active) != 0 {
		t.Error("health pick-ups must not be tracked as active")
	}
}

func TestUpdatePowerUps_ExpiryRevertsToBaseline(t *testing.T) {
	w := newTestWorld(t)
	p := components.Player.Get(mustPlayer(t, w))

	ActivatePowerUp(w, cfg.PowerUpDamage, 10)
	ActivatePowerUp(w, cfg.PowerUpSpeed, 10)
	damage := p.Active[cfg.PowerUpDamage]

	for range 101 {
		AdvanceClock(w, 0.1)
		UpdatePowerUps(w)
	}

	if len(p.Active) != 0 {
		t.Fatalf("active power-ups = %d, want 0", len(p.Active))
	}
	if damage.Remaining < 0 {
		t.Errorf("remaining = %f, must not go negative", damage.Remaining)
	}
	if p.ProjectileDamage != 10 {
		t.Errorf("damage = %d, want 10", p.ProjectileDamage)
	}
	if p.MoveSpeed != 0.3 {
		t.Errorf("move speed = %f, want 0.3", p.MoveSpeed)
	}

	// Reverting again changes nothing.
	RevertPowerUp(w, cfg.PowerUpDamage)
	RevertPowerUp(w, cfg.PowerUpSpeed)
	if p.ProjectileDamage != 10 || p.MoveSpeed != 0.3 {
		t.Errorf("double revert changed stats: damage=%d speed=%f", p.ProjectileDamage, p.MoveSpeed)
	}
}

func TestUpdatePowerUps_Pickup(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	factory.CreatePowerUp(w, cfg.PowerUpShield, playerHitbox(player))

	AdvanceClock(w, 1.0/60)
	UpdatePowerUps(w)

	if n := factory.PowerUpCount(w); n != 0 {
		t.Errorf("power-ups = %d, want 0 after pickup", n)
	}
	shield, ok := components.Player.Get(player).Active[cfg.PowerUpShield]
	if !ok {
		t.Fatal("shield not activated")
	}
	if shield.Remaining != cfg.PowerUp.Types[cfg.PowerUpShield].Duration {
		t.Errorf("remaining = %f, want %f", shield.Remaining, cfg.PowerUp.Types[cfg.PowerUpShield].Duration)
	}
}

func TestUpdatePowerUps_BobAndEscape(t *testing.T) {
	w := newTestWorld(t)

	floating := factory.CreatePowerUp(w, cfg.PowerUpSpeed, gamemath.Vec3{X: 10, Z: -40})
	factory.CreatePowerUp(w, cfg.PowerUpDamage, gamemath.Vec3{X: 10, Z: 14.95})

	AdvanceClock(w, 0.1)
	UpdatePowerUps(w)

	if n := factory.PowerUpCount(w); n != 1 {
		t.Fatalf("power-ups = %d, want 1", n)
	}
	transform := components.Transform.Get(floating)
	if transform.Position.Y <= cfg.PowerUp.FloatHeight {
		t.Errorf("y = %f, want bobbing above %f", transform.Position.Y, cfg.PowerUp.FloatHeight)
	}
	if want := -40 + cfg.World.ScrollSpeed*0.1; math.Abs(transform.Position.Z-want) > 1e-9 {
		t.Errorf("z = %f, want %f", transform.Position.Z, want)
	}
	if spin := components.PowerUp.Get(floating).Spin; spin <= 0 {
		t.Errorf("spin = %f, want > 0", spin)
	}
}

func TestFactory_PowerUpCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < cfg.Limits.MaxPowerUps+3; i++ {
		factory.CreatePowerUp(w, cfg.PowerUpHealth, gamemath.Vec3{X: 20, Z: -50})
	}
	if n := factory.PowerUpCount(w); n != cfg.Limits.MaxPowerUps {
		t.Errorf("power-ups = %d, want %d", n, cfg.Limits.MaxPowerUps)
	}
}
