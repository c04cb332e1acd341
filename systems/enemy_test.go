package systems

import (
	"math"
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

func TestUpdateEnemies_RunnerContact(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -1.5})

	UpdateEnemies(w)

	want := cfg.Player.Health - cfg.Enemy.Types[cfg.EnemyRunner].Damage
	if hp := components.Health.Get(player).Current; hp != want {
		t.Errorf("player health = %d, want %d", hp, want)
	}
	if n := factory.EnemyCount(w); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
	if kills := GetOrCreateWave(w).Kills; kills != 0 {
		t.Errorf("kills = %d, want 0", kills)
	}
	if score := GetOrCreateGame(w).Score; score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestUpdateEnemies_RunnerApproaches(t *testing.T) {
	w := newTestWorld(t)
	runner := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -30})

	UpdateEnemies(w)

	transform := components.Transform.Get(runner)
	want := -30 + cfg.Enemy.Types[cfg.EnemyRunner].Speed
	if math.Abs(transform.Position.Z-want) > 1e-9 {
		t.Errorf("runner z = %f, want %f", transform.Position.Z, want)
	}
	if math.Abs(transform.Facing) > 1e-9 {
		t.Errorf("runner facing = %f, want 0 (toward +z)", transform.Facing)
	}
}

func TestUpdateEnemies_ShooterBand(t *testing.T) {
	speed := cfg.Enemy.Types[cfg.EnemyShooter].Speed
	tests := []struct {
		name      string
		startZ    float64
		wantZ     float64
		wantShots int
	}{
		{"advances when far", -20, -20 + speed, 0},
		{"retreats at half speed when close", -5, -5 - speed*0.5, 0},
		{"holds and fires inside the band", -12, -12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			shooter := SpawnEnemy(w, cfg.EnemyShooter, gamemath.Vec3{Z: tt.startZ})
			GetOrCreateGame(w).Time = cfg.Enemy.Types[cfg.EnemyShooter].FireRate + 0.5

			UpdateEnemies(w)

			if z := components.Transform.Get(shooter).Position.Z; math.Abs(z-tt.wantZ) > 1e-9 {
				t.Errorf("z = %f, want %f", z, tt.wantZ)
			}
			if n := factory.ProjectileCount(w); n != tt.wantShots {
				t.Errorf("projectiles = %d, want %d", n, tt.wantShots)
			}
		})
	}
}

func TestUpdateEnemies_ShooterFireRate(t *testing.T) {
	w := newTestWorld(t)
	shooter := SpawnEnemy(w, cfg.EnemyShooter, gamemath.Vec3{Z: -12})
	game := GetOrCreateGame(w)

	// Spawned at t=0, the cooldown has not elapsed yet.
	game.Time = 1
	UpdateEnemies(w)
	if n := factory.ProjectileCount(w); n != 0 {
		t.Fatalf("projectiles = %d, want 0 before the fire rate elapsed", n)
	}

	game.Time = 2.5
	UpdateEnemies(w)
	UpdateEnemies(w)
	if n := factory.ProjectileCount(w); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}
	if last := components.Enemy.Get(shooter).LastFireTime; last != 2.5 {
		t.Errorf("last fire time = %f, want 2.5", last)
	}

	p, _ := components.Projectile.First(w)
	projectile := components.Projectile.Get(p)
	if projectile.Side != cfg.SideEnemy {
		t.Errorf("side = %v, want enemy", projectile.Side)
	}
	if projectile.Velocity.Z <= 0 {
		t.Errorf("velocity %+v should head toward the player", projectile.Velocity)
	}
}

func TestUpdateEnemies_TankAlternatesCannons(t *testing.T) {
	w := newTestWorld(t)
	tank := SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{Z: -15})
	game := GetOrCreateGame(w)

	game.Time = 10
	UpdateEnemies(w)
	if next := components.Enemy.Get(tank).NextCannon; next != 1 {
		t.Errorf("next cannon = %d, want 1", next)
	}

	game.Time = 20
	UpdateEnemies(w)
	if next := components.Enemy.Get(tank).NextCannon; next != 0 {
		t.Errorf("next cannon = %d, want 0", next)
	}

	var xs []float64
	components.Projectile.Each(w, func(e *donburi.Entry) {
		xs = append(xs, components.Transform.Get(e).Position.X)
	})
	if len(xs) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(xs))
	}
	if math.Abs(xs[0]+xs[1]) > 1e-6 || math.Abs(xs[0]) < 1 {
		t.Errorf("muzzle x positions = %v, want one from each side", xs)
	}
}

func TestUpdateEnemies_TankStopsOnThePlayer(t *testing.T) {
	w := newTestWorld(t)
	target := components.Transform.Get(mustPlayer(t, w)).Position
	speed := cfg.Enemy.Types[cfg.EnemyTank].Speed
	tank := SpawnEnemy(w, cfg.EnemyTank, target.Add(gamemath.Vec3{Z: -speed / 2}))

	UpdateEnemies(w)

	if pos := components.Transform.Get(tank).Position; gamemath.Distance(pos, target) > 1e-9 {
		t.Errorf("tank at %+v, want it stopped on %+v", pos, target)
	}
}

func TestUpdateEnemies_EscapeIsNotAKill(t *testing.T) {
	w := newTestWorld(t)
	SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{X: 5, Z: 25})

	UpdateEnemies(w)

	if n := factory.EnemyCount(w); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
	if kills := GetOrCreateWave(w).Kills; kills != 0 {
		t.Errorf("kills = %d, want 0", kills)
	}
}

func TestUpdateAutoAim(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)
	p := components.Player.Get(player)

	near := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -10})
	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -20})
	// Closer than near but outside the 45 degree cone.
	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{X: 6, Z: -3})

	UpdateAutoAim(w)

	if p.LockTarget != near.Entity() {
		t.Errorf("lock target = %v, want %v", p.LockTarget, near.Entity())
	}
	if n := factory.ProjectileCount(w); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}

	// Cooldown blocks the next shot.
	UpdateAutoAim(w)
	if n := factory.ProjectileCount(w); n != 1 {
		t.Errorf("projectiles = %d, want 1 during cooldown", n)
	}

	for range 4 {
		AdvanceClock(w, 0.1)
	}
	UpdateAutoAim(w)
	if n := factory.ProjectileCount(w); n != 2 {
		t.Errorf("projectiles = %d, want 2 after cooldown", n)
	}
}

func TestUpdateAutoAim_NoTargetNoFire(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{X: 6, Z: -3})
	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: 5})

	UpdateAutoAim(w)

	if target := components.Player.Get(player).LockTarget; w.Valid(target) {
		t.Errorf("lock target = %v, want none", target)
	}
	if n := factory.ProjectileCount(w); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
}

func TestUpdatePlayer_Steering(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	SetSteer(w, 5)
	UpdatePlayer(w)

	p := components.Player.Get(player)
	if p.Steer != 1 {
		t.Errorf("steer = %f, want clamped to 1", p.Steer)
	}
	if math.Abs(p.TargetX-cfg.Player.BaseMoveSpeed) > 1e-9 {
		t.Errorf("target x = %f, want %f", p.TargetX, cfg.Player.BaseMoveSpeed)
	}
	want := cfg.Player.BaseMoveSpeed * cfg.Player.Smoothing
	if x := components.Transform.Get(player).Position.X; math.Abs(x-want) > 1e-9 {
		t.Errorf("x = %f, want %f", x, want)
	}
}

func TestUpdateProjectiles_Bounds(t *testing.T) {
	w := newTestWorld(t)

	factory.CreateProjectile(w, cfg.SidePlayer, gamemath.Vec3{Z: -99.5}, gamemath.Vec3{Z: -1}, 10)
	factory.CreateProjectile(w, cfg.SideEnemy, gamemath.Vec3{X: 49.9}, gamemath.Vec3{X: 0.5}, 10)
	keep := factory.CreateProjectile(w, cfg.SidePlayer, gamemath.Vec3{Z: -10}, gamemath.Vec3{Z: -1}, 10)

	UpdateProjectiles(w)

	if n := factory.ProjectileCount(w); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}
	if z := components.Transform.Get(keep).Position.Z; z != -11 {
		t.Errorf("z = %f, want -11", z)
	}
}

func TestFactory_EnemyCap(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < cfg.Limits.MaxEnemies+5; i++ {
		SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{X: float64(i%20) - 10, Z: -50})
	}

	if n := factory.EnemyCount(w); n != cfg.Limits.MaxEnemies {
		t.Errorf("enemies = %d, want %d", n, cfg.Limits.MaxEnemies)
	}
	if e := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -50}); e != nil {
		t.Error("spawn past the cap should be skipped")
	}
}

func TestUpdateSpawner(t *testing.T) {
	w := newTestWorld(t)
	wave := GetOrCreateWave(w)
	wave.SpawnTimer = 0.01

	AdvanceClock(w, 0.05)
	UpdateSpawner(w)

	if n := factory.EnemyCount(w); n != 1 {
		t.Fatalf("enemies = %d, want 1", n)
	}
	e, _ := components.Enemy.First(w)
	if kind := components.Enemy.Get(e).Kind; kind != cfg.EnemyRunner {
		t.Errorf("kind = %v, want runner on wave 1", kind)
	}
	if wave.SpawnTimer <= 0 {
		t.Errorf("spawn timer = %f, want rearmed", wave.SpawnTimer)
	}

	// No spawning during the wave complete window.
	wave.Complete = true
	wave.SpawnTimer = 0
	UpdateSpawner(w)
	if n := factory.EnemyCount(w); n != 1 {
		t.Errorf("enemies = %d, want 1 while the wave is complete", n)
	}
}

func TestSpawnInterval(t *testing.T) {
	if got, want := SpawnInterval(1), cfg.Wave.BaseSpawnInterval-cfg.Wave.SpawnIntervalStep; math.Abs(got-want) > 1e-9 {
		t.Errorf("SpawnInterval(1) = %f, want %f", got, want)
	}
	if got := SpawnInterval(100); got != cfg.Wave.MinSpawnInterval {
		t.Errorf("SpawnInterval(100) = %f, want %f", got, cfg.Wave.MinSpawnInterval)
	}
}
