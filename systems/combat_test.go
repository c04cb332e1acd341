package systems

import (
	"math"
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestUpdateCombat_PlayerProjectileKillsEnemy(t *testing.T) {
	w := newTestWorld(t)
	SetRand(w, stubRand{float: 0.1, intn: int(cfg.PowerUpShield)})

	enemy := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -30})
	components.Health.SetValue(enemy, components.HealthData{Current: 10, Max: 10})
	enemyData := components.Enemy.Get(enemy)
	scoreValue := enemyData.ScoreValue
	hitbox := gamemath.Vec3{Z: -30}.Add(enemyData.HitboxOffset)

	factory.CreateProjectile(w, cfg.SidePlayer, hitbox.Add(gamemath.Vec3{X: 0.9}), gamemath.Vec3{Z: -1.5}, 10)

	UpdateCombat(w)

	if n := factory.EnemyCount(w); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
	if n := factory.ProjectileCount(w); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
	if score := GetOrCreateGame(w).Score; score != scoreValue {
		t.Errorf("score = %d, want %d", score, scoreValue)
	}
	wave := GetOrCreateWave(w)
	if wave.Kills != 1 {
		t.Errorf("kills = %d, want 1", wave.Kills)
	}
	if want := 1.0 / 15.0; math.Abs(wave.Progress-want) > 1e-9 {
		t.Errorf("progress = %f, want %f", wave.Progress, want)
	}
	if n := factory.PowerUpCount(w); n != 1 {
		t.Fatalf("power-ups = %d, want 1 after a successful drop roll", n)
	}
	pu, _ := components.PowerUp.First(w)
	if kind := components.PowerUp.Get(pu).Kind; kind != cfg.PowerUpShield {
		t.Errorf("dropped kind = %v, want shield", kind)
	}
}

func TestUpdateCombat_FailedDropRoll(t *testing.T) {
	w := newTestWorld(t)

	enemy := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -30})
	components.Health.SetValue(enemy, components.HealthData{Current: 10, Max: 10})
	hitbox := gamemath.Vec3{Z: -30}.Add(components.Enemy.Get(enemy).HitboxOffset)
	factory.CreateProjectile(w, cfg.SidePlayer, hitbox, gamemath.Vec3{Z: -1.5}, 10)

	UpdateCombat(w)

	if n := factory.PowerUpCount(w); n != 0 {
		t.Errorf("power-ups = %d, want 0", n)
	}
}

func TestUpdateCombat_HitWithoutKill(t *testing.T) {
	w := newTestWorld(t)

	enemy := SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{Z: -40})
	hitbox := gamemath.Vec3{Z: -40}.Add(components.Enemy.Get(enemy).HitboxOffset)
	factory.CreateProjectile(w, cfg.SidePlayer, hitbox, gamemath.Vec3{Z: -1.5}, 10)
	// A second projectile outside the hit radius must survive.
	factory.CreateProjectile(w, cfg.SidePlayer, hitbox.Add(gamemath.Vec3{X: 3}), gamemath.Vec3{Z: -1.5}, 10)

	UpdateCombat(w)

	health := components.Health.Get(enemy)
	if want := cfg.Enemy.Types[cfg.EnemyTank].Health - 10; health.Current != want {
		t.Errorf("enemy health = %d, want %d", health.Current, want)
	}
	if n := factory.ProjectileCount(w); n != 1 {
		t.Errorf("projectiles = %d, want 1", n)
	}
	if score := GetOrCreateGame(w).Score; score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestUpdateCombat_HitsAnywhereOnTheGrid(t *testing.T) {
	offsets := []gamemath.Vec3{{}, {X: 0.9}, {X: -0.9}, {Z: 0.9}, {Z: -0.9}}

	var positions []gamemath.Vec3
	for i := 0; i <= 240; i++ {
		positions = append(positions, gamemath.Vec3{X: -12 + float64(i)*0.1, Z: -30})
	}
	for i := 0; i <= 200; i++ {
		positions = append(positions, gamemath.Vec3{X: 2.3, Z: -70 + float64(i)*0.3})
	}

	misses := 0
	for _, pos := range positions {
		for _, off := range offsets {
			w := newTestWorld(t)
			enemy := SpawnEnemy(w, cfg.EnemyTank, pos)
			hitbox := pos.Add(components.Enemy.Get(enemy).HitboxOffset)
			factory.CreateProjectile(w, cfg.SidePlayer, hitbox.Add(off), gamemath.Vec3{Z: -1.5}, 10)

			UpdateCombat(w)

			if h := components.Health.Get(enemy); h.Current == h.Max {
				misses++
				if misses <= 5 {
					t.Errorf("projectile at %+v missed enemy at %+v", off, pos)
				}
			}
		}
	}
	if misses > 0 {
		t.Errorf("missed hits = %d of %d", misses, len(positions)*len(offsets))
	}
}

func TestUpdateCombat_OneEnemyPerProjectile(t *testing.T) {
	w := newTestWorld(t)

	a := SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{X: -0.3, Z: -40})
	b := SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{X: 0.3, Z: -40})
	hitbox := gamemath.Vec3{Z: -40}.Add(cfg.Enemy.Types[cfg.EnemyTank].HitboxOffset)
	factory.CreateProjectile(w, cfg.SidePlayer, hitbox, gamemath.Vec3{Z: -1.5}, 10)

	UpdateCombat(w)

	damaged := 0
	for _, e := range []*donburi.Entry{a, b} {
		h := components.Health.Get(e)
		if h.Current < h.Max {
			damaged++
		}
	}
	if damaged != 1 {
		t.Errorf("damaged enemies = %d, want 1", damaged)
	}
}

func TestUpdateCombat_EnemyProjectileHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	pos := playerHitbox(player).Add(gamemath.Vec3{Z: -0.5})
	factory.CreateProjectile(w, cfg.SideEnemy, pos, gamemath.Vec3{Z: 0.5}, 20)

	UpdateCombat(w)

	if hp := components.Health.Get(player).Current; hp != 80 {
		t.Errorf("player health = %d, want 80", hp)
	}
	if n := factory.ProjectileCount(w); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
	if len(components.Player.Get(player).Active) != 0 {
		t.Error("hit without a shield must not create power-up state")
	}
}

func TestUpdateCombat_NoScoreAfterPlayerDies(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)
	components.Health.Get(player).Current = 10

	var final *RunEndEvent
	GameOver.Subscribe(w, func(_ donburi.World, ev RunEndEvent) {
		final = &ev
	})

	// The enemy shot is created first, so it resolves first
	factory.CreateProjectile(w, cfg.SideEnemy, playerHitbox(player), gamemath.Vec3{Z: 0.5}, 20)
	enemy := SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -30})
	components.Health.SetValue(enemy, components.HealthData{Current: 10, Max: 10})
	hitbox := gamemath.Vec3{Z: -30}.Add(components.Enemy.Get(enemy).HitboxOffset)
	factory.CreateProjectile(w, cfg.SidePlayer, hitbox, gamemath.Vec3{Z: -1.5}, 10)

	UpdateCombat(w)
	events.ProcessAllEvents(w)

	if final == nil {
		t.Fatal("game over not published")
	}
	game := GetOrCreateGame(w)
	if game.Score != 0 || final.Score != game.Score {
		t.Errorf("score = %d, reported %d, want both 0", game.Score, final.Score)
	}
	if kills := GetOrCreateWave(w).Kills; kills != 0 {
		t.Errorf("kills = %d, want 0", kills)
	}
	if h := components.Health.Get(enemy); h.Current != h.Max {
		t.Errorf("enemy health = %d, want untouched", h.Current)
	}
}

func TestTakeDamage_ShieldAbsorbs(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)
	p := components.Player.Get(player)

	ActivatePowerUp(w, cfg.PowerUpShield, 10)
	bubble := p.Active[cfg.PowerUpShield].Visual
	if !w.Valid(bubble) {
		t.Fatal("shield bubble was not spawned")
	}

	TakeDamage(w, 3)
	shield, ok := p.Active[cfg.PowerUpShield]
	if !ok {
		t.Fatal("shield removed too early")
	}
	if shield.Remaining != 4 {
		t.Errorf("shield remaining = %f, want 4", shield.Remaining)
	}
	if hp := components.Health.Get(player).Current; hp != 100 {
		t.Errorf("health = %d, want 100", hp)
	}

	TakeDamage(w, 2)
	if _, ok := p.Active[cfg.PowerUpShield]; ok {
		t.Error("shield should be removed once its duration is spent")
	}
	if w.Valid(bubble) {
		t.Error("shield bubble should be destroyed with the shield")
	}
	if hp := components.Health.Get(player).Current; hp != 100 {
		t.Errorf("health = %d, want 100", hp)
	}

	TakeDamage(w, 5)
	if hp := components.Health.Get(player).Current; hp != 95 {
		t.Errorf("health = %d, want 95", hp)
	}
}

func TestTakeDamage_IdempotentAfterDeath(t *testing.T) {
	w := newTestWorld(t)
	player := mustPlayer(t, w)

	gameOvers := 0
	GameOver.Subscribe(w, func(_ donburi.World, _ RunEndEvent) {
		gameOvers++
	})

	TakeDamage(w, 150)

	p := components.Player.Get(player)
	if !p.Dead || !p.Hidden {
		t.Fatalf("player dead=%v hidden=%v, want both true", p.Dead, p.Hidden)
	}
	if phase := GetOrCreateGame(w).Phase; phase != cfg.PhaseGameOver {
		t.Errorf("phase = %v, want gameover", phase)
	}
	if hp := components.Health.Get(player).Current; hp != 0 {
		t.Errorf("health = %d, want 0", hp)
	}
	effectsAfterDeath := factory.EffectCount(w)

	TakeDamage(w, 10)
	triggerGameOver(w, player, gamemath.Vec3{})
	events.ProcessAllEvents(w)

	if hp := components.Health.Get(player).Current; hp != 0 {
		t.Errorf("health = %d after repeated damage, want 0", hp)
	}
	if n := factory.EffectCount(w); n != effectsAfterDeath {
		t.Errorf("effects = %d, want %d", n, effectsAfterDeath)
	}
	if gameOvers != 1 {
		t.Errorf("game over published %d times, want 1", gameOvers)
	}
}
