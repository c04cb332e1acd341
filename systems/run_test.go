package systems

import (
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestResetRun_ClearsState(t *testing.T) {
	w := newTestWorld(t)
	firstRun := GetOrCreateGame(w).RunID

	SpawnEnemy(w, cfg.EnemyRunner, gamemath.Vec3{Z: -30})
	factory.CreateProjectile(w, cfg.SidePlayer, gamemath.Vec3{Z: -5}, gamemath.Vec3{Z: -1}, 10)
	factory.CreatePowerUp(w, cfg.PowerUpSpeed, gamemath.Vec3{X: 10, Z: -10})
	factory.SpawnEffect(w, components.EffectHit, gamemath.Vec3{}, factory.EffectParams{})
	ActivatePowerUp(w, cfg.PowerUpSpeed, 10)
	AddScore(w, 500)
	TakeDamage(w, 40)
	for range cfg.KillQuota(1) {
		RecordKill(w)
	}

	runID := ResetRun(w)

	if runID == firstRun {
		t.Error("run ID was not regenerated")
	}
	if n := factory.EnemyCount(w) + factory.ProjectileCount(w) + factory.PowerUpCount(w) + factory.EffectCount(w); n != 0 {
		t.Errorf("%d entities left after reset", n)
	}

	game := GetOrCreateGame(w)
	if game.Score != 0 || game.Phase != cfg.PhasePlaying {
		t.Errorf("score=%d phase=%v, want 0 and playing", game.Score, game.Phase)
	}
	wave := GetOrCreateWave(w)
	if wave.Number != 1 || wave.Kills != 0 || wave.Complete {
		t.Errorf("wave state not reset: %+v", *wave)
	}

	player := mustPlayer(t, w)
	if h := components.Health.Get(player); h.Current != cfg.Player.Health {
		t.Errorf("health = %d, want %d", h.Current, cfg.Player.Health)
	}
	p := components.Player.Get(player)
	if len(p.Active) != 0 || p.MoveSpeed != cfg.Player.BaseMoveSpeed {
		t.Errorf("player buffs not cleared: active=%d speed=%f", len(p.Active), p.MoveSpeed)
	}
	if playerCount := donburi.NewQuery(filter.Contains(tags.Player)).Count(w); playerCount != 1 {
		t.Errorf("players = %d, want 1", playerCount)
	}
}

func TestResetRun_AfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	TakeDamage(w, cfg.Player.Health)
	if GetOrCreateGame(w).Phase != cfg.PhaseGameOver {
		t.Fatal("expected game over")
	}

	ResetRun(w)

	p := components.Player.Get(mustPlayer(t, w))
	if p.Dead || p.Hidden {
		t.Error("player still dead after restart")
	}
	if !IsPlaying(w) {
		t.Error("run not playing after restart")
	}
}

func TestEndRun(t *testing.T) {
	w := newTestWorld(t)
	SpawnEnemy(w, cfg.EnemyTank, gamemath.Vec3{Z: -40})

	EndRun(w)

	if GetOrCreateGame(w).Phase != cfg.PhaseMenu {
		t.Error("phase not menu")
	}
	if factory.EnemyCount(w) != 0 {
		t.Error("enemies left after ending the run")
	}
}

func TestTogglePause(t *testing.T) {
	w := newTestWorld(t)

	if !TogglePause(w) || !IsPaused(w) {
		t.Fatal("expected paused")
	}
	if TogglePause(w) || IsPaused(w) {
		t.Fatal("expected resumed")
	}

	EndRun(w)
	if TogglePause(w) {
		t.Error("pause toggled outside a run")
	}
}
