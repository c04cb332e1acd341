package render

import (
	"math"
	"testing"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestProjector(t *testing.T) {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	p := NewProjector(0, cfg.Camera.Distance, width, height)

	x, _, near, ok := p.Project(gamemath.Vec3{Z: 0})
	if !ok {
		t.Fatal("player position not visible")
	}
	if x != width/2 {
		t.Errorf("x = %f, want screen center %f", x, width/2)
	}

	_, farY, far, ok := p.Project(gamemath.Vec3{Z: -80})
	if !ok {
		t.Fatal("spawn line not visible")
	}
	if far >= near {
		t.Errorf("far scale %f should be smaller than near scale %f", far, near)
	}
	if farY <= p.Horizon() {
		t.Errorf("ground point at y=%f should be below the horizon %f", farY, p.Horizon())
	}

	if _, _, _, ok := p.Project(gamemath.Vec3{Z: cfg.Camera.Distance + 1}); ok {
		t.Error("point behind the camera should not project")
	}

	rx, _, _, _ := p.Project(gamemath.Vec3{X: 5, Z: -20})
	lx, _, _, _ := p.Project(gamemath.Vec3{X: -5, Z: -20})
	if math.Abs((rx-width/2)-(width/2-lx)) > 1e-9 {
		t.Errorf("projection not symmetric: left %f right %f", lx, rx)
	}
}

func TestCamera_FollowsPlayer(t *testing.T) {
	w := donburi.NewWorld()
	systems.ResetRun(w)
	entry := GetOrCreateCamera(w)
	camera := components.Camera.Get(entry)

	if camera.Position.Y != cfg.Camera.Distance {
		t.Errorf("camera z = %f, want %f behind the player", camera.Position.Y, cfg.Camera.Distance)
	}

	player, _ := systems.GetPlayer(w)
	components.Transform.Get(player).Position.X = 10

	x, _ := followTarget(w)
	if x != 10 {
		t.Fatalf("follow target x = %f, want 10", x)
	}
	SnapCamera(w)
	if camera.Position.X != 10 {
		t.Errorf("camera x = %f after snap, want 10", camera.Position.X)
	}
}

func TestScreenShake(t *testing.T) {
	w := donburi.NewWorld()
	systems.ResetRun(w)
	entry := GetOrCreateCamera(w)
	shake := components.ScreenShake.Get(entry)

	systems.TakeDamage(w, 10)
	events.ProcessAllEvents(w)

	if shake.Duration != cfg.ScreenShake.PlayerDamageDuration {
		t.Fatalf("shake duration = %d, want %d", shake.Duration, cfg.ScreenShake.PlayerDamageDuration)
	}

	// A weaker shake does not replace a stronger one
	TriggerScreenShake(w, 0.1, 100)
	if shake.Intensity != cfg.ScreenShake.PlayerDamageIntensity {
		t.Errorf("intensity = %f, want the stronger shake kept", shake.Intensity)
	}

	for range cfg.ScreenShake.PlayerDamageDuration {
		updateScreenShake(shake)
	}
	if dx, dy := ShakeOffset(shake); dx != 0 || dy != 0 {
		t.Errorf("offset = (%f, %f) after the shake ended", dx, dy)
	}
}

func TestHUD_Notifications(t *testing.T) {
	h := NewHUD()

	h.UpdateHealthDisplay(50, 100)
	if h.HealthRatio() != 0.5 {
		t.Errorf("health ratio = %f, want 0.5", h.HealthRatio())
	}

	h.UpdatePowerUpDisplay(map[cfg.PowerUpKind]float64{
		cfg.PowerUpSpeed:  3.25,
		cfg.PowerUpShield: 9,
	})
	lines := h.PowerUpLines()
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if want := "SHIELD 9.0s"; lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}

	if h.Result() != nil {
		t.Error("result set before the run ended")
	}
	h.OnGameOver(1200, 3)
	if r := h.Result(); r == nil || r.Victory || r.Score != 1200 || r.Wave != 3 {
		t.Errorf("result = %+v", r)
	}
	h.Reset()
	if h.Result() != nil {
		t.Error("result kept after reset")
	}
}

func TestHUD_WaveBannerFades(t *testing.T) {
	h := NewHUD()
	h.UpdateWaveDisplay(1, 10, 0)
	if h.bannerAlpha != 1 || h.bannerText != "WAVE 1" {
		t.Fatalf("banner = %q alpha %f", h.bannerText, h.bannerAlpha)
	}

	// Same wave, no new banner
	h.Update(cfg.HUD.BannerDuration / 2)
	mid := h.bannerAlpha
	h.UpdateWaveDisplay(1, 10, 0.5)
	if h.bannerAlpha != mid {
		t.Error("progress update restarted the banner")
	}

	h.Update(cfg.HUD.BannerDuration)
	if h.bannerAlpha != 0 {
		t.Errorf("banner alpha = %f, want 0 after the duration", h.bannerAlpha)
	}
}

func TestHUD_WaveClearBanner(t *testing.T) {
	w := donburi.NewWorld()
	h := NewHUD()
	h.Watch(w)

	systems.WaveCompleted.Publish(w, systems.WaveCompleteEvent{Wave: 2})
	if h.bannerAlpha != 0 {
		t.Fatal("banner shown before events were dispatched")
	}
	events.ProcessAllEvents(w)

	if h.bannerText != "WAVE 2 CLEAR" || h.bannerAlpha != 1 {
		t.Errorf("banner = %q alpha %f", h.bannerText, h.bannerAlpha)
	}
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(cfg.White, 0.5)
	if c.A != 127 || c.R != 127 {
		t.Errorf("color = %+v, want half white", c)
	}
	if got := withAlpha(cfg.White, 2); got != cfg.White {
		t.Errorf("alpha clamps: got %+v", got)
	}
}
