package render

import (
	"math"

	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateCamera returns the camera entity, creating it behind the player
// start if needed.
func GetOrCreateCamera(w donburi.World) *donburi.Entry {
	if entry, ok := components.Camera.First(w); ok {
		return entry
	}
	entry := archetypes.Camera.Spawn(w)
	SnapCamera(w)

	// Shake the view when the player takes a hit
	systems.PlayerHurt.Subscribe(w, func(w donburi.World, ev systems.PlayerHurtEvent) {
		if ev.Shielded {
			TriggerScreenShake(w, cfg.ScreenShake.ExplosionIntensity, cfg.ScreenShake.ExplosionDuration)
			return
		}
		TriggerScreenShake(w, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	})
	return entry
}

// SnapCamera moves the camera straight to its follow position.
func SnapCamera(w donburi.World) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	x, z := followTarget(w)
	camera.Position.X = x
	camera.Position.Y = z
}

// UpdateCamera eases the camera toward the player and ages the shake.
func UpdateCamera(e *ecs.ECS) {
	entry := GetOrCreateCamera(e.World)
	camera := components.Camera.Get(entry)

	updateScreenShake(components.ScreenShake.Get(entry))

	x, z := followTarget(e.World)
	camera.Position.X += (x - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (z - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

func followTarget(w donburi.World) (x, z float64) {
	start := systems.GetArena(w).PlayerStart
	x, z = start.X, start.Z
	if player, ok := systems.GetPlayer(w); ok {
		pos := components.Transform.Get(player).Position
		x, z = pos.X, pos.Z
	}
	return x, z + cfg.Camera.Distance
}

func updateScreenShake(shake *components.ScreenShakeData) {
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// ShakeOffset returns the decaying pixel offset of the current shake.
func ShakeOffset(shake *components.ScreenShakeData) (dx, dy float64) {
	if shake.Duration <= 0 {
		return 0, 0
	}
	progress := math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a shake unless a stronger one is running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration > 0 && shake.Intensity >= intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}

// CurrentProjector builds the projection for the current camera and screen size.
func CurrentProjector(w donburi.World, width, height float64) Projector {
	entry := GetOrCreateCamera(w)
	camera := components.Camera.Get(entry)
	p := NewProjector(camera.Position.X, camera.Position.Y, width, height)
	p.OffsetX, p.OffsetY = ShakeOffset(components.ScreenShake.Get(entry))
	return p
}
