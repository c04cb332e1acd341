package factory

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePowerUp drops a floating pick-up. It returns nil at the pick-up cap.
func CreatePowerUp(w donburi.World, kind cfg.PowerUpKind, pos gamemath.Vec3) *donburi.Entry {
	if PowerUpCount(w) >= cfg.Limits.MaxPowerUps {
		return nil
	}

	powerUp := archetypes.PowerUp.Spawn(w)

	baseY := cfg.PowerUp.FloatHeight
	pos.Y = baseY
	components.Transform.SetValue(powerUp, components.TransformData{Position: pos})
	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Kind:  kind,
		BaseY: baseY,
		Bob:   newBobSequence(),
	})

	return powerUp
}

func newBobSequence() *gween.Sequence {
	height := float32(cfg.PowerUp.BobHeight)
	period := float32(cfg.PowerUp.BobPeriod)
	return gween.NewSequence(
		gween.New(0, height, period, ease.InOutSine),
		gween.New(height, 0, period, ease.InOutSine),
	)
}
