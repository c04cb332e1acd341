package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdatePlayer moves the steering target by the host's steer input and eases
// the player toward it.
func UpdatePlayer(w donburi.World) {
	e, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	if player.Dead {
		return
	}
	transform := components.Transform.Get(e)

	player.TargetX = gamemath.Clamp(player.TargetX+player.Steer*player.MoveSpeed, -cfg.Player.MaxX, cfg.Player.MaxX)
	transform.Position.X = gamemath.Lerp(transform.Position.X, player.TargetX, cfg.Player.Smoothing)

	factory.PlaceObject(components.Object.Get(e).Object, transform.Position.Add(player.HitboxOffset))
}

// SetSteer records the host's steering input, clamped to [-1, 1].
func SetSteer(w donburi.World, dir float64) {
	e, ok := GetPlayer(w)
	if !ok {
		return
	}
	components.Player.Get(e).Steer = gamemath.Clamp(dir, -1, 1)
}

func publishHealth(w donburi.World, e *donburi.Entry) {
	health := components.Health.Get(e)
	HealthChanged.Publish(w, HealthEvent{Health: health.Current, Max: health.Max})
}
