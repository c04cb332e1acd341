package factory

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, start gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := newGridObject(w, start.Add(cfg.Player.HitboxOffset), 0.5, tags.ResolvPlayer)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Transform.SetValue(player, components.TransformData{Position: start})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, NewPlayerData(start))

	return player
}

// NewPlayerData returns the baseline player state for a fresh run.
func NewPlayerData(start gamemath.Vec3) components.PlayerData {
	return components.PlayerData{
		TargetX:          start.X,
		MoveSpeed:        cfg.Player.BaseMoveSpeed,
		ProjectileDamage: cfg.Player.BaseDamage,
		LastShot:         -cfg.Player.ShootRate,
		LockTarget:       donburi.Null,
		Active:           make(map[cfg.PowerUpKind]*components.ActivePowerUp),
		HitboxOffset:     cfg.Player.HitboxOffset,
	}
}
