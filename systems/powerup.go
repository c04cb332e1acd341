package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// ActivatePowerUp grants a buff to the player. Health heals at once and is not
// tracked. Re-activating a running buff extends it instead of stacking.
func ActivatePowerUp(w donburi.World, kind cfg.PowerUpKind, duration float64) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}

	if kind == cfg.PowerUpHealth {
		health := components.Health.Get(playerEntry)
		health.Current = min(health.Max, health.Current+cfg.PowerUp.Types[kind].Heal)
		publishHealth(w, playerEntry)
		return
	}

	if active, ok := player.Active[kind]; ok {
		active.Remaining += duration
		publishPowerUps(w, player)
		return
	}

	active := &components.ActivePowerUp{
		Kind:      kind,
		Remaining: duration,
		Visual:    donburi.Null,
	}
	multiplier := cfg.PowerUp.Types[kind].Multiplier
	switch kind {
	case cfg.PowerUpShield:
		bubble := factory.SpawnEffect(w, components.EffectShieldBubble, playerHitbox(playerEntry), factory.EffectParams{
			Follow: playerEntry.Entity(),
		})
		if bubble != nil {
			active.Visual = bubble.Entity()
		}
	case cfg.PowerUpDamage:
		player.ProjectileDamage = int(float64(player.ProjectileDamage) * multiplier)
	case cfg.PowerUpSpeed:
		player.MoveSpeed *= multiplier
	}
	player.Active[kind] = active
	publishPowerUps(w, player)
}

// RevertPowerUp removes a buff and restores the baseline it changed.
// Reverting a buff that is not active does nothing.
func RevertPowerUp(w donburi.World, kind cfg.PowerUpKind) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	active, ok := player.Active[kind]
	if !ok {
		return
	}

	switch kind {
	case cfg.PowerUpShield:
		factory.DestroyEntity(w, active.Visual)
	case cfg.PowerUpDamage:
		player.ProjectileDamage = cfg.Player.BaseDamage
	case cfg.PowerUpSpeed:
		player.MoveSpeed = cfg.Player.BaseMoveSpeed
	}
	delete(player.Active, kind)
	publishPowerUps(w, player)
}

// UpdatePowerUps ticks active buffs and animates, collects or expires world
// pick-ups.
func UpdatePowerUps(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	dt := Delta(w)

	tickActivePowerUps(w, player, dt)
	updatePickups(w, playerHitbox(playerEntry), dt)
}

func tickActivePowerUps(w donburi.World, player *components.PlayerData, dt float64) {
	if len(player.Active) == 0 {
		return
	}
	for kind := cfg.PowerUpKind(0); kind < cfg.PowerUpKindCount; kind++ {
		active, ok := player.Active[kind]
		if !ok {
			continue
		}
		active.Remaining -= dt
		if active.Remaining <= 0 {
			active.Remaining = 0
			RevertPowerUp(w, kind)
		}
	}
	publishPowerUps(w, player)
}

func updatePickups(w donburi.World, collector gamemath.Vec3, dt float64) {
	var toRemove []*donburi.Entry

	for _, e := range snapshot(w, powerUpQuery) {
		powerUp := components.PowerUp.Get(e)
		transform := components.Transform.Get(e)

		// Bob and spin in place while drifting with the scroll
		offset, _, finished := powerUp.Bob.Update(float32(dt))
		if finished {
			powerUp.Bob.Reset()
		}
		transform.Position.Y = powerUp.BaseY + float64(offset)
		transform.Position.Z += cfg.World.ScrollSpeed * dt
		powerUp.Spin += cfg.PowerUp.SpinSpeed * dt
		transform.Facing = powerUp.Spin

		if gamemath.Distance(transform.Position, collector) < cfg.PowerUp.PickupRadius {
			ActivatePowerUp(w, powerUp.Kind, cfg.PowerUp.Types[powerUp.Kind].Duration)
			factory.SpawnEffect(w, components.EffectPowerUpCollect, transform.Position, factory.EffectParams{})
			PlaySFX(w, cfg.SoundPowerUp)
			toRemove = append(toRemove, e)
			continue
		}
		if transform.Position.Z > cfg.PowerUp.EscapeZ {
			toRemove = append(toRemove, e)
		}
	}

	destroyAll(w, toRemove)
}

// RollPowerUpDrop spawns a random pick-up at pos with the configured chance.
func RollPowerUpDrop(w donburi.World, pos gamemath.Vec3) *donburi.Entry {
	rng := GetRand(w)
	if rng.Float64() >= cfg.Combat.PowerUpDropChance {
		return nil
	}
	kind := cfg.PowerUpKind(rng.IntN(int(cfg.PowerUpKindCount)))
	return factory.CreatePowerUp(w, kind, pos)
}

func publishPowerUps(w donburi.World, player *components.PlayerData) {
	active := make(map[cfg.PowerUpKind]float64, len(player.Active))
	for kind, p := range player.Active {
		active[kind] = p.Remaining
	}
	PowerUpsChanged.Publish(w, PowerUpEvent{Active: active})
}
