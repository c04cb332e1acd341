package systems

import (
	"math"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateAutoAim locks onto the nearest enemy inside the forward cone and fires
// at it whenever the shot cooldown has elapsed.
func UpdateAutoAim(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}
	origin := components.Transform.Get(playerEntry).Position

	player.LockTarget = findLockTarget(w, origin)
	if !w.Valid(player.LockTarget) {
		return
	}

	now := Now(w)
	if now-player.LastShot < cfg.Player.ShootRate {
		return
	}

	target := w.Entry(player.LockTarget)
	enemy := components.Enemy.Get(target)
	aimPoint := components.Transform.Get(target).Position.Add(enemy.HitboxOffset)
	muzzle := origin.Add(cfg.Player.MuzzleOffset)

	velocity := gamemath.CalculateHomingVelocity(muzzle, aimPoint, cfg.Player.ProjectileSpeed)
	if velocity.IsZero() {
		return
	}
	player.LastShot = now
	factory.CreateProjectile(w, cfg.SidePlayer, muzzle, velocity, player.ProjectileDamage)
	factory.SpawnEffect(w, components.EffectMuzzleFlash, muzzle, factory.EffectParams{})
	PlaySFX(w, cfg.SoundPlayerShoot)
}

// findLockTarget returns the nearest enemy whose direction from origin lies
// within the lock cone around the forward axis, or donburi.Null.
func findLockTarget(w donburi.World, origin gamemath.Vec3) donburi.Entity {
	best := donburi.Null
	bestDist := math.Inf(1)
	enemyQuery.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		offset := pos.Sub(origin)
		if gamemath.AngleBetween(offset, gamemath.Forward) > cfg.Player.LockConeRadians {
			return
		}
		if dist := offset.Length(); dist < bestDist {
			bestDist = dist
			best = e.Entity()
		}
	})
	return best
}
