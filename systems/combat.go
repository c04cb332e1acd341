package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/automoto/lockstrike/tags"
	"github.com/yohamta/donburi"
)

// UpdateCombat resolves projectile hits for this frame. Every projectile hits
// at most one target; destroyed entities leave the world before it returns.
func UpdateCombat(w donburi.World) {
	var toRemove []*donburi.Entry
	removed := make(map[donburi.Entity]bool)

	markRemoved := func(e *donburi.Entry) {
		if !removed[e.Entity()] {
			removed[e.Entity()] = true
			toRemove = append(toRemove, e)
		}
	}

	playerEntry, hasPlayer := GetPlayer(w)

	// 1. Player projectiles vs enemies
	for _, p := range snapshot(w, projectileQuery) {
		// A hit earlier in the loop may have ended the run
		if !IsPlaying(w) {
			break
		}
		if !p.Valid() || removed[p.Entity()] {
			continue
		}
		projectile := components.Projectile.Get(p)
		pos := components.Transform.Get(p).Position

		switch projectile.Side {
		case cfg.SidePlayer:
			enemy := findHitEnemy(w, p, pos, removed)
			if enemy == nil {
				continue
			}
			markRemoved(p)
			if killed := applyHitToEnemy(w, enemy, projectile.Damage, pos); killed {
				markRemoved(enemy)
			}

		// 2. Enemy projectiles vs player
		case cfg.SideEnemy:
			if !hasPlayer {
				continue
			}
			if gamemath.Distance(pos, playerHitbox(playerEntry)) < cfg.Combat.HitRadius {
				TakeDamage(w, projectile.Damage)
				factory.SpawnEffect(w, components.EffectHit, pos, factory.EffectParams{})
				markRemoved(p)
			}
		}
	}

	destroyAll(w, toRemove)
}

// findHitEnemy returns the first live enemy whose hitbox is within the hit
// radius of pos. Candidates come from the grid cells the projectile occupies;
// without a grid every enemy is a candidate.
func findHitEnemy(w donburi.World, projectile *donburi.Entry, pos gamemath.Vec3, removed map[donburi.Entity]bool) *donburi.Entry {
	for _, e := range enemyCandidates(w, projectile) {
		if !e.Valid() || removed[e.Entity()] || !e.HasComponent(tags.Enemy) {
			continue
		}
		if components.Health.Get(e).Dead() {
			continue
		}
		enemy := components.Enemy.Get(e)
		hitbox := components.Transform.Get(e).Position.Add(enemy.HitboxOffset)
		if gamemath.Distance(pos, hitbox) < cfg.Combat.HitRadius {
			return e
		}
	}
	return nil
}

func enemyCandidates(w donburi.World, projectile *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(projectile)
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return snapshot(w, enemyQuery)
	}

	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}
	objects := check.ObjectsByTags(tags.ResolvEnemy)
	candidates := make([]*donburi.Entry, 0, len(objects))
	for _, o := range objects {
		ent, ok := o.Data.(donburi.Entity)
		if !ok || !w.Valid(ent) {
			continue
		}
		candidates = append(candidates, w.Entry(ent))
	}
	return candidates
}

// applyHitToEnemy subtracts damage and resolves the kill. It returns true when
// the enemy died and must be removed.
func applyHitToEnemy(w donburi.World, e *donburi.Entry, damage int, at gamemath.Vec3) bool {
	health := components.Health.Get(e)
	health.Current -= damage
	factory.SpawnEffect(w, components.EffectHit, at, factory.EffectParams{})
	PlaySFXAt(w, cfg.SoundHit, at)

	if health.Current > 0 {
		return false
	}

	enemy := components.Enemy.Get(e)
	deathPos := components.Transform.Get(e).Position

	AddScore(w, enemy.ScoreValue)
	scale := 1.0
	if enemy.Kind == cfg.EnemyTank {
		scale = 1.6
	}
	factory.SpawnEffect(w, components.EffectExplosion, deathPos, factory.EffectParams{Scale: scale, Rand: GetRand(w)})
	PlaySFXAt(w, cfg.SoundExplosion, deathPos)

	RecordKill(w)
	RollPowerUpDrop(w, deathPos)
	return true
}

// TakeDamage applies damage to the player. An active shield absorbs it at the
// shield damage factor instead of health. Calls after death are no-ops.
func TakeDamage(w donburi.World, amount int) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead || amount <= 0 {
		return
	}
	pos := components.Transform.Get(playerEntry).Position

	if shield, ok := player.Active[cfg.PowerUpShield]; ok {
		shield.Remaining -= cfg.Combat.ShieldDamageFactor * float64(amount)
		factory.SpawnEffect(w, components.EffectShieldImpact, playerHitbox(playerEntry), factory.EffectParams{Follow: playerEntry.Entity()})
		PlaySFX(w, cfg.SoundShieldImpact)
		PlayerHurt.Publish(w, PlayerHurtEvent{Amount: amount, Shielded: true})
		if shield.Remaining <= 0 {
			RevertPowerUp(w, cfg.PowerUpShield)
		} else {
			publishPowerUps(w, player)
		}
		return
	}

	health := components.Health.Get(playerEntry)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	PlaySFX(w, cfg.SoundPlayerHurt)
	PlayerHurt.Publish(w, PlayerHurtEvent{Amount: amount})
	publishHealth(w, playerEntry)

	if health.Dead() {
		triggerGameOver(w, playerEntry, pos)
	}
}
