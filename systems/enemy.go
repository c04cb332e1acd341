package systems

import (
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// enemyStrategy moves one enemy for one frame. It returns true when the enemy
// has been consumed and must be removed.
type enemyStrategy interface {
	update(w donburi.World, e *donburi.Entry, target gamemath.Vec3) bool
}

type runnerStrategy struct{}
type shooterStrategy struct{}
type tankStrategy struct{}

var enemyStrategies = map[cfg.EnemyKind]enemyStrategy{
	cfg.EnemyRunner:  runnerStrategy{},
	cfg.EnemyShooter: shooterStrategy{},
	cfg.EnemyTank:    tankStrategy{},
}

func UpdateEnemies(w donburi.World) {
	// Get player position for AI decisions
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	var toRemove []*donburi.Entry
	for _, e := range snapshot(w, enemyQuery) {
		if !e.Valid() {
			continue
		}
		enemy := components.Enemy.Get(e)
		strategy, ok := enemyStrategies[enemy.Kind]
		if !ok {
			continue
		}

		if strategy.update(w, e, target) {
			toRemove = append(toRemove, e)
			continue
		}

		transform := components.Transform.Get(e)
		faceToward(transform, target)
		factory.PlaceObject(components.Object.Get(e).Object, transform.Position.Add(enemy.HitboxOffset))

		// Escaped past the player, not a kill
		if transform.Position.Z > cfg.Enemy.EscapeZ {
			toRemove = append(toRemove, e)
		}
	}

	destroyAll(w, toRemove)
}

func (runnerStrategy) update(w donburi.World, e *donburi.Entry, target gamemath.Vec3) bool {
	enemy := components.Enemy.Get(e)
	transform := components.Transform.Get(e)

	if gamemath.Distance(transform.Position, target) < enemy.TypeConfig.ContactRange {
		// Melee consumption: the runner is spent, no kill is awarded
		TakeDamage(w, enemy.Damage)
		factory.SpawnEffect(w, components.EffectExplosion, transform.Position, factory.EffectParams{Rand: GetRand(w)})
		PlaySFXAt(w, cfg.SoundExplosion, transform.Position)
		return true
	}

	transform.Position = gamemath.StepToward(transform.Position, target, enemy.Speed)
	return false
}

func (shooterStrategy) update(w donburi.World, e *donburi.Entry, target gamemath.Vec3) bool {
	enemy := components.Enemy.Get(e)
	transform := components.Transform.Get(e)
	typeCfg := enemy.TypeConfig

	dist := gamemath.Distance(transform.Position, target)
	switch {
	case dist > typeCfg.PreferredMax:
		transform.Position = transform.Position.Add(gamemath.CalculateHomingVelocity(transform.Position, target, enemy.Speed))
	case dist < typeCfg.PreferredMin:
		transform.Position = transform.Position.Sub(gamemath.CalculateHomingVelocity(transform.Position, target, enemy.Speed*0.5))
	default:
		if readyToFire(w, enemy) {
			fireAtPlayer(w, enemy, transform.Position.Add(enemy.HitboxOffset))
		}
	}
	return false
}

func (tankStrategy) update(w donburi.World, e *donburi.Entry, target gamemath.Vec3) bool {
	enemy := components.Enemy.Get(e)
	transform := components.Transform.Get(e)

	transform.Position = gamemath.StepToward(transform.Position, target, enemy.Speed)

	if gamemath.Distance(transform.Position, target) < enemy.TypeConfig.FireRange && readyToFire(w, enemy) {
		muzzle := transform.Position.Add(enemy.HitboxOffset)
		if len(enemy.Mounts) > 0 {
			mount := enemy.Mounts[enemy.NextCannon%len(enemy.Mounts)]
			muzzle = transform.Position.Add(mount.RotateY(transform.Facing))
			enemy.NextCannon = (enemy.NextCannon + 1) % len(enemy.Mounts)
		}
		fireAtPlayer(w, enemy, muzzle)
	}
	return false
}

func readyToFire(w donburi.World, enemy *components.EnemyData) bool {
	return enemy.FireRate > 0 && Now(w)-enemy.LastFireTime > enemy.FireRate
}

// fireAtPlayer launches an enemy projectile from muzzle at the player's hitbox.
func fireAtPlayer(w donburi.World, enemy *components.EnemyData, muzzle gamemath.Vec3) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	enemy.LastFireTime = Now(w)

	velocity := gamemath.CalculateHomingVelocity(muzzle, playerHitbox(playerEntry), enemy.TypeConfig.ProjectileSpeed)
	if velocity.IsZero() {
		return
	}
	factory.CreateProjectile(w, cfg.SideEnemy, muzzle, velocity, enemy.Damage)
	factory.SpawnEffect(w, components.EffectMuzzleFlash, muzzle, factory.EffectParams{Scale: 0.8})
	PlaySFXAt(w, cfg.SoundEnemyShoot, muzzle)
}

// faceToward turns the transform to face target unless they coincide.
func faceToward(transform *components.TransformData, target gamemath.Vec3) {
	if angle, ok := gamemath.FacingAngle(target.Sub(transform.Position)); ok {
		transform.Facing = angle
	}
}
