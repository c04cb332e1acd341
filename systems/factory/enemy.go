package factory

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of the given kind. It returns nil when the
// enemy cap is reached or the kind is unknown.
func CreateEnemy(w donburi.World, kind cfg.EnemyKind, pos gamemath.Vec3, now float64) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		return nil
	}
	if EnemyCount(w) >= cfg.Limits.MaxEnemies {
		return nil
	}

	enemy := archetypes.Enemy.Spawn(w)

	obj := newGridObject(w, pos.Add(enemyType.HitboxOffset), FootprintHalfSize(enemyType.HitboxRadius), tags.ResolvEnemy)
	obj.Data = enemy.Entity()
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Transform.SetValue(enemy, components.TransformData{Position: pos})

	mounts := make([]gamemath.Vec3, len(enemyType.CannonMounts))
	copy(mounts, enemyType.CannonMounts)

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:           uuid.New(),
		Kind:         kind,
		TypeConfig:   &enemyType,
		Speed:        enemyType.Speed,
		Damage:       enemyType.Damage,
		FireRate:     enemyType.FireRate,
		LastFireTime: now,
		ScoreValue:   enemyType.ScoreValue,
		HitboxOffset: enemyType.HitboxOffset,
		Mounts:       mounts,
	})

	// Set health from config
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	return enemy
}
