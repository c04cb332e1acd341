package config

import (
	"image/color"
	"math"

	"github.com/automoto/lockstrike/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	BaseMoveSpeed float64 // target-x units per frame while steering
	Smoothing     float64 // fraction of the remaining gap closed each frame
	MaxX          float64 // steering limit on either side of the lane

	// Combat
	Health          int
	BaseDamage      int     // projectile damage without buffs
	ShootRate       float64 // seconds between automatic shots
	ProjectileSpeed float64 // units per frame
	LockConeRadians float64 // half-angle of the auto-aim cone
	MuzzleOffset    gamemath.Vec3
	HitboxOffset    gamemath.Vec3
	StartPosition   gamemath.Vec3
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string
	Health     int
	Speed      float64 // units per frame
	Damage     int     // contact damage for runners, projectile damage otherwise
	FireRate   float64 // seconds between shots, 0 = never fires
	ScoreValue int

	// Ranged combat
	ProjectileSpeed float64 // units per frame
	PreferredMin    float64 // shooter retreats when closer than this
	PreferredMax    float64 // shooter advances when farther than this
	FireRange       float64 // tank fires when closer than this
	ContactRange    float64 // runner explodes when closer than this

	// Geometry
	HitboxOffset gamemath.Vec3
	CannonMounts []gamemath.Vec3 // tank barrels, used in rotation
	HitboxRadius float64         // broad-phase footprint on the spatial grid
	RenderRadius float64
	TintColor    color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	// Enemies past this z have escaped behind the player.
	EscapeZ float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	HitRadius          float64 // projectile vs hitbox distance threshold
	ShieldDamageFactor float64 // shield seconds lost per point of damage
	PowerUpDropChance  float64
}

// WorldConfig describes the playable volume
type WorldConfig struct {
	MinX, MaxX  float64 // projectile bounds
	MinZ, MaxZ  float64
	SpawnZ      float64 // default spawn depth when the arena has no lanes
	ScrollSpeed float64 // units per second the environment scrolls past
	GridCell    int     // broad-phase cell size
}

// WaveConfig contains wave progression configuration
type WaveConfig struct {
	TotalWaves        int
	BaseKillQuota     int
	KillQuotaPerWave  int
	CompleteDelay     float64 // seconds between wave complete and the next wave
	BaseSpawnInterval float64
	SpawnIntervalStep float64
	MinSpawnInterval  float64
	StartingKinds     []EnemyKind
	Unlocks           map[int]EnemyKind // wave number -> kind unlocked on reaching it
}

// PowerUpTypeConfig contains configuration for a single pick-up kind
type PowerUpTypeConfig struct {
	Duration   float64 // seconds, 0 for instant pick-ups
	Multiplier float64 // stat multiplier while active
	Heal       int     // instant health restored
	Color      color.RGBA
}

// PowerUpConfig contains power-up configuration
type PowerUpConfig struct {
	Types        map[PowerUpKind]PowerUpTypeConfig
	PickupRadius float64
	EscapeZ      float64
	BobHeight    float64
	BobPeriod    float64 // seconds for one rise or fall
	SpinSpeed    float64 // radians per second
	FloatHeight  float64
}

// LimitsConfig bounds every entity collection
type LimitsConfig struct {
	MaxEnemies     int
	MaxProjectiles int
	MaxPowerUps    int
	MaxEffects     int
}

// SimConfig contains simulation clock configuration
type SimConfig struct {
	MaxDelta float64 // seconds
}

// EffectConfig contains visual effect lifetimes
type EffectConfig struct {
	HitLifetime        float64
	ExplosionLifetime  float64
	ImpactLifetime     float64
	CollectLifetime    float64
	MuzzleLifetime     float64
	ExplosionParticles int
	ParticleSpeed      float64
	ShieldPulsePeriod  float64
}

// Config holds general host configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var World WorldConfig
var Wave WaveConfig
var PowerUp PowerUpConfig
var Limits LimitsConfig
var Sim SimConfig
var Effect EffectConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to game
	Seed     int64 // 0 = time based
	Mute     bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "LOCKSTRIKE",
	}

	Player = PlayerConfig{
		BaseMoveSpeed:   0.3,
		Smoothing:       0.1,
		MaxX:            12,
		Health:          100,
		BaseDamage:      10,
		ShootRate:       0.3,
		ProjectileSpeed: 1.5,
		LockConeRadians: math.Pi / 4,
		MuzzleOffset:    gamemath.Vec3{X: 0, Y: 1.2, Z: -1},
		HitboxOffset:    gamemath.Vec3{X: 0, Y: 1, Z: 0},
		StartPosition:   gamemath.Vec3{X: 0, Y: 0, Z: 0},
	}

	Enemy = EnemyConfig{
		EscapeZ: 20,
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyRunner: {
				Name:         "runner",
				Health:       20,
				Speed:        0.15,
				Damage:       15,
				ScoreValue:   100,
				ContactRange: 2,
				HitboxOffset: gamemath.Vec3{Y: 0.8},
				HitboxRadius: 1,
				RenderRadius: 0.8,
				TintColor:    LightRed,
			},
			EnemyShooter: {
				Name:            "shooter",
				Health:          30,
				Speed:           0.08,
				Damage:          10,
				FireRate:        2.0,
				ScoreValue:      150,
				ProjectileSpeed: 0.5,
				PreferredMin:    10,
				PreferredMax:    15,
				HitboxOffset:    gamemath.Vec3{Y: 1},
				HitboxRadius:    1,
				RenderRadius:    1,
				TintColor:       Purple,
			},
			EnemyTank: {
				Name:            "tank",
				Health:          80,
				Speed:           0.04,
				Damage:          20,
				FireRate:        3.0,
				ScoreValue:      300,
				ProjectileSpeed: 0.4,
				FireRange:       20,
				HitboxOffset:    gamemath.Vec3{Y: 1.2},
				CannonMounts: []gamemath.Vec3{
					{X: -1.2, Y: 1.5, Z: 1},
					{X: 1.2, Y: 1.5, Z: 1},
				},
				HitboxRadius: 1.5,
				RenderRadius: 1.6,
				TintColor:    Orange,
			},
		},
	}

	Combat = CombatConfig{
		HitRadius:          1,
		ShieldDamageFactor: 2,
		PowerUpDropChance:  0.2,
	}

	World = WorldConfig{
		MinX:        -50,
		MaxX:        50,
		MinZ:        -100,
		MaxZ:        20,
		SpawnZ:      -80,
		ScrollSpeed: 6,
		GridCell:    4,
	}

	Wave = WaveConfig{
		TotalWaves:        10,
		BaseKillQuota:     10,
		KillQuotaPerWave:  5,
		CompleteDelay:     2,
		BaseSpawnInterval: 2.0,
		SpawnIntervalStep: 0.15,
		MinSpawnInterval:  0.5,
		StartingKinds:     []EnemyKind{EnemyRunner},
		Unlocks: map[int]EnemyKind{
			2: EnemyShooter,
			4: EnemyTank,
		},
	}

	PowerUp = PowerUpConfig{
		PickupRadius: 2,
		EscapeZ:      15,
		BobHeight:    0.5,
		BobPeriod:    1,
		SpinSpeed:    2,
		FloatHeight:  1,
		Types: map[PowerUpKind]PowerUpTypeConfig{
			PowerUpHealth: {Heal: 25, Color: BrightGreen},
			PowerUpShield: {Duration: 10, Color: LightBlue},
			PowerUpDamage: {Duration: 10, Multiplier: 2, Color: LightRed},
			PowerUpSpeed:  {Duration: 10, Multiplier: 1.5, Color: Yellow},
		},
	}

	Limits = LimitsConfig{
		MaxEnemies:     40,
		MaxProjectiles: 256,
		MaxPowerUps:    12,
		MaxEffects:     160,
	}

	Sim = SimConfig{
		MaxDelta: 0.1,
	}

	Effect = EffectConfig{
		HitLifetime:        0.25,
		ExplosionLifetime:  0.8,
		ImpactLifetime:     0.35,
		CollectLifetime:    0.6,
		MuzzleLifetime:     0.08,
		ExplosionParticles: 12,
		ParticleSpeed:      6,
		ShieldPulsePeriod:  0.6,
	}

	Debug = DebugConfig{}
}

// KillQuota returns the kills needed to clear wave n.
func KillQuota(wave int) int {
	return Wave.BaseKillQuota + Wave.KillQuotaPerWave*wave
}
