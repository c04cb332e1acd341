package components

import (
	"github.com/automoto/lockstrike/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectKind selects how an effect animates and draws.
type EffectKind int

const (
	EffectHit EffectKind = iota
	EffectExplosion
	EffectShieldImpact
	EffectPowerUpCollect
	EffectShieldBubble
	EffectMuzzleFlash
)

func (k EffectKind) String() string {
	switch k {
	case EffectHit:
		return "hit"
	case EffectExplosion:
		return "explosion"
	case EffectShieldImpact:
		return "shield-impact"
	case EffectPowerUpCollect:
		return "powerup-collect"
	case EffectShieldBubble:
		return "shield-bubble"
	case EffectMuzzleFlash:
		return "muzzle-flash"
	}
	return "unknown"
}

type Particle struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3 // units per second
}

// EffectData is a transient visual. Lifetime 0 means it lives until removed.
type EffectData struct {
	Kind     EffectKind
	Position gamemath.Vec3
	Age      float64
	Lifetime float64
	Scale    float64

	Particles []Particle
	Follow    donburi.Entity // entity whose position the effect tracks
	Pulse     *gween.Sequence
}

// Progress returns how far through its lifetime the effect is, in [0,1].
func (e *EffectData) Progress() float64 {
	if e.Lifetime <= 0 {
		return 0
	}
	p := e.Age / e.Lifetime
	if p > 1 {
		return 1
	}
	return p
}

var Effect = donburi.NewComponentType[EffectData]()
