package render

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
)

// Projector maps world positions to screen pixels for a chase camera looking
// down the -z axis.
type Projector struct {
	Eye            gamemath.Vec3
	Width, Height  float64
	OffsetX        float64 // screen shake
	OffsetY        float64
	focal, horizon float64
}

// NewProjector creates a projector for an eye at (x, Camera.Height, z).
func NewProjector(eyeX, eyeZ, width, height float64) Projector {
	return Projector{
		Eye:     gamemath.Vec3{X: eyeX, Y: cfg.Camera.Height, Z: eyeZ},
		Width:   width,
		Height:  height,
		focal:   cfg.Camera.FocalLength * height / float64(cfg.C.Height),
		horizon: height * cfg.Camera.HorizonY,
	}
}

// Project returns the screen position of p and the pixels per world unit at
// its depth. ok is false for points behind the near plane.
func (p Projector) Project(pos gamemath.Vec3) (x, y, scale float64, ok bool) {
	depth := p.Eye.Z - pos.Z
	if depth < cfg.Camera.NearPlane {
		return 0, 0, 0, false
	}
	scale = p.focal / depth
	x = p.Width/2 + (pos.X-p.Eye.X)*scale + p.OffsetX
	y = p.horizon + (p.Eye.Y-pos.Y)*scale + p.OffsetY
	return x, y, scale, true
}

// Depth is the distance along the view axis, larger is further away.
func (p Projector) Depth(pos gamemath.Vec3) float64 {
	return p.Eye.Z - pos.Z
}

// Horizon is the screen row the ground plane converges to.
func (p Projector) Horizon() float64 {
	return p.horizon + p.OffsetY
}
