package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems"
	"github.com/automoto/lockstrike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	enemyQuery      = donburi.NewQuery(filter.Contains(tags.Enemy))
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))
	powerUpQuery    = donburi.NewQuery(filter.Contains(tags.PowerUp))
	effectQuery     = donburi.NewQuery(filter.Contains(tags.Effect))
)

// drawable is one thing to paint, sorted far to near.
type drawable struct {
	depth float64
	draw  func(screen *ebiten.Image, p Projector)
}

// Reused between frames
var drawables []drawable

// DrawGround paints the sky gradient and the scrolling ground grid.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	p := CurrentProjector(e.World, width, height)
	horizon := p.Horizon()

	// Sky in horizontal bands
	const bands = 12
	bandH := horizon / bands
	for i := 0; i < bands; i++ {
		c := lerpColor(cfg.Render.SkyTop, cfg.Render.SkyBottom, float64(i)/(bands-1))
		vector.FillRect(screen, 0, float32(float64(i)*bandH), float32(width), float32(bandH+1), c, false)
	}
	vector.FillRect(screen, 0, float32(horizon), float32(width), float32(height-horizon), cfg.Render.Ground, false)

	// Cross lines scroll toward the camera with the world
	spacing := cfg.Render.GridSpacing
	scroll := math.Mod(systems.Now(e.World)*cfg.World.ScrollSpeed, spacing)
	for z := cfg.World.MinZ + scroll; z < p.Eye.Z; z += spacing {
		left := gamemath.Vec3{X: cfg.World.MinX, Z: z}
		right := gamemath.Vec3{X: cfg.World.MaxX, Z: z}
		x0, y0, _, ok0 := p.Project(left)
		x1, y1, _, ok1 := p.Project(right)
		if !ok0 || !ok1 {
			continue
		}
		fade := 1 - math.Min(1, p.Depth(left)/(p.Eye.Z-cfg.World.MinZ))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, withAlpha(cfg.Render.GridLine, fade), false)
	}

	// Lines along the track
	far := cfg.World.MinZ
	near := p.Eye.Z - cfg.Camera.NearPlane
	for x := cfg.World.MinX; x <= cfg.World.MaxX; x += spacing {
		x0, y0, _, ok0 := p.Project(gamemath.Vec3{X: x, Z: far})
		x1, y1, _, ok1 := p.Project(gamemath.Vec3{X: x, Z: near})
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, withAlpha(cfg.Render.GridLine, 0.35), false)
	}
}

// DrawEntities paints every enemy, projectile, pick-up, effect and the
// player, far to near.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	p := CurrentProjector(w, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
	drawables = drawables[:0]

	lockTarget := donburi.Null
	if player, ok := systems.GetPlayer(w); ok {
		data := components.Player.Get(player)
		lockTarget = data.LockTarget
		if !data.Hidden {
			pos := components.Transform.Get(player).Position
			drawables = append(drawables, drawable{p.Depth(pos), func(screen *ebiten.Image, p Projector) {
				drawPlayer(screen, p, pos, data.Steer)
			}})
		}
	}

	enemyQuery.Each(w, func(entry *donburi.Entry) {
		transform := *components.Transform.Get(entry)
		enemy := components.Enemy.Get(entry)
		health := components.Health.Get(entry)
		locked := entry.Entity() == lockTarget
		drawables = append(drawables, drawable{p.Depth(transform.Position), func(screen *ebiten.Image, p Projector) {
			drawEnemy(screen, p, transform, enemy, health, locked)
		}})
	})

	projectileQuery.Each(w, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		side := components.Projectile.Get(entry).Side
		drawables = append(drawables, drawable{p.Depth(pos), func(screen *ebiten.Image, p Projector) {
			drawProjectile(screen, p, pos, side)
		}})
	})

	powerUpQuery.Each(w, func(entry *donburi.Entry) {
		transform := *components.Transform.Get(entry)
		kind := components.PowerUp.Get(entry).Kind
		drawables = append(drawables, drawable{p.Depth(transform.Position), func(screen *ebiten.Image, p Projector) {
			drawPowerUp(screen, p, transform, kind)
		}})
	})

	effectQuery.Each(w, func(entry *donburi.Entry) {
		effect := components.Effect.Get(entry)
		drawables = append(drawables, drawable{p.Depth(effect.Position), func(screen *ebiten.Image, p Projector) {
			drawEffect(screen, p, effect)
		}})
	})

	sort.SliceStable(drawables, func(i, j int) bool {
		return drawables[i].depth > drawables[j].depth
	})
	for _, d := range drawables {
		d.draw(screen, p)
	}
}

func drawPlayer(screen *ebiten.Image, p Projector, pos gamemath.Vec3, steer float64) {
	x, y, scale, ok := p.Project(pos.Add(gamemath.Vec3{Y: 0.8}))
	if !ok {
		return
	}
	r := cfg.Render.PlayerRadius * scale
	// Bank into turns
	tilt := steer * 0.3 * r

	nose := [2]float64{x, y - r}
	left := [2]float64{x - 1.4*r, y + 0.6*r + tilt}
	right := [2]float64{x + 1.4*r, y + 0.6*r - tilt}
	c := cfg.Render.PlayerColor
	strokeTriangle(screen, nose, left, right, float32(math.Max(1, r*0.15)), c)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*0.4), c, true)
}

func drawEnemy(screen *ebiten.Image, p Projector, t components.TransformData, enemy *components.EnemyData, health *components.HealthData, locked bool) {
	tc := enemy.TypeConfig
	center := t.Position.Add(enemy.HitboxOffset)
	x, y, scale, ok := p.Project(center)
	if !ok {
		return
	}
	r := tc.RenderRadius * scale

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), tc.TintColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), float32(math.Max(1, r*0.1)), darken(tc.TintColor, 0.5), true)

	// Facing marker
	dir := gamemath.Vec3{Z: 1}.RotateY(t.Facing)
	if fx, fy, _, ok := p.Project(center.Add(dir.Scale(tc.RenderRadius))); ok {
		vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), float32(math.Max(1, r*0.2)), cfg.White, true)
	}

	// Health bar once damaged
	if health.Current < health.Max && health.Max > 0 {
		barW := 2 * r
		barH := math.Max(2, r*0.15)
		ratio := health.Fraction()
		vector.FillRect(screen, float32(x-r), float32(y-r-barH*2), float32(barW), float32(barH), cfg.HUD.HealthBgColor, false)
		vector.FillRect(screen, float32(x-r), float32(y-r-barH*2), float32(barW*ratio), float32(barH), cfg.HUD.HealthColor, false)
	}

	if locked {
		drawLockOn(screen, x, y, r*1.5)
	}
}

// drawLockOn draws four corner brackets around the locked target.
func drawLockOn(screen *ebiten.Image, x, y, r float64) {
	c := cfg.Render.LockColor
	arm := r * 0.4
	for _, corner := range [][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		cx, cy := x+corner[0]*r, y+corner[1]*r
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx-corner[0]*arm), float32(cy), 2, c, true)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-corner[1]*arm), 2, c, true)
	}
}

func drawProjectile(screen *ebiten.Image, p Projector, pos gamemath.Vec3, side cfg.Side) {
	x, y, scale, ok := p.Project(pos)
	if !ok {
		return
	}
	c := cfg.Render.ShotColor
	if side == cfg.SideEnemy {
		c = cfg.Render.EnemyShot
	}
	r := math.Max(1.5, cfg.Render.ShotRadius*scale)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*1.8), withAlpha(c, 0.3), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
}

func drawPowerUp(screen *ebiten.Image, p Projector, t components.TransformData, kind cfg.PowerUpKind) {
	x, y, scale, ok := p.Project(t.Position)
	if !ok {
		return
	}
	c := cfg.PowerUp.Types[kind].Color
	r := 0.7 * scale
	// Spinning diamond, squashed horizontally by the spin angle
	half := r * math.Max(0.15, math.Abs(math.Cos(t.Facing)))
	top := [2]float64{x, y - r}
	bottom := [2]float64{x, y + r}
	left := [2]float64{x - half, y}
	right := [2]float64{x + half, y}
	strokeTriangle(screen, top, left, right, 2, c)
	strokeTriangle(screen, bottom, left, right, 2, c)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*0.3), withAlpha(c, 0.6), true)
}

func drawEffect(screen *ebiten.Image, p Projector, effect *components.EffectData) {
	x, y, scale, ok := p.Project(effect.Position)
	if !ok {
		return
	}
	t := effect.Progress()
	fade := 1 - t

	switch effect.Kind {
	case components.EffectHit:
		r := (0.3 + t) * effect.Scale * scale
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, withAlpha(cfg.Render.HitTint, fade), true)

	case components.EffectExplosion:
		if t < 0.3 {
			flash := (0.5 + 3*t) * effect.Scale * scale
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(flash), withAlpha(cfg.Render.ExplosionTint, 1-t/0.3), true)
		}
		for _, particle := range effect.Particles {
			px, py, ps, ok := p.Project(particle.Position)
			if !ok {
				continue
			}
			vector.DrawFilledCircle(screen, float32(px), float32(py), float32(math.Max(1, 0.2*ps)), withAlpha(cfg.Render.ExplosionTint, fade), true)
		}

	case components.EffectShieldImpact:
		r := (1.4 + 0.6*t) * scale
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 3, withAlpha(cfg.Render.ShieldColor, 2*fade), true)

	case components.EffectPowerUpCollect:
		r := (0.5 + 1.5*t) * scale
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, withAlpha(cfg.White, fade), true)

	case components.EffectShieldBubble:
		r := 1.4 * effect.Scale * scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), withAlpha(cfg.Render.ShieldColor, 0.5), true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, cfg.Render.ShieldColor, true)

	case components.EffectMuzzleFlash:
		r := 0.35 * scale * (1 + t)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), withAlpha(cfg.Render.ShotColor, fade), true)
	}
}

func strokeTriangle(screen *ebiten.Image, a, b, c [2]float64, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, clr, true)
	vector.StrokeLine(screen, float32(b[0]), float32(b[1]), float32(c[0]), float32(c[1]), width, clr, true)
	vector.StrokeLine(screen, float32(c[0]), float32(c[1]), float32(a[0]), float32(a[1]), width, clr, true)
}

// withAlpha scales a color's opacity, keeping it premultiplied.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = gamemath.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
