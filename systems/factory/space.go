package factory

import (
	"github.com/automoto/lockstrike/archetypes"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the broad-phase grid covering the playable x/z volume.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	width := int(cfg.World.MaxX - cfg.World.MinX)
	height := int(cfg.World.MaxZ - cfg.World.MinZ)
	spaceData := resolv.NewSpace(width, height, cfg.World.GridCell, cfg.World.GridCell)
	components.Space.Set(space, spaceData)
	return space
}

// gridPad widens footprints by half a unit on each side. resolv ends an
// object's cell span at X+W-1, so a footprint narrower than one unit can
// occupy no cell at all.
const gridPad = 0.5

// FootprintHalfSize returns the grid half size for a body of the given radius.
// Two footprints share a cell whenever their centers are closer than the sum
// of their radii.
func FootprintHalfSize(radius float64) float64 {
	return radius + gridPad
}

// newGridObject creates a square footprint of the given half size centered on pos
// and adds it to the space when one exists.
func newGridObject(w donburi.World, pos gamemath.Vec3, half float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(gridX(pos.X)-half, gridY(pos.Z)-half, half*2, half*2, tags...)
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// PlaceObject moves a grid footprint so it stays centered on pos.
func PlaceObject(obj *resolv.Object, pos gamemath.Vec3) {
	if obj == nil {
		return
	}
	obj.X = gridX(pos.X) - obj.W/2
	obj.Y = gridY(pos.Z) - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}

func gridX(x float64) float64 { return x - cfg.World.MinX }
func gridY(z float64) float64 { return z - cfg.World.MinZ }
