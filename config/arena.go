package config

import (
	"slices"

	"github.com/automoto/lockstrike/gamemath"
)

// SpawnLane is a point enemies enter the arena from.
type SpawnLane struct {
	X, Z  float64
	Kinds []EnemyKind // empty allows every kind
}

// Allows reports whether the lane accepts enemies of kind k.
func (l SpawnLane) Allows(k EnemyKind) bool {
	return len(l.Kinds) == 0 || slices.Contains(l.Kinds, k)
}

// ArenaLayout holds the spawn lanes and the player start.
type ArenaLayout struct {
	Name        string
	PlayerStart gamemath.Vec3
	Lanes       []SpawnLane
}

// DefaultArena is used when no layout file can be loaded.
func DefaultArena() ArenaLayout {
	lanes := make([]SpawnLane, 0, 5)
	for _, x := range []float64{-16, -8, 0, 8, 16} {
		lanes = append(lanes, SpawnLane{X: x, Z: World.SpawnZ})
	}
	return ArenaLayout{
		Name:        "default",
		PlayerStart: Player.StartPosition,
		Lanes:       lanes,
	}
}
