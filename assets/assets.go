package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:arena
var assetFS embed.FS

// DefaultArenaPath is the built-in layout shipped with the game.
const DefaultArenaPath = "arena/arena.tmx"

// ErrNoLanes is returned for layouts without any EnemySpawn objects.
var ErrNoLanes = errors.New("arena has no enemy spawn lanes")

// LoadArena reads a layout from the embedded assets.
func LoadArena(path string) (cfg.ArenaLayout, error) {
	return LoadArenaFS(assetFS, path)
}

// LoadArenaFS reads a Tiled map from fsys and converts it to world space.
// One tile is one world unit; the map's top-left corner sits at
// (World.MinX, World.MinZ).
//
// Object groups:
//   - EnemySpawn: one point per lane, optional "kinds" property listing the
//     enemy kinds allowed there, comma separated
//   - PlayerStart: the first object is the player start
func LoadArenaFS(fsys fs.FS, path string) (cfg.ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return cfg.ArenaLayout{}, fmt.Errorf("load arena %s: %w", path, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return cfg.ArenaLayout{}, fmt.Errorf("arena %s: invalid tile size %dx%d", path, levelMap.TileWidth, levelMap.TileHeight)
	}

	toWorld := func(x, y float64) gamemath.Vec3 {
		return gamemath.Vec3{
			X: cfg.World.MinX + x/float64(levelMap.TileWidth),
			Z: cfg.World.MinZ + y/float64(levelMap.TileHeight),
		}
	}

	layout := cfg.ArenaLayout{
		Name:        levelMap.Properties.GetString("name"),
		PlayerStart: cfg.Player.StartPosition,
	}
	if layout.Name == "" {
		layout.Name = path
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "EnemySpawn":
			for _, o := range og.Objects {
				kinds, err := parseKinds(o.Properties.GetString("kinds"))
				if err != nil {
					return cfg.ArenaLayout{}, fmt.Errorf("arena %s lane %q: %w", path, o.Name, err)
				}
				pos := toWorld(o.X, o.Y)
				layout.Lanes = append(layout.Lanes, cfg.SpawnLane{X: pos.X, Z: pos.Z, Kinds: kinds})
			}
		case "PlayerStart":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.PlayerStart = toWorld(o.X, o.Y)
			}
		}
	}

	if len(layout.Lanes) == 0 {
		return cfg.ArenaLayout{}, fmt.Errorf("arena %s: %w", path, ErrNoLanes)
	}

	// Left to right so lane order does not depend on object ids
	sort.Slice(layout.Lanes, func(i, j int) bool {
		return layout.Lanes[i].X < layout.Lanes[j].X
	})

	return layout, nil
}

func parseKinds(s string) ([]cfg.EnemyKind, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var kinds []cfg.EnemyKind
	for _, name := range strings.Split(s, ",") {
		kind, ok := cfg.ParseEnemyKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown enemy kind %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
