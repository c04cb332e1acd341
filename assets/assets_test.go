package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/lockstrike/config"
)

func TestLoadArena_Default(t *testing.T) {
	layout, err := LoadArena(DefaultArenaPath)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if layout.Name != "canyon" {
		t.Errorf("name = %q, want canyon", layout.Name)
	}
	if len(layout.Lanes) != 5 {
		t.Fatalf("lanes = %d, want 5", len(layout.Lanes))
	}

	wantX := []float64{-16, -8, 0, 8, 16}
	for i, lane := range layout.Lanes {
		if lane.X != wantX[i] {
			t.Errorf("lane %d x = %f, want %f", i, lane.X, wantX[i])
		}
		if lane.Z >= cfg.World.MaxZ || lane.Z <= cfg.World.MinZ {
			t.Errorf("lane %d z = %f outside the arena", i, lane.Z)
		}
	}

	if layout.Lanes[0].Allows(cfg.EnemyShooter) {
		t.Error("outer lane should not allow shooters")
	}
	if !layout.Lanes[1].Allows(cfg.EnemyShooter) {
		t.Error("lane without kinds should allow everything")
	}
	if layout.PlayerStart.X != 0 || layout.PlayerStart.Z != 0 {
		t.Errorf("player start = %v, want origin", layout.PlayerStart)
	}
}

const mapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="100" height="120" tilewidth="8" tileheight="8" infinite="0">
`

func TestLoadArenaFS_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(mapHeader + `</map>`)},
		"badkind.tmx": {Data: []byte(mapHeader + ` <objectgroup id="1" name="EnemySpawn">
  <object id="1" name="lane" x="400" y="160">
   <properties><property name="kinds" value="runner,dragon"/></properties>
   <point/>
  </object>
 </objectgroup>
</map>`)},
	}

	if _, err := LoadArenaFS(fsys, "empty.tmx"); !errors.Is(err, ErrNoLanes) {
		t.Errorf("empty map err = %v, want ErrNoLanes", err)
	}
	if _, err := LoadArenaFS(fsys, "badkind.tmx"); err == nil {
		t.Error("expected an error for an unknown enemy kind")
	}
	if _, err := LoadArenaFS(fsys, "missing.tmx"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds(" runner , tank")
	if err != nil {
		t.Fatalf("parseKinds: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != cfg.EnemyRunner || kinds[1] != cfg.EnemyTank {
		t.Errorf("kinds = %v", kinds)
	}

	if kinds, err := parseKinds(""); err != nil || kinds != nil {
		t.Errorf("empty = %v, %v; want nil, nil", kinds, err)
	}
}
