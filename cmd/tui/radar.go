package main

import (
	"fmt"
	"math"
	"strings"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
)

// Radar maps the x/z plane onto terminal cells, looking down with the
// player near the bottom row and the spawn lanes toward the top.
type Radar struct {
	Cols, Rows int
	Ahead      float64 // world units shown above the player
	Behind     float64 // world units shown below the player
	HalfWidth  float64 // world units shown either side of x = 0
}

func NewRadar(cols, rows int) Radar {
	return Radar{
		Cols:      cols,
		Rows:      rows,
		Ahead:     -cfg.World.SpawnZ + 10,
		Behind:    10,
		HalfWidth: cfg.Player.MaxX + 8,
	}
}

// Cell returns the terminal cell for a world position seen from a player at
// playerZ. ok is false when the point is outside the view.
func (r Radar) Cell(playerZ float64, pos gamemath.Vec3) (col, row int, ok bool) {
	if r.Cols <= 0 || r.Rows <= 0 {
		return 0, 0, false
	}
	top := playerZ - r.Ahead
	depth := r.Ahead + r.Behind

	fx := (pos.X + r.HalfWidth) / (2 * r.HalfWidth)
	fz := (pos.Z - top) / depth
	if fx < 0 || fx >= 1 || fz < 0 || fz >= 1 {
		return 0, 0, false
	}
	col = int(math.Floor(fx * float64(r.Cols)))
	row = int(math.Floor(fz * float64(r.Rows)))
	return col, row, true
}

// Column returns the terminal column for world x.
func (r Radar) Column(x float64) (int, bool) {
	fx := (x + r.HalfWidth) / (2 * r.HalfWidth)
	if r.Cols <= 0 || fx < 0 || fx >= 1 {
		return 0, false
	}
	return int(math.Floor(fx * float64(r.Cols))), true
}

// StatusLine formats the one-line summary drawn under the radar.
func StatusLine(s Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %d  HP %d/%d  WAVE %d/%d %3d%%", s.Score, s.Health, s.MaxHealth, s.Wave, s.TotalWaves, int(math.Round(s.Progress*100)))
	for _, line := range s.PowerUps {
		b.WriteString("  ")
		b.WriteString(line)
	}
	switch {
	case s.Result != "":
		b.WriteString("  " + s.Result + "  r restart  q quit")
	case s.Paused:
		b.WriteString("  PAUSED")
	}
	return b.String()
}
