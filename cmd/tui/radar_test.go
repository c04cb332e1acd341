package main

import (
	"strings"
	"testing"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/gopxl/beep"
)

func TestRadar_Cell(t *testing.T) {
	r := Radar{Cols: 40, Rows: 20, Ahead: 90, Behind: 10, HalfWidth: 20}

	tests := []struct {
		name     string
		pos      gamemath.Vec3
		col, row int
		ok       bool
	}{
		{"player", gamemath.Vec3{X: 0, Z: 0}, 20, 18, true},
		{"far left ahead", gamemath.Vec3{X: -20, Z: -90}, 0, 0, true},
		{"right edge is outside", gamemath.Vec3{X: 20, Z: 0}, 0, 0, false},
		{"too far ahead", gamemath.Vec3{X: 0, Z: -91}, 0, 0, false},
		{"behind the view", gamemath.Vec3{X: 0, Z: 10}, 0, 0, false},
		{"height is ignored", gamemath.Vec3{X: 0, Y: 5, Z: -45}, 20, 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := r.Cell(0, tt.pos)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (col != tt.col || row != tt.row) {
				t.Errorf("cell = (%d, %d), want (%d, %d)", col, row, tt.col, tt.row)
			}
		})
	}
}

func TestRadar_FollowsPlayerDepth(t *testing.T) {
	r := Radar{Cols: 40, Rows: 20, Ahead: 90, Behind: 10, HalfWidth: 20}

	_, atOrigin, _ := r.Cell(0, gamemath.Vec3{Z: 0})
	_, moved, _ := r.Cell(50, gamemath.Vec3{Z: 50})
	if atOrigin != moved {
		t.Errorf("player row changed with depth: %d vs %d", atOrigin, moved)
	}
}

func TestRadar_EmptyView(t *testing.T) {
	r := Radar{}
	if _, _, ok := r.Cell(0, gamemath.Vec3{}); ok {
		t.Error("zero sized radar should not place anything")
	}
	if _, ok := r.Column(0); ok {
		t.Error("zero sized radar should not have columns")
	}
}

func TestNewRadar_ShowsLanes(t *testing.T) {
	r := NewRadar(80, 24)
	for _, x := range []float64{-cfg.Player.MaxX, cfg.Player.MaxX} {
		if _, ok := r.Column(x); !ok {
			t.Errorf("lane edge %v is off screen", x)
		}
	}
	if _, _, ok := r.Cell(0, gamemath.Vec3{Z: cfg.World.SpawnZ}); !ok {
		t.Error("spawn depth is off screen")
	}
}

func TestStatusLine(t *testing.T) {
	s := &Status{}
	s.UpdateScoreDisplay(1200)
	s.UpdateHealthDisplay(80, 100)
	s.UpdateWaveDisplay(3, 10, 0.5)
	s.UpdatePowerUpDisplay(map[cfg.PowerUpKind]float64{
		cfg.PowerUpSpeed:  4.2,
		cfg.PowerUpShield: 9,
	})

	line := StatusLine(*s)
	for _, want := range []string{"SCORE 1200", "HP 80/100", "WAVE 3/10  50%", "SHIELD 9s  SPEED 4s"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}

	s.Paused = true
	if !strings.Contains(StatusLine(*s), "PAUSED") {
		t.Error("paused status not shown")
	}

	s.OnVictory(5000, 10)
	line = StatusLine(*s)
	if !strings.Contains(line, "VICTORY") || strings.Contains(line, "PAUSED") {
		t.Errorf("end status = %q", line)
	}
}

func TestRepeat_RefillsAcrossPasses(t *testing.T) {
	passes := 0
	r := &repeat{next: func() beep.Streamer {
		passes++
		return beep.Silence(3)
	}}

	buf := make([][2]float64, 7)
	n, ok := r.Stream(buf)
	if n != 7 || !ok {
		t.Fatalf("Stream = (%d, %v), want (7, true)", n, ok)
	}
	if passes != 3 {
		t.Errorf("passes = %d, want 3", passes)
	}
}

func TestRepeat_StopsWhenEmpty(t *testing.T) {
	r := &repeat{next: func() beep.Streamer { return nil }}
	if n, ok := r.Stream(make([][2]float64, 4)); n != 0 || ok {
		t.Errorf("Stream = (%d, %v), want (0, false)", n, ok)
	}

	r = &repeat{next: func() beep.Streamer { return beep.Silence(0) }}
	if n, ok := r.Stream(make([][2]float64, 4)); n != 0 || ok {
		t.Errorf("Stream over empty passes = (%d, %v), want (0, false)", n, ok)
	}
}
