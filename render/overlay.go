package render

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause dims the frozen frame under the pause menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e.World) {
		return
	}
	drawDim(screen)
}

func drawDim(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.BlackOverlay, false)
}

// DrawEndDim darkens the arena behind the game over and victory menus.
func DrawEndDim(e *ecs.ECS, screen *ebiten.Image) {
	switch systems.GetOrCreateGame(e.World).Phase {
	case cfg.PhaseGameOver, cfg.PhaseVictory:
		drawDim(screen)
	}
}
