package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/lockstrike/assets"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
	"github.com/automoto/lockstrike/input"
	"github.com/automoto/lockstrike/render"
	"github.com/automoto/lockstrike/systems"
	"github.com/automoto/lockstrike/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one simulation and draws it with the chase camera.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         *Deps
	once         sync.Once

	sim       *game.Simulation
	hud       *render.HUD
	pauseMenu *ui.Menu
	endMenu   *ui.Menu
}

// NewPlayScene creates a play scene that starts a run on its first update
func NewPlayScene(sc SceneChanger, deps *Deps) *PlayScene {
	return &PlayScene{sceneChanger: sc, deps: deps}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ps.hud = render.NewHUD()

	var player game.SoundPlayer
	if ps.deps.Sound != nil {
		player = ps.deps.Sound
	}
	ps.sim = game.New(ps.hud, player)

	layout, err := assets.LoadArena(assets.DefaultArenaPath)
	if err != nil {
		log.Printf("Warning: using built-in arena: %v", err)
	} else {
		ps.sim.SetArena(layout)
	}

	seed := ps.deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ps.sim.SetRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)))

	ps.pauseMenu = ui.NewPauseMenu(ps.togglePause, ps.restart, ps.returnToMenu)

	e := ecs.NewECS(ps.sim.World())

	// Input first, then controls, then the simulation step
	e.AddSystem(input.Update)
	e.AddSystem(ps.updateControls)
	e.AddSystem(ps.updateSimulation)
	e.AddSystem(render.UpdateCamera)
	e.AddSystem(ps.updateHUD)

	e.AddRenderer(render.LayerWorld, render.DrawGround)
	e.AddRenderer(render.LayerWorld, render.DrawEntities)
	e.AddRenderer(render.LayerHUD, ps.hud.DrawFunc())
	e.AddRenderer(render.LayerOverlay, render.DrawPause)
	e.AddRenderer(render.LayerOverlay, render.DrawEndDim)
	e.AddRenderer(render.LayerOverlay, ps.drawMenus)

	ps.ecs = e

	ps.hud.Watch(ps.sim.World())
	ps.sim.StartGame()
	render.GetOrCreateCamera(ps.sim.World())
	render.SnapCamera(ps.sim.World())
}

func (ps *PlayScene) updateControls(e *ecs.ECS) {
	in := input.GetOrCreate(e.World)
	up := in.Action(input.ActionMenuUp).JustPressed
	down := in.Action(input.ActionMenuDown).JustPressed
	sel := in.Action(input.ActionMenuSelect).JustPressed

	switch ps.sim.Phase() {
	case cfg.PhasePlaying:
		if ps.sim.Paused() {
			ps.pauseMenu.Update()
			back := in.Action(input.ActionPause).JustPressed || in.Action(input.ActionMenuBack).JustPressed
			ps.deps.menuSounds(up, down, sel)
			ps.pauseMenu.Navigate(up, down, sel, back)
			return
		}
		ps.sim.SetSteer(in.Steer())
		switch {
		case in.Action(input.ActionPause).JustPressed:
			ps.togglePause()
		case in.Action(input.ActionRestart).JustPressed:
			ps.restart()
		}

	case cfg.PhaseGameOver, cfg.PhaseVictory:
		if ps.endMenu == nil {
			ps.showEndMenu()
		}
		if in.Action(input.ActionRestart).JustPressed {
			ps.restart()
			return
		}
		ps.deps.menuSounds(up, down, sel)
		ps.endMenu.Update()
		ps.endMenu.Navigate(up, down, sel, false)
	}
}

func (ps *PlayScene) updateSimulation(e *ecs.ECS) {
	ps.sim.Update(1 / float64(ebiten.TPS()))
}

func (ps *PlayScene) updateHUD(e *ecs.ECS) {
	if !ps.sim.Paused() {
		ps.hud.Update(1 / float64(ebiten.TPS()))
	}
	if ps.deps.Sound == nil {
		return
	}
	if player, ok := systems.GetPlayer(e.World); ok {
		ps.deps.Sound.SetListener(components.Transform.Get(player).Position)
	}
}

func (ps *PlayScene) drawMenus(e *ecs.ECS, screen *ebiten.Image) {
	switch {
	case ps.endMenu != nil:
		ps.endMenu.Draw(screen)
	case ps.sim.Paused():
		ps.pauseMenu.Draw(screen)
	}
}

func (ps *PlayScene) showEndMenu() {
	score, wave, victory := 0, 0, ps.sim.Phase() == cfg.PhaseVictory
	if result := ps.hud.Result(); result != nil {
		score, wave, victory = result.Score, result.Wave, result.Victory
	}
	ps.endMenu = ui.NewEndMenu(victory, score, wave, cfg.Wave.TotalWaves, ps.restart, ps.returnToMenu)
}

func (ps *PlayScene) togglePause() {
	ps.sim.TogglePause()
}

func (ps *PlayScene) restart() {
	ps.hud.Reset()
	ps.endMenu = nil
	ps.sim.RestartGame()
	render.SnapCamera(ps.sim.World())
}

func (ps *PlayScene) returnToMenu() {
	ps.sim.ReturnToMenu()
	ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.deps))
}
