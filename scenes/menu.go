package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lockstrike/input"
	"github.com/automoto/lockstrike/render"
	"github.com/automoto/lockstrike/settings"
	"github.com/automoto/lockstrike/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu and the settings panel
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         *Deps
	once         sync.Once

	main         *ui.Menu
	settings     *ui.SettingsPanel
	showSettings bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps *Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.main = ui.NewMainMenu(ms.startGame, ms.openSettings, ms.sceneChanger.Quit)
	ms.settings = ui.NewSettingsPanel(ms.deps.Store, ms.deps.Settings, ms.applySettings, ms.closeSettings)

	ms.ecs.AddSystem(input.Update)
	ms.ecs.AddSystem(ms.updateMenu)

	ms.ecs.AddRenderer(render.LayerOverlay, ms.drawMenu)

	if ms.deps.Sound != nil {
		ms.deps.Sound.StopAll()
	}
}

func (ms *MenuScene) active() *ui.Menu {
	if ms.showSettings {
		return ms.settings.Menu
	}
	return ms.main
}

func (ms *MenuScene) updateMenu(e *ecs.ECS) {
	in := input.GetOrCreate(e.World)
	up := in.Action(input.ActionMenuUp).JustPressed
	down := in.Action(input.ActionMenuDown).JustPressed
	sel := in.Action(input.ActionMenuSelect).JustPressed

	ms.deps.menuSounds(up, down, sel)
	menu := ms.active()
	menu.Update()
	menu.Navigate(up, down, sel, ms.showSettings && in.Action(input.ActionMenuBack).JustPressed)
}

func (ms *MenuScene) drawMenu(e *ecs.ECS, screen *ebiten.Image) {
	ms.active().Draw(screen)
}

func (ms *MenuScene) startGame() {
	ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.deps))
}

func (ms *MenuScene) openSettings() {
	ms.showSettings = true
}

func (ms *MenuScene) closeSettings() {
	ms.showSettings = false
}

func (ms *MenuScene) applySettings(s settings.Settings) {
	ms.deps.ApplySettings(s)
}
