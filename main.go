package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/fonts"
	"github.com/automoto/lockstrike/scenes"
	"github.com/automoto/lockstrike/settings"
	"github.com/automoto/lockstrike/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(deps *scenes.Deps) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, deps)
	} else {
		g.scene = scenes.NewMenuScene(g, deps)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start a run immediately")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "random seed, 0 for a time based seed")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "disable all audio for this session")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	store, err := settings.Open("lockstrike")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved := store.Load()

	session := saved
	if config.Debug.Mute {
		session.Muted = true
	}

	deps := &scenes.Deps{
		Store:    store,
		Settings: saved,
		Sound:    sound.NewPlayer(session),
		Seed:     config.Debug.Seed,
		Mute:     config.Debug.Mute,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(saved.Fullscreen)

	if err := ebiten.RunGame(NewGame(deps)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
