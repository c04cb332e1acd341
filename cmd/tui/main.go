// Command tui runs the game in a terminal: a top-down radar of the arena,
// steered with the arrow keys.
package main

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/automoto/lockstrike/assets"
	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
	"github.com/automoto/lockstrike/settings"
	"github.com/automoto/lockstrike/systems"
	"github.com/automoto/lockstrike/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

// Terminals report key presses but not releases, so a steering key holds
// for this long after its last repeat.
const steerHold = 250 * time.Millisecond

type app struct {
	screen tcell.Screen
	sim    *game.Simulation
	status *Status
	sound  *terminalSound

	steer      float64
	steerUntil time.Time
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for a time based seed")
	mute := flag.Bool("mute", false, "disable audio")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The terminal is the display, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	store, err := settings.Open("lockstrike")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	prefs := store.Load()
	if *mute {
		prefs.Muted = true
	}

	a, err := newApp(*seed, prefs)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}
	a.run()
}

func newApp(seed int64, prefs settings.Settings) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{screen: screen, status: &Status{}}

	var player game.SoundPlayer
	if vol := prefs.EffectiveSFX(); vol > 0 {
		ts, err := newTerminalSound(vol)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Warning: audio initialization failed: %v", err)
		} else {
			a.sound = ts
			player = ts
		}
	}

	a.sim = game.New(a.status, player)
	if layout, err := assets.LoadArena(assets.DefaultArenaPath); err != nil {
		log.Printf("Warning: using built-in arena: %v", err)
	} else {
		a.sim.SetArena(layout)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.sim.SetRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)))

	a.sim.StartGame()
	return a, nil
}

func (a *app) run() {
	defer a.close()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !a.handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			if now.After(a.steerUntil) {
				a.steer = 0
			}
			a.sim.SetSteer(a.steer)
			a.sim.Update(now.Sub(last).Seconds())
			last = now
			a.status.Paused = a.sim.Paused()
			a.draw()
		}
	}
}

func (a *app) close() {
	a.sim.ReturnToMenu()
	a.screen.Fini()
	if a.sound != nil {
		a.sound.Close()
	}
}

// handle applies one terminal event and reports whether to keep running.
func (a *app) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.holdSteer(-1, now)
		case tcell.KeyRight:
			a.holdSteer(1, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				a.holdSteer(-1, now)
			case 'd':
				a.holdSteer(1, now)
			case 'p':
				a.sim.TogglePause()
			case 'r':
				a.status.Result = ""
				a.sim.RestartGame()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) holdSteer(dir float64, now time.Time) {
	a.steer = dir
	a.steerUntil = now.Add(steerHold)
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if height < 3 {
		a.screen.Show()
		return
	}

	radar := NewRadar(width, height-2)
	w := a.sim.World()

	playerZ := cfg.Player.StartPosition.Z
	playerEntry, hasPlayer := systems.GetPlayer(w)
	if hasPlayer {
		playerZ = components.Transform.Get(playerEntry).Position.Z
	}

	edge := tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta)
	for _, x := range []float64{-cfg.Player.MaxX, cfg.Player.MaxX} {
		col, ok := radar.Column(x)
		if !ok {
			continue
		}
		for row := 0; row < radar.Rows; row++ {
			a.screen.SetContent(col, row, '.', nil, edge)
		}
	}

	plot := func(e *donburi.Entry, r rune, style tcell.Style) {
		pos := components.Transform.Get(e).Position
		if col, row, ok := radar.Cell(playerZ, pos); ok {
			a.screen.SetContent(col, row, r, nil, style)
		}
	}

	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		kind := components.PowerUp.Get(e).Kind
		plot(e, rune(strings.ToUpper(kind.String())[0]), tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	})
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Side == cfg.SidePlayer {
			plot(e, '|', tcell.StyleDefault.Foreground(tcell.ColorYellow))
			return
		}
		plot(e, '*', tcell.StyleDefault.Foreground(tcell.ColorRed))
	})

	var locked donburi.Entity
	if hasPlayer {
		locked = components.Player.Get(playerEntry).LockTarget
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		style := tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
		if e.Entity() == locked {
			style = style.Reverse(true)
		}
		plot(e, enemyGlyph(components.Enemy.Get(e).Kind), style)
	})
	if hasPlayer {
		plot(playerEntry, '^', tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue).Bold(true))
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawString(a.screen, 0, height-2, strings.Repeat("-", width), edge)
	drawString(a.screen, 0, height-1, StatusLine(*a.status), statusStyle)
	a.screen.Show()
}

func enemyGlyph(kind cfg.EnemyKind) rune {
	switch kind {
	case cfg.EnemyShooter:
		return 's'
	case cfg.EnemyTank:
		return 'T'
	}
	return 'r'
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
