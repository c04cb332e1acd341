package scenes

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/game"
	"github.com/automoto/lockstrike/settings"
	"github.com/automoto/lockstrike/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Deps are the host services shared by every scene.
type Deps struct {
	Store    *settings.Store
	Settings settings.Settings
	Sound    *sound.Player
	Seed     int64 // 0 = time based
	Mute     bool  // session mute that saved settings cannot undo
}

// ApplySettings makes s current for audio and the window.
func (d *Deps) ApplySettings(s settings.Settings) {
	d.Settings = s
	if d.Sound != nil {
		session := s
		session.Muted = session.Muted || d.Mute
		d.Sound.ApplySettings(session)
	}
	ebiten.SetFullscreen(s.Fullscreen)
}

// menuSounds plays the blips for one frame of keyboard menu input.
func (d *Deps) menuSounds(up, down, sel bool) {
	if d.Sound == nil {
		return
	}
	switch {
	case sel:
		d.Sound.Play(cfg.SoundMenuSelect.String(), game.SoundOptions{Volume: 1})
	case up || down:
		d.Sound.Play(cfg.SoundMenuNavigate.String(), game.SoundOptions{Volume: 1})
	}
}
