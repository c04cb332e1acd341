package ui

import (
	"fmt"
	"log"
	"math"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/settings"
)

// NewMainMenu builds the title screen.
func NewMainMenu(onStart, onSettings, onExit func()) *Menu {
	return NewMenu(cfg.C.Title, []string{"Steer with A/D or the arrow keys. Your ship fires on its own."}, []Button{
		{Label: "Start", OnClick: onStart},
		{Label: "Settings", OnClick: onSettings},
		{Label: "Exit", OnClick: onExit},
	}, true)
}

// NewPauseMenu builds the panel shown over a paused run.
func NewPauseMenu(onResume, onRestart, onMenu func()) *Menu {
	return NewMenu("PAUSED", nil, []Button{
		{Label: "Restart", OnClick: onRestart},
		{Label: "Main Menu", OnClick: onMenu},
		{Label: "Resume", OnClick: onResume},
	}, false)
}

// NewEndMenu builds the game over or victory panel.
func NewEndMenu(victory bool, score, wave, totalWaves int, onRestart, onMenu func()) *Menu {
	title := "GAME OVER"
	if victory {
		title = "VICTORY"
	}
	return NewMenu(title, []string{
		fmt.Sprintf("Score %d", score),
		fmt.Sprintf("Wave %d / %d", wave, totalWaves),
	}, []Button{
		{Label: "Restart", OnClick: onRestart},
		{Label: "Main Menu", OnClick: onMenu},
	}, false)
}

const (
	settingMusic = iota
	settingSFX
	settingMute
	settingFullscreen
	settingBack
)

// SettingsPanel edits and persists the audio and display settings.
type SettingsPanel struct {
	*Menu
	Settings settings.Settings

	store    *settings.Store
	onChange func(settings.Settings)
}

// NewSettingsPanel builds the settings menu. onChange is called after each
// edit, once the new values have been saved.
func NewSettingsPanel(store *settings.Store, current settings.Settings, onChange func(settings.Settings), onBack func()) *SettingsPanel {
	p := &SettingsPanel{Settings: current, store: store, onChange: onChange}

	p.Menu = NewMenu("SETTINGS", nil, []Button{
		{Label: "", OnClick: func() { p.edit(settingMusic) }},
		{Label: "", OnClick: func() { p.edit(settingSFX) }},
		{Label: "", OnClick: func() { p.edit(settingMute) }},
		{Label: "", OnClick: func() { p.edit(settingFullscreen) }},
		{Label: "Back", OnClick: onBack},
	}, true)
	p.relabel()
	return p
}

func (p *SettingsPanel) edit(which int) {
	p.Settings = Apply(p.Settings, which)
	p.relabel()
	if err := p.store.Save(p.Settings); err != nil {
		log.Printf("Warning: %v", err)
	}
	if p.onChange != nil {
		p.onChange(p.Settings)
	}
}

func (p *SettingsPanel) relabel() {
	for i, label := range SettingLabels(p.Settings) {
		p.SetLabel(i, label)
	}
}

// Apply returns s with setting which advanced to its next value.
func Apply(s settings.Settings, which int) settings.Settings {
	switch which {
	case settingMusic:
		s.MusicVolume = NextStep(s.MusicVolume, cfg.Menu.VolumeSteps)
	case settingSFX:
		s.SFXVolume = NextStep(s.SFXVolume, cfg.Menu.VolumeSteps)
	case settingMute:
		s.Muted = !s.Muted
	case settingFullscreen:
		s.Fullscreen = !s.Fullscreen
	}
	return s
}

// SettingLabels returns the button labels for the editable settings.
func SettingLabels(s settings.Settings) []string {
	return []string{
		"Music: " + percent(s.MusicVolume),
		"Effects: " + percent(s.SFXVolume),
		"Mute: " + onOff(s.Muted),
		"Fullscreen: " + onOff(s.Fullscreen),
	}
}

// NextStep returns the first step above v, wrapping to the lowest step.
func NextStep(v float64, steps []float64) float64 {
	if len(steps) == 0 {
		return v
	}
	for _, step := range steps {
		if step > v+1e-6 {
			return step
		}
	}
	return steps[0]
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
