// Package settings persists the player's audio preferences between sessions.
package settings

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Settings is the data stored on disk
type Settings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// Default returns the settings used before anything is saved.
func Default() Settings {
	return Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// EffectiveMusic is the music volume after mute.
func (s Settings) EffectiveMusic() float64 {
	if s.Muted {
		return 0
	}
	return gamemath.Clamp(s.MusicVolume, 0, 1)
}

// EffectiveSFX is the effects volume after mute.
func (s Settings) EffectiveSFX() float64 {
	if s.Muted {
		return 0
	}
	return gamemath.Clamp(s.SFXVolume, 0, 1)
}

// itemStore is the part of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store loads and saves settings. A Store without a backend keeps
// everything in memory.
type Store struct {
	items itemStore
}

// Open creates a store backed by the platform's app data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Store{}, fmt.Errorf("open settings storage: %w", err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved settings, or the defaults when nothing is saved or
// the saved data cannot be read.
func (s *Store) Load() Settings {
	if s == nil || s.items == nil {
		return Default()
	}

	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return Default()
	}
	if len(data) == 0 {
		return Default()
	}

	settings := Default()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return Default()
	}
	return settings
}

// Save writes the settings to disk.
func (s *Store) Save(settings Settings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
