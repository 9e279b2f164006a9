// Package prefs persists window preferences between runs.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings represents the preferences stored on disk
type Settings struct {
	Scale      float64 `json:"scale"`
	Fullscreen bool    `json:"fullscreen"`
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Settings. A Store without a backend is valid and
// silently keeps nothing.
type Store struct {
	items itemStore
}

// Open initializes the gdata manager for settings storage.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Store{}, fmt.Errorf("open preferences: %w", err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved settings, or nil if there are none.
func (s *Store) Load() (*Settings, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	return &settings, nil
}

// Save writes settings to disk
func (s *Store) Save(settings Settings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize preferences: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	log.Debug("preferences saved", "scale", settings.Scale, "fullscreen", settings.Fullscreen)
	return nil
}
