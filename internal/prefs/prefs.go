// Package prefs persists the demo's user choices between runs.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences are the choices made at runtime. Empty fields mean "use the
// config file value".
type Preferences struct {
	Style     string `yaml:"style,omitempty"`
	IconColor string `yaml:"iconColor,omitempty"`
	Muted     bool   `yaml:"muted"`
}

const (
	prefsObject   = "preferences"
	prefsProperty = "button"
)

// Store saves Preferences through gdata. A Store without a manager keeps
// everything in memory.
type Store struct {
	manager *gdata.Manager
	current Preferences
}

// Open creates a store backed by the gdata directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Load reads saved preferences. A missing entry yields the zero value.
func (s *Store) Load() (Preferences, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return s.current, nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return s.current, fmt.Errorf("failed to load preferences: %w", err)
	}
	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return s.current, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	s.current = p
	log.Printf("[Prefs] preferences loaded")
	return p, nil
}

// Save records p and writes it out when a manager is present.
func (s *Store) Save(p Preferences) error {
	s.current = p
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Current returns the last loaded or saved preferences.
func (s *Store) Current() Preferences {
	return s.current
}
