package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used on first run, before anything was saved.
const Default = Dark

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) Valid() bool {
	return t == Dark || t == Light
}

type preferences struct {
	Theme Theme `yaml:"theme"`
}

// Store persists the display preference as a small YAML file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved theme. A missing file yields Default with no
// error; an unreadable or invalid file yields Default and the error.
func (s *Store) Load() (Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default, nil
	}
	if err != nil {
		return Default, fmt.Errorf("failed to read theme file: %w", err)
	}

	var prefs preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Default, fmt.Errorf("failed to decode theme file: %w", err)
	}
	if !prefs.Theme.Valid() {
		return Default, fmt.Errorf("invalid theme %q", prefs.Theme)
	}
	return prefs.Theme, nil
}

func (s *Store) Save(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q", t)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}

	data, err := yaml.Marshal(preferences{Theme: t})
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
