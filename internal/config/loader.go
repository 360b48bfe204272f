package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const WeaponsFile = "weapons.yaml"

var ErrInvalid = errors.New("invalid config")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func LoadAll(dir string) (*WeaponsConfig, error) {
	var wc WeaponsConfig
	path := filepath.Join(dir, WeaponsFile)
	if err := loadYAML(path, &wc); err != nil {
		return nil, err
	}
	if err := wc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &wc, nil
}

// Validate rejects weapons the simulator cannot fire. An inverted arena is
// allowed: Clamp checks Min first and falls back to Max.
func (c *WeaponsConfig) Validate() error {
	if len(c.Weapons) == 0 {
		return fmt.Errorf("%w: no weapons", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		switch {
		case w.ID == "":
			return fmt.Errorf("%w: weapon #%d has no id", ErrInvalid, i)
		case seen[w.ID]:
			return fmt.Errorf("%w: duplicate weapon id %q", ErrInvalid, w.ID)
		case w.Spread < 0:
			return fmt.Errorf("%w: weapon %q: negative spread %g", ErrInvalid, w.ID, w.Spread)
		case w.Speed <= 0:
			return fmt.Errorf("%w: weapon %q: speed must be positive, got %g", ErrInvalid, w.ID, w.Speed)
		case w.Flight < 0:
			return fmt.Errorf("%w: weapon %q: negative flight %g", ErrInvalid, w.ID, w.Flight)
		}
		seen[w.ID] = true
	}
	return nil
}
