// Package theme persists the light/dark preference.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

// Theme is the page color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse returns the theme named by s, or Light for anything unrecognized.
func Parse(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark
	default:
		return Light
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Background returns the page background color for t.
func (t Theme) Background(cfg config.ThemeConfig) components.Color {
	if t == Dark {
		return components.ColorFrom(cfg.Dark)
	}
	return components.ColorFrom(cfg.Light)
}

// Load reads the stored preference. A missing file yields fallback.
func Load(path string, fallback Theme) (Theme, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(string(data)), nil
}

// Save stores the preference. An empty path disables persistence.
func Save(path string, t Theme) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating theme directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(string(t)+"\n"), 0644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	return nil
}
