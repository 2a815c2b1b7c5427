package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

// Load loads the Lights Out configuration and applies its difficulty preset.
// Search order: customPath -> ~/.lightsout/config.yaml -> ./configs/lightsout.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fromFile := Default()
			if err := yaml.Unmarshal(data, &fromFile); err == nil {
				return finish(fromFile)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lightsout.yaml"); err == nil {
		fromFile := Default()
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return finish(fromFile)
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

// finish applies the loaded preset and validates the result.
func finish(cfg Config) (Config, error) {
	preset, err := ParsePreset(string(cfg.Difficulty.Preset))
	if err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightsout", filename)
}

// Validate reports every setting the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("board.size must be at least 1, got %d", c.Board.Size))
	}
	if c.Board.AltSize < 1 {
		errs = append(errs, fmt.Errorf("board.alt_size must be at least 1, got %d", c.Board.AltSize))
	}
	if c.Board.Strength < 0 {
		errs = append(errs, fmt.Errorf("board.strength must not be negative, got %d", c.Board.Strength))
	}
	if c.Runtime.TickRate < 1 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be at least 1, got %d", c.Runtime.TickRate))
	}
	if _, err := c.Theme.parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts the config into game options.
func (c Config) Options() (lightsout.Options, error) {
	theme, err := c.Theme.parse()
	if err != nil {
		return lightsout.Options{}, err
	}
	return lightsout.Options{
		Size:     c.Board.Size,
		AltSize:  c.Board.AltSize,
		Strength: c.Board.Strength,
		Theme:    theme,
	}, nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func (t ThemeConfig) parse() (lightsout.Theme, error) {
	theme := lightsout.DefaultTheme()
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"theme.on", t.On, &theme.On},
		{"theme.off", t.Off, &theme.Off},
		{"theme.cursor", t.Cursor, &theme.Cursor},
		{"theme.hint", t.Hint, &theme.Hint},
		{"theme.won", t.Won, &theme.Won},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := core.ParseColor(f.name)
		if !ok {
			return theme, fmt.Errorf("%s: unknown color %q", f.key, f.name)
		}
		*f.dst = c
	}
	return theme, nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
