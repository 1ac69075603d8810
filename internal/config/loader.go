package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of DefaultSnakeConfig, so a file may set only
// the keys it cares about. The result is validated.
func Load(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, fileCfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate checks that the board can hold at least one cell, the game
// ticks and every colour parses.
func (c SnakeConfig) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalid, c.Board.CellSize)
	}
	if cols, rows := c.GridSize(); cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: board %dx%d holds no %d px cell", ErrInvalid, c.Board.Width, c.Board.Height, c.Board.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window.scale must be positive, got %d", ErrInvalid, c.Window.Scale)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colours.
func (c SnakeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"border", c.Colors.Border, &p.Border},
		{"apple", c.Colors.Apple, &p.Apple},
		{"snake", c.Colors.Snake, &p.Snake},
	}
	for _, f := range fields {
		col, err := parseColor(f.hex)
		if err != nil {
			return p, fmt.Errorf("%w: colors.%s: %w", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// parseColor converts a #rrggbb (or #rgb) string to a core.Color.
func parseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b), nil
}

// Runtime converts the file config into the game's runtime config.
// tickRate and seed override the file when non-zero.
func (c SnakeConfig) Runtime(tickRate int, seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, _ := c.Palette() //nolint:errcheck // checked by Validate

	rt := core.RuntimeConfig{
		BoardW:   c.Board.Width,
		BoardH:   c.Board.Height,
		CellSize: c.Board.CellSize,
		TickRate: c.TickRate,
		Seed:     seed,
		Palette:  palette,
	}
	if tickRate > 0 {
		rt.TickRate = tickRate
	}
	return rt, nil
}

// Marshal renders the config as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
