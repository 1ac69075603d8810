// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the game and its frontends.
type SnakeConfig struct {
	Board    BoardConfig  `yaml:"board"`
	TickRate int          `yaml:"tick_rate"`
	Colors   ColorsConfig `yaml:"colors"`
	Window   WindowConfig `yaml:"window"`
	SSH      SSHConfig    `yaml:"ssh"`
}

// BoardConfig defines the playing field in pixels.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// ColorsConfig holds #rrggbb colour strings.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
}

// WindowConfig defines the desktop window frontend.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
}

// SSHConfig defines the SSH server frontend.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// GridSize returns the number of columns and rows the board holds.
func (c SnakeConfig) GridSize() (int, int) {
	if c.Board.CellSize <= 0 {
		return 0, 0
	}
	return c.Board.Width / c.Board.CellSize, c.Board.Height / c.Board.CellSize
}
