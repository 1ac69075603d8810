package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		TickRate: 10,
		Colors: ColorsConfig{
			Background: "#000000",
			Border:     "#5dd8e4",
			Apple:      "#ff0000",
			Snake:      "#00ff00",
		},
		Window: WindowConfig{
			Title: "Snake",
			Scale: 1,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
