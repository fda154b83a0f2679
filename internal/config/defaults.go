package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// final fallback if the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "cyan",
				16:   "bright_cyan",
				32:   "yellow",
				64:   "bright_yellow",
				128:  "orange",
				256:  "bright_red",
				512:  "magenta",
				1024: "bright_magenta",
				2048: "bright_green",
			},
		},
	}
}
