// Package config provides YAML-based configuration loading for term2048.
// The only tunables are presentational: the grid geometry and spawn odds
// are fixed rules of the game.
package config

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/core"
)

// Config contains all user-facing configuration.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig maps tile values to display color names.
type ThemeConfig struct {
	Tiles map[int]string `yaml:"tiles"`
}

// colorNames maps YAML color names to core colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// Validate checks that every configured color name is known.
func (c Config) Validate() error {
	for value, name := range c.Theme.Tiles {
		if _, ok := colorNames[name]; !ok {
			return fmt.Errorf("config: unknown color %q for tile %d", name, value)
		}
	}
	return nil
}

// Palette resolves the theme into a value-to-color lookup. Values above the
// highest configured tile reuse that tile's color, so boards past 2048 stay
// readable without an endless theme.
func (t ThemeConfig) Palette() func(value int) core.Color {
	colors := make(map[int]core.Color, len(t.Tiles))
	maxValue := 0
	for value, name := range t.Tiles {
		if c, ok := colorNames[name]; ok {
			colors[value] = c
		}
		if value > maxValue {
			maxValue = value
		}
	}

	return func(value int) core.Color {
		if c, ok := colors[value]; ok {
			return c
		}
		if value > maxValue {
			if c, ok := colors[maxValue]; ok {
				return c
			}
		}
		return core.ColorDefault
	}
}
