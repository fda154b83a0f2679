// term2048 is a terminal rendition of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	term2048                 - Play a game
//	term2048 version         - Print the version
//
// Flags:
//
//	--seed <value>    - Set RNG seed for reproducible games (0 = random)
//	--config <path>   - Path to a custom theme config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var (
	flagSeed   int64
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "term2048",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys, WASD or vim keys. Tiles with equal
values merge when they collide; each merge doubles the value. The game
ends when the board is full and no merge is possible.

Controls:
  ` + t2048.Controls() + `

Examples:
  term2048
  term2048 --seed 42
  term2048 --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runGame,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom theme config YAML")

	rootCmd.AddCommand(versionCmd)
}

func runGame(cmd *cobra.Command, args []string) {
	// Probe the terminal for the initial screen size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	theme, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			// An explicit config path that does not load is a hard error
			logger.Error("cannot load config", "path", flagConfig, "err", err)
			os.Exit(1)
		}
		logger.Warn("falling back to default theme", "err", err)
		theme = config.DefaultConfig()
	}

	if runErr := tui.Run(cfg, theme.Theme); runErr != nil {
		logger.Error("game exited with error", "err", runErr)
		os.Exit(1)
	}
}
