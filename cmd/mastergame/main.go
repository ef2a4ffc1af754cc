// mastergame is a small game shell with Tetris and Snake, playable in the
// terminal or in a pixel window.
//
// Usage:
//
//	mastergame                    - Start the main menu (same as "menu")
//	mastergame menu               - Pick a game from the main menu
//	mastergame play <config>      - Play the game described by a config file
//	mastergame init <game> [path] - Write the default config of a game
//	mastergame list               - List available games
//
// Global flags:
//
//	--frontend <name>  - tui, console or gui (default: tui)
//	--fps <rate>       - Frame rate of the front end (default: 30)
//	--seed <value>     - RNG seed for reproducible sessions
//	--config-dir <dir> - Where the menu keeps config files (default: .)
//	--sound-dir <dir>  - Directory holding the sound effect WAV files
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mastergame/internal/games/snake"
	_ "github.com/vovakirdan/mastergame/internal/games/tetris"
)

const (
	frontendTUI     = "tui"
	frontendConsole = "console"
	frontendGUI     = "gui"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagFrontend  string
	flagConfigDir string
	flagSoundDir  string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mastergame",
	Short: "Master Game - Tetris and Snake in your terminal",
	Long: `Master Game bundles two classic games behind one menu.

Available commands:
  menu     - Main menu (default)
  play     - Play the game described by a config file
  init     - Write a default config file
  list     - Show all available games

Examples:
  mastergame
  mastergame --frontend gui
  mastergame play config_tetris.ast
  mastergame init snake my_snake.ast`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate of the front end")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", frontendTUI, "Front end: tui, console or gui")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", ".", "Directory for the menu's config files")
	rootCmd.PersistentFlags().StringVar(&flagSoundDir, "sound-dir", "", "Directory with sound effect WAV files (empty = silent)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs only go to --log-file. The returned closer releases the file.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mastergame",
		Level:           level,
	})
	return logger, closer, nil
}
