package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/platform/gui"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start the main menu.

  1  - Tetris
  2  - Snake
  3  - Exit

Each game reads its config file (config_tetris.ast, config_snake.ast)
from --config-dir, writing the default one first if it is missing.
After a game ends, you return to the menu with the last result shown.

Examples:
  mastergame menu
  mastergame menu --frontend console
  mastergame menu --config-dir ~/games --sound-dir ./sounds`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := runtimeOptions(logger)
	logger.Info("menu started", "frontend", flagFrontend, "config_dir", flagConfigDir)

	if flagFrontend == frontendGUI {
		app := gui.NewApp(opts, prepareGame(), logger)
		return gui.Run(app)
	}

	fe, err := openTerminalFrontend(opts)
	if err != nil {
		return err
	}
	defer fe.Close()

	var last *session.Result
	notice := ""
	for {
		choice, err := fe.Menu(last, notice)
		if err != nil {
			return err
		}
		if choice.GameID == "" {
			return nil
		}

		notice = ""
		game, err := prepareGame()(choice.GameID)
		if err != nil {
			logger.Warn("cannot start game", "game", choice.GameID, "err", err)
			notice = fmt.Sprintf("%s: %v", choice.Label, err)
			continue
		}

		res, err := fe.Play(game)
		if err != nil {
			return fmt.Errorf("running %s: %w", choice.GameID, err)
		}
		last = &res
	}
}

// prepareGame loads (or creates) the config file of a game under
// --config-dir and builds the game.
func prepareGame() func(id string) (registry.Game, error) {
	return func(id string) (registry.Game, error) {
		game, _, err := platform.Prepare(id, flagConfigDir)
		return game, err
	}
}
