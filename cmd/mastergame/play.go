package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/platform/gui"
	"github.com/vovakirdan/mastergame/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play <config>",
	Short: "Play the game described by a config file",
	Long: `Start playing the game named by the config file's nombre_juego.

The file is a JSON or YAML object with the keys nombre_juego, ancho,
alto, velocidad, and for Snake longitud_inicial, comidas, controles and
color_serpiente. Missing keys take the game's defaults.

Tetris controls:
  1 left  2 down  3 right  4 rest 7s  5 drop  6 power  7 rotate  0 quit

Snake controls:
  WASD (or the configured keys) and the arrow keys move, Q quits

Examples:
  mastergame play config_tetris.ast
  mastergame play my_snake.yaml --seed 42
  mastergame play config_snake.ast --frontend gui`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := platform.Open(args[0])
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := runtimeOptions(logger)

	if flagFrontend == frontendGUI {
		app := gui.NewApp(opts, prepareGame(), logger)
		app.Play(game)
		return gui.Run(app)
	}

	fe, err := openTerminalFrontend(opts)
	if err != nil {
		return err
	}
	res, err := fe.Play(game)
	fe.Close()
	if err != nil {
		return err
	}

	for _, line := range render.SummaryLines(res) {
		fmt.Println(line)
	}
	return nil
}
