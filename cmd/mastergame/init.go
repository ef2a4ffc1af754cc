package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/registry"
)

var initCmd = &cobra.Command{
	Use:   "init <game> [path]",
	Short: "Write the default config file of a game",
	Long: `Write the default config file of a game so it can be edited.

The path defaults to the file the menu uses (config_tetris.ast or
config_snake.ast) in the current directory. Existing files are
overwritten.

Examples:
  mastergame init tetris
  mastergame init snake ./my_snake.ast`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q, run 'mastergame list' to see available games", id)
	}

	path := config.FileName(id)
	if len(args) == 2 {
		path = args[1]
	}
	if err := config.WriteDefault(path, id); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
