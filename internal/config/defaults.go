package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config_tetris.ast
var defaultTetrisFile []byte

//go:embed defaults/config_snake.ast
var defaultSnakeFile []byte

// DefaultTetris returns the default Tetris configuration.
func DefaultTetris() Game {
	var cfg Game
	if err := yaml.Unmarshal(defaultTetrisFile, &cfg); err != nil {
		return Game{Name: "Tetris", Width: 8, Height: 12, Speed: 0.5}
	}
	return cfg
}

// DefaultSnake returns the default Snake configuration.
func DefaultSnake() Game {
	var cfg Game
	if err := yaml.Unmarshal(defaultSnakeFile, &cfg); err != nil {
		controls := DefaultControls
		return Game{
			Name:          "Snake",
			Width:         40,
			Height:        30,
			Speed:         5,
			InitialLength: 3,
			Foods:         []Food{NormalFood},
			SnakeColor:    "verde",
			Controls:      &controls,
		}
	}
	return cfg
}

// Default returns the default configuration for a game id.
func Default(id string) (Game, error) {
	switch id {
	case Tetris:
		return DefaultTetris(), nil
	case Snake:
		return DefaultSnake(), nil
	default:
		return Game{}, ErrUnknownGame
	}
}

// FileName returns the conventional config file name for a game id.
func FileName(id string) string {
	return "config_" + id + ".ast"
}
