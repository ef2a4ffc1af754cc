// Package platform holds what the front ends share: the main menu entries
// and the steps that turn a menu choice or a config file into a game.
package platform

import (
	"fmt"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/session"
)

// Choice is one main menu entry. An empty GameID means exit.
type Choice struct {
	Key    string
	Label  string
	GameID string
}

// Menu lists the main menu entries in display order.
var Menu = []Choice{
	{Key: "1", Label: "Tetris", GameID: config.Tetris},
	{Key: "2", Label: "Snake", GameID: config.Snake},
	{Key: "3", Label: "Exit"},
}

// ChoiceFor returns the entry selected by key.
func ChoiceFor(key string) (Choice, bool) {
	for _, c := range Menu {
		if c.Key == key {
			return c, true
		}
	}
	return Choice{}, false
}

// Options are the runtime settings every front end receives.
type Options struct {
	FPS     int
	Session session.Options
}

// Prepare finds (or creates) the config file of game id under dir and
// builds the game it describes. The path of the config used is returned.
func Prepare(id, dir string) (registry.Game, string, error) {
	cfg, path, err := config.Locate(id, dir)
	if err != nil {
		return nil, path, err
	}
	g, err := Build(cfg)
	return g, path, err
}

// Open loads the config file at path and builds the game it describes.
func Open(path string) (registry.Game, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

// Build validates cfg and creates the game named by nombre_juego.
func Build(cfg config.Game) (registry.Game, error) {
	id, err := registry.Resolve(cfg.Name)
	if err != nil {
		return nil, err
	}
	def, err := config.Default(id)
	if err != nil {
		return nil, err
	}
	if err := cfg.WithDefaults(def).Validate(id); err != nil {
		return nil, err
	}
	g, err := registry.Create(id, cfg)
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}
	return g, nil
}
