// Package config loads the per-game configuration objects consumed by the
// engines. Files are JSON objects with Spanish keys; YAML is accepted too.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Game ids understood by the loader and the registry.
const (
	Tetris = "tetris"
	Snake  = "snake"
)

var (
	// ErrUnknownGame is returned when nombre_juego names no known game.
	ErrUnknownGame = errors.New("config: unrecognized game name")
	// ErrNotFound is returned when an explicitly requested file is missing.
	ErrNotFound = errors.New("config: file not found")
	// ErrInvalid is returned when a value cannot describe a playable board.
	ErrInvalid = errors.New("config: invalid value")
)

// Food is one entry of the snake food catalogue.
type Food struct {
	Name      string `yaml:"nombre" json:"nombre"`
	Points    int    `yaml:"puntos" json:"puntos"`
	Increment int    `yaml:"incremento" json:"incremento"`
}

// NormalFood is the catalogue entry used when none is configured.
var NormalFood = Food{Name: "normal", Points: 10, Increment: 1}

// Controls maps the logical snake directions to keys.
type Controls struct {
	Left  string `yaml:"mover_izquierda" json:"mover_izquierda"`
	Right string `yaml:"mover_derecha" json:"mover_derecha"`
	Up    string `yaml:"mover_arriba" json:"mover_arriba"`
	Down  string `yaml:"mover_abajo" json:"mover_abajo"`
}

// DefaultControls is the WASD layout.
var DefaultControls = Controls{Left: "a", Right: "d", Up: "w", Down: "s"}

// Game is the configuration object of one game launch.
type Game struct {
	Name          string    `yaml:"nombre_juego" json:"nombre_juego"`
	Width         int       `yaml:"ancho" json:"ancho,omitempty"`
	Height        int       `yaml:"alto" json:"alto,omitempty"`
	Speed         float64   `yaml:"velocidad" json:"velocidad,omitempty"`
	InitialLength int       `yaml:"longitud_inicial" json:"longitud_inicial,omitempty"`
	Foods         []Food    `yaml:"comidas" json:"comidas,omitempty"`
	SnakeColor    string    `yaml:"color_serpiente" json:"color_serpiente,omitempty"`
	Controls      *Controls `yaml:"controles" json:"controles,omitempty"`
}

// GameID returns the id of the first known game whose name appears in
// nombre_juego, case-insensitively.
func (g Game) GameID() (string, error) {
	name := strings.ToLower(g.Name)
	for _, id := range []string{Tetris, Snake} {
		if strings.Contains(name, id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, g.Name)
}

// WithDefaults returns a copy of g whose zero-valued fields are taken from d.
func (g Game) WithDefaults(d Game) Game {
	if g.Name == "" {
		g.Name = d.Name
	}
	if g.Width <= 0 {
		g.Width = d.Width
	}
	if g.Height <= 0 {
		g.Height = d.Height
	}
	if g.Speed <= 0 {
		g.Speed = d.Speed
	}
	if g.InitialLength <= 0 {
		g.InitialLength = d.InitialLength
	}
	if len(g.Foods) == 0 {
		g.Foods = d.Foods
	}
	if g.SnakeColor == "" {
		g.SnakeColor = d.SnakeColor
	}

	controls := DefaultControls
	if d.Controls != nil {
		controls = *d.Controls
	}
	if g.Controls != nil {
		if g.Controls.Left != "" {
			controls.Left = g.Controls.Left
		}
		if g.Controls.Right != "" {
			controls.Right = g.Controls.Right
		}
		if g.Controls.Up != "" {
			controls.Up = g.Controls.Up
		}
		if g.Controls.Down != "" {
			controls.Down = g.Controls.Down
		}
	}
	g.Controls = &controls
	return g
}

// FallInterval interprets velocidad as seconds per step (Tetris).
func (g Game) FallInterval() time.Duration {
	return time.Duration(g.Speed * float64(time.Second))
}

// StepInterval interprets velocidad as steps per second (Snake).
func (g Game) StepInterval() time.Duration {
	if g.Speed <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / g.Speed)
}

// Validate checks that the board can host the given game.
func (g Game) Validate(id string) error {
	minW, minH := 1, 1
	if id == Tetris {
		// Widest tetromino is 3 columns, tallest is 4 rows.
		minW, minH = 3, 4
	}
	if g.Width < minW || g.Height < minH {
		return fmt.Errorf("%w: %s board %dx%d is smaller than %dx%d", ErrInvalid, id, g.Width, g.Height, minW, minH)
	}
	if g.Speed <= 0 {
		return fmt.Errorf("%w: velocidad must be positive, got %v", ErrInvalid, g.Speed)
	}
	return nil
}
