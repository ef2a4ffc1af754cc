// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
)

// Game is the interface every engine adapter implements.
// Games contain pure logic with no UI dependencies; the platform handles
// key mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// TickInterval is the period of the automatic advance.
	TickInterval() time.Duration

	// Tick performs one automatic advance (a fall or a snake step).
	Tick() core.StepResult

	// Step applies the discrete actions of one input frame.
	Step(in core.InputFrame) core.StepResult

	// Frame returns a presentation-neutral snapshot for rendering.
	Frame() core.Frame

	// State returns the current game state (score, game over).
	State() core.GameState

	// KeyMap returns the key bindings of the game.
	KeyMap() core.KeyMap
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game from its configuration.
type Factory func(cfg config.Game) Game

type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Game) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(cfg), nil
}

// Resolve picks the registered game whose ID appears in name, ignoring
// case. It is how nombre_juego selects an engine. The built-in games are
// matched first, Tetris before Snake; other registered ids follow in
// sorted order.
func Resolve(name string) (string, error) {
	if id, err := (config.Game{Name: name}).GameID(); err == nil && Exists(id) {
		return id, nil
	}

	lower := strings.ToLower(name)
	for _, info := range List() {
		if strings.Contains(lower, info.ID) {
			return info.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", config.ErrUnknownGame, name)
}

// FromConfig resolves and creates the game named by cfg.
func FromConfig(cfg config.Game) (Game, error) {
	id, err := Resolve(cfg.Name)
	if err != nil {
		return nil, err
	}
	return Create(id, cfg)
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
