package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mastergame/internal/input"
	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/platform/console"
	"github.com/vovakirdan/mastergame/internal/platform/tui"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/session"
	"github.com/vovakirdan/mastergame/internal/sound/ebitensound"
)

// terminalFrontend is a front end that shows the menu and the games in the
// terminal. The gui front end owns its own loop and does not implement it.
type terminalFrontend interface {
	Menu(last *session.Result, notice string) (platform.Choice, error)
	Play(game registry.Game) (session.Result, error)
	Close() error
}

// runtimeOptions builds the options shared by every front end from the
// global flags.
func runtimeOptions(logger *log.Logger) platform.Options {
	return platform.Options{
		FPS: flagFPS,
		Session: session.Options{
			Seed:   flagSeed,
			Sound:  ebitensound.Open(flagSoundDir, logger),
			Logger: logger,
		},
	}
}

func openTerminalFrontend(opts platform.Options) (terminalFrontend, error) {
	switch flagFrontend {
	case frontendTUI:
		return tuiFrontend{opts: opts}, nil
	case frontendConsole:
		return openConsole(opts)
	default:
		return nil, fmt.Errorf("unknown front end %q (want tui, console or gui)", flagFrontend)
	}
}

type tuiFrontend struct {
	opts platform.Options
}

func (f tuiFrontend) Menu(last *session.Result, notice string) (platform.Choice, error) {
	return tui.RunMenu(last, notice)
}

func (f tuiFrontend) Play(game registry.Game) (session.Result, error) {
	return tui.Run(game, f.opts)
}

func (f tuiFrontend) Close() error { return nil }

type consoleFrontend struct {
	term *input.Terminal
	loop *console.Loop
}

func openConsole(opts platform.Options) (*consoleFrontend, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("the console front end needs an interactive terminal")
	}
	t, err := input.OpenTerminal(os.Stdin)
	if err != nil {
		return nil, err
	}
	plain := os.Getenv("NO_COLOR") != ""
	return &consoleFrontend{
		term: t,
		loop: console.New(t, os.Stdout, opts, plain),
	}, nil
}

func (f *consoleFrontend) Menu(last *session.Result, notice string) (platform.Choice, error) {
	return f.loop.Menu(context.Background(), last, notice)
}

func (f *consoleFrontend) Play(game registry.Game) (session.Result, error) {
	return f.loop.Run(context.Background(), game)
}

func (f *consoleFrontend) Close() error {
	return f.term.Close()
}
