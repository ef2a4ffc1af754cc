package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/render"
	"github.com/vovakirdan/mastergame/internal/session"
)

// Menu prints the main menu and polls until an entry key (or q / Ctrl+C,
// meaning Exit) is pressed.
func (l *Loop) Menu(ctx context.Context, last *session.Result, notice string) (platform.Choice, error) {
	exit := platform.Menu[len(platform.Menu)-1]

	fmt.Fprint(l.out, clearScreen, home)
	fmt.Fprint(l.out, "=== MASTER GAME ===", eol, eol)
	for _, c := range platform.Menu {
		fmt.Fprintf(l.out, "%s. %s%s", c.Key, c.Label, eol)
	}
	if last != nil {
		fmt.Fprint(l.out, eol, "Last game: ", strings.Join(render.SummaryLines(*last)[1:], "  "), eol)
	}
	if notice != "" {
		fmt.Fprint(l.out, eol, notice, eol)
	}
	fmt.Fprint(l.out, eol, "Choose an option: ")

	for {
		if err := ctx.Err(); err != nil {
			return exit, err
		}
		k, ok := l.src.Poll()
		if !ok {
			l.sleep(menuPoll)
			continue
		}
		if c, ok := platform.ChoiceFor(k); ok {
			return c, nil
		}
		if k == "q" || k == "ctrl+c" {
			return exit, nil
		}
	}
}
