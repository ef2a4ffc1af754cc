// Package console is the polling front end: each frame it drains pending
// keys, advances the scheduler by the elapsed wall time and redraws.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/mastergame/internal/input"
	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/render"
	"github.com/vovakirdan/mastergame/internal/sched"
	"github.com/vovakirdan/mastergame/internal/session"
)

// menuPoll is the key polling period of the menu.
const menuPoll = 20 * time.Millisecond

// ANSI sequences: cursor home, clear screen, and line ending for raw mode.
const (
	home        = "\x1b[H"
	clearScreen = "\x1b[2J"
	eol         = "\x1b[K\r\n"
)

// Loop plays one game on out, reading keys from src.
type Loop struct {
	src    input.Source
	out    io.Writer
	fps    int
	opts   session.Options
	now    func() time.Time
	sleep  func(time.Duration)
	styled bool
}

// New creates a polling loop. Output is colored with lipgloss unless plain
// is set.
func New(src input.Source, out io.Writer, opts platform.Options, plain bool) *Loop {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	return &Loop{
		src:    src,
		out:    out,
		fps:    fps,
		opts:   opts.Session,
		now:    time.Now,
		sleep:  time.Sleep,
		styled: !plain,
	}
}

// Run plays game until it ends or ctx is cancelled, then shows the summary
// and waits for a key.
func (l *Loop) Run(ctx context.Context, game registry.Game) (session.Result, error) {
	clock := sched.NewManual()
	opts := l.opts
	if opts.Now == nil {
		opts.Now = l.now
	}
	s := session.New(game, clock, opts)
	s.Start()
	pacer := sched.NewPacer(clock, l.now())
	frame := time.Second / time.Duration(l.fps)

	fmt.Fprint(l.out, clearScreen)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		for {
			k, ok := l.src.Poll()
			if !ok || s.Done() {
				break
			}
			s.HandleKey(k)
		}
		pacer.Sync(l.now())
		l.draw(s)
		l.sleep(frame)
	}

	res := s.Result()
	if res.Reason == session.ReasonOver {
		l.summary(s)
		l.waitKey(ctx, frame)
	}
	return res, nil
}

func (l *Loop) draw(s *session.Session) {
	screen := render.Compose(s.Frame())
	fmt.Fprint(l.out, home)
	if l.styled {
		fmt.Fprint(l.out, strings.ReplaceAll(render.Styled(screen), "\n", eol), eol)
		return
	}
	for y := range screen.Height() {
		fmt.Fprint(l.out, screen.Row(y), eol)
	}
}

func (l *Loop) summary(s *session.Session) {
	l.draw(s)
	for _, line := range render.SummaryLines(s.Result()) {
		fmt.Fprint(l.out, line, eol)
	}
	fmt.Fprint(l.out, "Press any key to return to the menu", eol)
}

func (l *Loop) waitKey(ctx context.Context, frame time.Duration) {
	for ctx.Err() == nil {
		if _, ok := l.src.Poll(); ok {
			return
		}
		l.sleep(frame)
	}
}
