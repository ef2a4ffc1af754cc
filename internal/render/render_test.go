package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/session"
)

func TestComposeNarrow(t *testing.T) {
	f := core.NewFrame(3, 2)
	f.Title = "Snake"
	f.Score = 20
	f.Set(0, 0, '@', core.ColorBrightGreen)
	f.Set(2, 1, '*', core.ColorRed)
	f.Legend = "q quit"

	s := Compose(f)
	want := []string{
		"Snake | Score: 20",
		"╔═══╗",
		"║@  ║",
		"║  *║",
		"╚═══╝",
		"q quit",
		"",
	}
	for y, line := range want {
		assert.Equal(t, line, strings.TrimRight(s.Row(y), " "), "row %d", y)
	}
	assert.Equal(t, core.ColorBrightGreen, s.GetCell(1, 2).Color)
	assert.Equal(t, BorderColor, s.GetCell(0, 1).Color)
}

func TestComposeWide(t *testing.T) {
	f := core.NewFrame(2, 1)
	f.Title = "T"
	f.Wide = true
	f.Set(1, 0, '█', core.ColorYellow)
	f.Status = "1 row(s) cleared!"

	s := Compose(f)
	assert.Equal(t, "║  ██║", strings.TrimRight(s.Row(2), " "))
	assert.Equal(t, "1 row(s) cleared!", strings.TrimRight(s.Row(5), " "))
	assert.Equal(t, len("1 row(s) cleared!"), s.Width(), "the status line sets the width")
}

func TestStyledPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)
	assert.Contains(t, Styled(s), "abc")
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(session.Result{Score: 150, Reason: session.ReasonOver, Duration: 61400 * time.Millisecond})
	assert.Equal(t, []string{"Game over!", "Final score: 150", "Time played: 1m1s"}, lines)

	lines = SummaryLines(session.Result{Reason: session.ReasonQuit})
	assert.Equal(t, "Game ended.", lines[0])
}
