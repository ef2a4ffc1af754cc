// Package render composes game frames into character screens for the
// terminal front ends.
package render

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/session"
)

// Chrome colors.
const (
	BorderColor = core.ColorCyan
	HeaderColor = core.ColorCyan
	StatusColor = core.ColorYellow
	LegendColor = core.ColorGray
)

// Compose draws f as a header line, the bordered board, the control
// legend and the status line. Wide frames use two columns per cell.
func Compose(f core.Frame) *core.Screen {
	cw := 1
	if f.Wide {
		cw = 2
	}
	header := fmt.Sprintf("%s | Score: %d", f.Title, f.Score)
	boardW := f.Cols*cw + 2
	w := max(boardW, utf8.RuneCountInString(header), utf8.RuneCountInString(f.Legend), utf8.RuneCountInString(f.Status))
	h := f.Rows + 5

	s := core.NewScreen(w, h)
	s.DrawText(0, 0, header, HeaderColor)
	s.DrawBox(core.NewRect(0, 1, boardW, f.Rows+2), BorderColor)

	for y := range f.Rows {
		for x := range f.Cols {
			c := f.At(x, y)
			if c.Empty() {
				continue
			}
			for i := range cw {
				s.SetCell(1+x*cw+i, 2+y, c.Glyph, c.Color)
			}
		}
	}

	s.DrawText(0, f.Rows+3, f.Legend, LegendColor)
	s.DrawText(0, f.Rows+4, f.Status, StatusColor)
	return s
}

// SummaryLines describes a finished session.
func SummaryLines(r session.Result) []string {
	title := "Game over!"
	if r.Reason == session.ReasonQuit {
		title = "Game ended."
	}
	return []string{
		title,
		fmt.Sprintf("Final score: %d", r.Score),
		fmt.Sprintf("Time played: %s", r.Duration.Round(time.Second)),
	}
}
