package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/render"
)

const (
	margin     = 16
	lineHeight = 16
	maxCell    = 32
	minCell    = 4
)

var (
	background = color.RGBA{16, 16, 24, 255}
	boardColor = color.RGBA{32, 32, 44, 255}
	frameColor = color.RGBA{0, 170, 170, 255}
	shade      = color.RGBA{0, 0, 0, 180}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {200, 200, 200, 255},
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 140, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
}

// RGBA maps a cell color tag to a pixel color.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// cellSize picks the largest square cell that fits the board in a w×h
// area, leaving room for the header and legend lines.
func cellSize(f core.Frame, w, h int) int {
	if f.Cols <= 0 || f.Rows <= 0 {
		return minCell
	}
	availW := w - 2*margin
	availH := h - 2*margin - 4*lineHeight
	size := min(availW/f.Cols, availH/f.Rows, maxCell)
	return max(size, minCell)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	switch a.mode {
	case modeMenu:
		a.drawMenu(screen)
	case modePlay:
		drawFrame(screen, a.session.Frame())
	case modeSummary:
		drawFrame(screen, a.session.Frame())
		a.drawSummary(screen)
	}
}

func (a *App) drawMenu(screen *ebiten.Image) {
	y := margin
	ebitenutil.DebugPrintAt(screen, "M A S T E R   G A M E", margin, y)
	y += 2 * lineHeight
	for _, c := range platform.Menu {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s. %s", c.Key, c.Label), margin, y)
		y += lineHeight
	}
	y += lineHeight
	if res, ok := a.Last(); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Last game: %s, score %d", res.Game, res.Score), margin, y)
		y += lineHeight
	}
	if a.notice != "" {
		ebitenutil.DebugPrintAt(screen, a.notice, margin, y)
	}
}

func drawFrame(screen *ebiten.Image, f core.Frame) {
	b := screen.Bounds()
	size := cellSize(f, b.Dx(), b.Dy())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | Score: %d", f.Title, f.Score), margin, margin)

	ox, oy := float32(margin), float32(margin+2*lineHeight)
	bw, bh := float32(f.Cols*size), float32(f.Rows*size)
	vector.StrokeRect(screen, ox-2, oy-2, bw+4, bh+4, 2, frameColor, false)
	vector.DrawFilledRect(screen, ox, oy, bw, bh, boardColor, false)

	s := float32(size)
	for y := range f.Rows {
		for x := range f.Cols {
			c := f.At(x, y)
			if c.Empty() {
				continue
			}
			vector.DrawFilledRect(screen, ox+float32(x)*s+1, oy+float32(y)*s+1, s-2, s-2, RGBA(c.Color), false)
		}
	}

	ty := int(oy+bh) + lineHeight
	ebitenutil.DebugPrintAt(screen, f.Legend, margin, ty)
	if f.Status != "" {
		ebitenutil.DebugPrintAt(screen, f.Status, margin, ty+lineHeight)
	}
}

func (a *App) drawSummary(screen *ebiten.Image) {
	res, ok := a.Last()
	if !ok {
		return
	}
	b := screen.Bounds()
	w, h := float32(260), float32(100)
	x, y := (float32(b.Dx())-w)/2, (float32(b.Dy())-h)/2
	vector.DrawFilledRect(screen, x, y, w, h, shade, false)
	vector.StrokeRect(screen, x, y, w, h, 2, frameColor, false)

	ty := int(y) + 12
	for _, line := range render.SummaryLines(res) {
		ebitenutil.DebugPrintAt(screen, line, int(x)+12, ty)
		ty += lineHeight
	}
	ebitenutil.DebugPrintAt(screen, "Press Enter to return to the menu", int(x)+12, ty+lineHeight/2)
}
