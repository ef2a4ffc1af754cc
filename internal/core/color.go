package core

// Color is the tag stored in an occupied cell and used by front ends to
// pick a terminal or pixel color. ColorDefault doubles as "no color".
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// colorNames covers the color names accepted in game config files.
var colorNames = map[string]Color{
	"rojo":     ColorRed,
	"red":      ColorRed,
	"verde":    ColorGreen,
	"green":    ColorGreen,
	"amarillo": ColorYellow,
	"yellow":   ColorYellow,
	"azul":     ColorBlue,
	"blue":     ColorBlue,
	"magenta":  ColorMagenta,
	"cian":     ColorCyan,
	"cyan":     ColorCyan,
	"blanco":   ColorBrightWhite,
	"white":    ColorBrightWhite,
	"naranja":  ColorOrange,
	"orange":   ColorOrange,
	"gris":     ColorGray,
	"gray":     ColorGray,
}

// ColorByName resolves a config color name. Unknown names yield fallback.
func ColorByName(name string, fallback Color) Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return fallback
}
