package gui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var namedKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "up",
	ebiten.KeyArrowDown:   "down",
	ebiten.KeyArrowLeft:   "left",
	ebiten.KeyArrowRight:  "right",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyEscape:      "esc",
	ebiten.KeySpace:       " ",
}

// KeyName converts an ebiten key to the name the game key maps use
// ("a", "1", "up", "enter"). Keys without a name report false.
func KeyName(k ebiten.Key) (string, bool) {
	if name, ok := namedKeys[k]; ok {
		return name, true
	}
	s := k.String()
	switch {
	case len(s) == 1:
		return strings.ToLower(s), true
	case strings.HasPrefix(s, "Digit") && len(s) == len("Digit")+1:
		return s[len("Digit"):], true
	case strings.HasPrefix(s, "Numpad") && len(s) == len("Numpad")+1 && s[len(s)-1] >= '0' && s[len(s)-1] <= '9':
		return s[len("Numpad"):], true
	}
	return "", false
}

// pressedKeys returns the names of the keys pressed since the last update.
func pressedKeys(buf []ebiten.Key) ([]string, []ebiten.Key) {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	names := make([]string, 0, len(buf))
	for _, k := range buf {
		if ctrl && k == ebiten.KeyC {
			names = append(names, "ctrl+c")
			continue
		}
		if name, ok := KeyName(k); ok {
			names = append(names, name)
		}
	}
	return names, buf
}
