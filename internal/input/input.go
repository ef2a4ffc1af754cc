// Package input provides the key sources polled by the console loop.
// Key names follow Bubble Tea's KeyMsg.String() spelling so one KeyMap
// serves every front end.
package input

import (
	"strings"
	"unicode/utf8"
)

// Source yields pending key presses without blocking.
type Source interface {
	// Poll returns the next pending key, or false when none is waiting.
	Poll() (string, bool)
}

// Script replays a fixed key sequence.
type Script struct {
	keys []string
}

// NewScript returns a source that yields keys in order, then nothing.
func NewScript(keys ...string) *Script {
	return &Script{keys: keys}
}

func (s *Script) Poll() (string, bool) {
	if len(s.keys) == 0 {
		return "", false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

// Remaining reports how many keys have not been polled yet.
func (s *Script) Remaining() int {
	return len(s.keys)
}

var arrows = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// Decode splits raw terminal bytes into key names. Arrow escape sequences
// (ESC [ A..D) become up/down/right/left; letters are lowercased.
func Decode(buf []byte) []string {
	var keys []string
	for len(buf) > 0 {
		switch b := buf[0]; {
		case b == 0x1b:
			if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
				if name, ok := arrows[buf[2]]; ok {
					keys = append(keys, name)
				}
				buf = buf[3:]
				continue
			}
			keys = append(keys, "esc")
			buf = buf[1:]
		case b == 0x03:
			keys = append(keys, "ctrl+c")
			buf = buf[1:]
		case b == '\r' || b == '\n':
			keys = append(keys, "enter")
			buf = buf[1:]
		case b == ' ':
			keys = append(keys, " ")
			buf = buf[1:]
		case b < 0x20 || b == 0x7f:
			buf = buf[1:]
		default:
			r, size := utf8.DecodeRune(buf)
			if r != utf8.RuneError {
				keys = append(keys, strings.ToLower(string(r)))
			}
			buf = buf[size:]
		}
	}
	return keys
}
