package input

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal reads keys from a raw-mode terminal on a background goroutine.
type Terminal struct {
	fd    int
	state *term.State
	keys  chan string
	done  chan struct{}
	once  sync.Once
}

// OpenTerminal switches f to raw mode and starts reading it.
// Close must be called to restore the terminal.
func OpenTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("input: enable raw mode: %w", err)
	}

	t := &Terminal{
		fd:    fd,
		state: state,
		keys:  make(chan string, 64),
		done:  make(chan struct{}),
	}
	go t.read(f)
	return t, nil
}

func (t *Terminal) read(f *os.File) {
	buf := make([]byte, 32)
	for {
		n, err := f.Read(buf)
		if err != nil {
			return
		}
		for _, k := range Decode(buf[:n]) {
			select {
			case t.keys <- k:
			case <-t.done:
				return
			}
		}
	}
}

// Poll returns the next buffered key without blocking.
func (t *Terminal) Poll() (string, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
		return "", false
	}
}

// Close restores the terminal state. It is safe to call more than once.
func (t *Terminal) Close() error {
	var err error
	t.once.Do(func() {
		close(t.done)
		if rerr := term.Restore(t.fd, t.state); rerr != nil {
			err = fmt.Errorf("input: restore terminal: %w", rerr)
		}
	})
	return err
}
