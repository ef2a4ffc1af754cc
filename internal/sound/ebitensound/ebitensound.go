// Package ebitensound plays sound effects through the ebiten audio
// context. It is kept apart from package sound so front ends that never
// open it do not link the audio backend.
package ebitensound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/sound"
)

const sampleRate = 44100

// Audio plays decoded WAV effects through the ebiten audio context.
type Audio struct {
	ctx     *audio.Context
	clips   *intmap.Map[core.Event, []byte]
	players *intmap.Map[core.Event, *audio.Player]
	logger  *log.Logger
}

// Open loads the effects listed in sound.Files from dir. Missing files are
// skipped. When nothing can be loaded it logs a warning and returns
// sound.Nop.
func Open(dir string, logger *log.Logger) sound.Player {
	if dir == "" {
		return sound.Nop{}
	}
	p, err := openAudio(dir, logger)
	if err != nil {
		logger.Warn("sound disabled", "dir", dir, "error", err)
		return sound.Nop{}
	}
	return p
}

func openAudio(dir string, logger *log.Logger) (p *Audio, err error) {
	// The audio backend panics when no output device is available.
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("ebitensound: audio backend: %v", r)
		}
	}()

	clips := intmap.New[core.Event, []byte](len(sound.Files))
	for ev, name := range sound.Files {
		pcm, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			logger.Debug("sound effect skipped", "file", name, "error", err)
			continue
		}
		clips.Put(ev, pcm)
	}
	if clips.Len() == 0 {
		return nil, fmt.Errorf("ebitensound: no effects found in %s", dir)
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Audio{
		ctx:     ctx,
		clips:   clips,
		players: intmap.New[core.Event, *audio.Player](len(sound.Files)),
		logger:  logger,
	}, nil
}

func decodeFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitensound: read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("ebitensound: decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("ebitensound: decode %s: %w", path, err)
	}
	return pcm, nil
}

// Play starts the effect for ev from the beginning. Events without an
// effect are ignored.
func (a *Audio) Play(ev core.Event) {
	pcm, ok := a.clips.Get(ev)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Debug("sound playback failed", "event", ev, "error", r)
		}
	}()

	if old, ok := a.players.Get(ev); ok {
		_ = old.Close()
	}
	pl := a.ctx.NewPlayerFromBytes(pcm)
	a.players.Put(ev, pl)
	pl.Play()
}
