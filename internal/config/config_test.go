package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameID(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"Tetris", Tetris, false},
		{"Mi TETRIS clásico", Tetris, false},
		{"snake", Snake, false},
		{"Super Snake 2", Snake, false},
		{"Tetris vs Snake", Tetris, false},
		{"snake-tetris", Tetris, false},
		{"Pong", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Game{Name: tc.name}.GameID()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownGame)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaults(t *testing.T) {
	tetris := DefaultTetris()
	assert.Equal(t, 8, tetris.Width)
	assert.Equal(t, 12, tetris.Height)
	assert.Equal(t, 0.5, tetris.Speed)
	assert.Equal(t, 500*time.Millisecond, tetris.FallInterval())

	snake := DefaultSnake()
	assert.Equal(t, 40, snake.Width)
	assert.Equal(t, 30, snake.Height)
	assert.Equal(t, 5.0, snake.Speed)
	assert.Equal(t, 3, snake.InitialLength)
	assert.Equal(t, 200*time.Millisecond, snake.StepInterval())
	assert.Equal(t, []Food{NormalFood}, snake.Foods)
	require.NotNil(t, snake.Controls)
	assert.Equal(t, DefaultControls, *snake.Controls)
}

func TestWithDefaults(t *testing.T) {
	cfg := Game{
		Name:     "Snake",
		Width:    10,
		Controls: &Controls{Up: "i"},
	}.WithDefaults(DefaultSnake())

	assert.Equal(t, 10, cfg.Width, "configured value should win")
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 5.0, cfg.Speed)
	assert.Equal(t, 3, cfg.InitialLength)
	assert.Equal(t, "i", cfg.Controls.Up)
	assert.Equal(t, "a", cfg.Controls.Left, "unset controls keep their defaults")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultTetris().Validate(Tetris))
	assert.ErrorIs(t, Game{Width: 2, Height: 12, Speed: 1}.Validate(Tetris), ErrInvalid, "narrow tetris board")
	assert.ErrorIs(t, Game{Width: 5, Height: 5, Speed: 0}.Validate(Snake), ErrInvalid, "zero speed")
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config_snake.ast")
	jsonBody := `{"nombre_juego": "Snake", "ancho": 12, "alto": 9, "velocidad": 8, ` +
		`"comidas": [{"nombre": "bonus", "puntos": 50, "incremento": -2}], ` +
		`"controles": {"mover_arriba": "i", "mover_abajo": "k", "mover_izquierda": "j", "mover_derecha": "l"}}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonBody), 0o600))

	cfg, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, 8.0, cfg.Speed)
	require.Len(t, cfg.Foods, 1)
	assert.Equal(t, "bonus", cfg.Foods[0].Name)
	assert.Equal(t, -2, cfg.Foods[0].Increment)
	require.NotNil(t, cfg.Controls)
	assert.Equal(t, "j", cfg.Controls.Left)

	yamlPath := filepath.Join(dir, "tetris.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("nombre_juego: Tetris\nancho: 10\nalto: 20\n"), 0o600))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.ast"))
	assert.ErrorIs(t, err, ErrNotFound)

	bad := filepath.Join(dir, "bad.ast")
	require.NoError(t, os.WriteFile(bad, []byte("{nombre_juego: [unterminated"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "malformed file is a parse error")
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName(Snake))

	require.NoError(t, WriteDefault(path, Snake))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Snake", cfg.Name)
	assert.Equal(t, 3, cfg.InitialLength)
	assert.Len(t, cfg.Foods, 1)

	assert.ErrorIs(t, WriteDefault(path, "pong"), ErrUnknownGame)
}

func TestLocateCreatesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	cfg, path, err := Locate(Tetris, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config_tetris.ast"), path)
	assert.FileExists(t, path)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
}
