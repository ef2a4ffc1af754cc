package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the config file at path.
// A missing file yields an error wrapping ErrNotFound.
func Load(path string) (Game, error) {
	var cfg Game

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// Locate finds the config file for a game id.
// Search order: ~/.mastergame/<file> -> <dir>/<file>. When neither exists,
// the embedded default is written to <dir>/<file> and loaded from there.
// The returned path is empty if the default could not be written; the
// embedded default is still returned in that case.
func Locate(id, dir string) (Game, string, error) {
	name := FileName(id)

	if userPath := userConfigPath(name); userPath != "" {
		if cfg, err := Load(userPath); err == nil {
			return cfg, userPath, nil
		} else if !errors.Is(err, ErrNotFound) {
			return cfg, userPath, err
		}
	}

	localPath := filepath.Join(dir, name)
	cfg, err := Load(localPath)
	if err == nil {
		return cfg, localPath, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return cfg, localPath, err
	}

	if writeErr := WriteDefault(localPath, id); writeErr != nil {
		def, defErr := Default(id)
		return def, "", defErr
	}
	cfg, err = Load(localPath)
	return cfg, localPath, err
}

// WriteDefault writes the default config of a game id as indented JSON.
func WriteDefault(path, id string) error {
	def, err := Default(id)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("config: cannot encode default %s config: %w", id, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mastergame", filename)
}
