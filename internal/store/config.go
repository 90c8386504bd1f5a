// Package store persists client-side state: global config, the last TUI
// screen, and a local log of write operations. Nothing here is required for
// correctness; every loader tolerates missing or unreadable files.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// GlobalConfig is the user's persistent configuration in ~/.portfolio.
type GlobalConfig struct {
	// BaseURL overrides the backend address when set.
	BaseURL string `json:"baseUrl,omitempty"`

	// TUI holds optional appearance preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is the appearance theme id (e.g. "default", "mono").
	Theme string `json:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

// ConfigDir resolves the config directory.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.portfolio).
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".portfolio"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp file name + rename so concurrent CLI and TUI processes
	// cannot corrupt each other's writes.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
