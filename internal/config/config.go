package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProfileVersion is written into new operator profiles.
const ProfileVersion = "1"

// Config is the operator profile stored in ~/.sacis/config.json.
// It identifies who is acting so audit entries and assignments can be
// attributed; it grants nothing.
type Config struct {
	Version  string `json:"version"`
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

// ErrNoProfile is returned by LoadConfig when no profile has been written yet.
var ErrNoProfile = errors.New("no operator profile (run: sacis init)")

// LoadConfig reads .sacis/config.json from the specified directory,
// normally the user's home.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".sacis", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json under dir/.sacis.
func SaveConfig(dir string, cfg *Config) error {
	sacisDir := filepath.Join(dir, ".sacis")
	if err := os.MkdirAll(sacisDir, 0755); err != nil {
		return fmt.Errorf("failed to create .sacis dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(sacisDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// HomeDir returns the directory holding .sacis.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
