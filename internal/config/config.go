// Package config loads the client-side configuration: where the daemon
// lives, how privilege is elevated, where payloads are staged, and the
// default fan curve tables. The daemon's own configuration is not ours.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rkuiper/tunesync/internal/profile"
)

// Config is ~/.config/tunesync/config.toml.
type Config struct {
	Elevator   string             `toml:"elevator"`
	Daemon     string             `toml:"daemon"`
	StagingDir string             `toml:"staging_dir"`
	StateFile  string             `toml:"state_file"`
	FanTables  []profile.FanTable `toml:"fan_tables"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Elevator:   "pkexec",
		Daemon:     "/usr/sbin/tunesyncd",
		StagingDir: filepath.Join(os.TempDir(), "tunesync"),
		StateFile:  "/run/tunesyncd/state.yaml",
		FanTables:  profile.DefaultFanTables(),
	}
}

// File returns the default config file path.
func File() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tunesync", "config.toml")
}

// Load reads path, layering the file's values over the defaults. A missing
// file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if file.Elevator != "" {
		cfg.Elevator = file.Elevator
	}
	if file.Daemon != "" {
		cfg.Daemon = file.Daemon
	}
	if file.StagingDir != "" {
		cfg.StagingDir = file.StagingDir
	}
	if file.StateFile != "" {
		cfg.StateFile = file.StateFile
	}
	if len(file.FanTables) > 0 {
		cfg.FanTables = file.FanTables
	}
	return cfg, nil
}

// Marshal serializes a Config to TOML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// FanTable returns the named fan curve table as an independent copy.
func (c Config) FanTable(name string) (profile.FanTable, bool) {
	for _, t := range c.FanTables {
		if t.Name == name {
			return t.Clone(), true
		}
	}
	return profile.FanTable{}, false
}
