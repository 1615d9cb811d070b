// Package staging writes transfer payloads for the privileged daemon: a
// serialized Settings object and a serialized custom-profile collection at
// two fixed, well-known paths. Each write goes to a uniquely named temp
// file first and is renamed over the fixed path, so a reader never sees a
// torn payload even while a writer is active.
package staging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rkuiper/tunesync/internal/profile"
	"go.yaml.in/yaml/v3"
)

const (
	settingsFile = "new_settings.yaml"
	profilesFile = "new_profiles.yaml"
)

// Store stages payloads under a single directory. The two target paths are
// stable across calls; prior content is overwritten on each use.
type Store struct {
	dir string
}

// NewStore returns a store staging into dir.
func NewStore(dir string) Store {
	return Store{dir: dir}
}

// SettingsPath returns the fixed location of the staged settings payload.
func (s Store) SettingsPath() string {
	return filepath.Join(s.dir, settingsFile)
}

// ProfilesPath returns the fixed location of the staged profile payload.
func (s Store) ProfilesPath() string {
	return filepath.Join(s.dir, profilesFile)
}

// WriteSettings stages a settings payload and returns its path.
func (s Store) WriteSettings(set profile.Settings) (string, error) {
	data, err := yaml.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("encoding settings payload: %w", err)
	}
	if err := s.write(s.SettingsPath(), data); err != nil {
		return "", err
	}
	return s.SettingsPath(), nil
}

// WriteProfiles stages a custom-profile collection payload and returns
// its path.
func (s Store) WriteProfiles(list []profile.Profile) (string, error) {
	data, err := yaml.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encoding profile payload: %w", err)
	}
	if err := s.write(s.ProfilesPath(), data); err != nil {
		return "", err
	}
	return s.ProfilesPath(), nil
}

// write lands data at path via a unique temp file and an atomic rename.
func (s Store) write(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating staging dir: %w", err)
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing staging file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publishing staging file: %w", err)
	}
	return nil
}
