// Package push consumes the daemon's state publication channel. The core
// only ever asks for the latest value; ordered replay is not part of the
// contract.
package push

import (
	"os"
	"sync"

	"github.com/rkuiper/tunesync/internal/profile"
	"go.yaml.in/yaml/v3"
)

// State is one daemon-published snapshot: the authoritative settings and
// the current custom profile collection.
type State struct {
	Settings       profile.Settings  `yaml:"settings"`
	CustomProfiles []profile.Profile `yaml:"profiles"`
}

// Source exposes the latest daemon-published state. ok is false when
// nothing has been delivered yet.
type Source interface {
	Latest() (state State, ok bool)
}

// Store is an in-memory latest-value Source. Whatever transport delivers
// daemon updates (D-Bus signal handler, socket reader, test fixture) calls
// Set; readers always observe the most recent complete snapshot.
type Store struct {
	mu    sync.RWMutex
	state State
	ok    bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored snapshot.
func (s *Store) Set(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.ok = true
}

// Latest implements Source.
func (s *Store) Latest() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.ok
}

// FileSource reads the daemon's published state file on every call. The
// daemon rewrites the file atomically whenever its state changes, so a
// fresh read is always a complete snapshot. A missing or unreadable file
// means "nothing delivered yet", not an error.
type FileSource struct {
	Path string
}

// Latest implements Source.
func (f FileSource) Latest() (State, bool) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return State{}, false
	}
	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return State{}, false
	}
	return state, true
}
