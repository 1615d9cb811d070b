// Package mirror keeps the client-local copy of daemon-authoritative
// state: the Settings object and the built-in and custom profile
// collections. The mirror always reflects "latest known", never "my last
// write": a refresh after a commit may just as well pick up a concurrent
// daemon-side change.
package mirror

import (
	"sync"

	"github.com/rkuiper/tunesync/internal/notify"
	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/rkuiper/tunesync/internal/push"
)

// Mirror caches the last-known daemon state. All getters return defensive
// deep copies; callers can never mutate the mirrored values through them.
type Mirror struct {
	source push.Source
	hub    *notify.Hub

	mu       sync.RWMutex
	settings profile.Settings
	custom   []profile.Profile
	builtin  []profile.Profile
}

// New returns a mirror reading from source and republishing on hub.
// The built-in profile collection is populated once, here.
func New(source push.Source, hub *notify.Hub) *Mirror {
	return &Mirror{
		source:  source,
		hub:     hub,
		builtin: profile.Builtins(),
	}
}

// Refresh pulls the push channel's current value into the mirror and
// re-emits the settings on the hub. It is idempotent and never fails:
// an empty channel yields zero-value settings and no custom profiles.
// The re-emit happens even when nothing changed (at-least-once semantics;
// no diffing is performed here).
func (m *Mirror) Refresh() {
	state, ok := m.source.Latest()

	m.mu.Lock()
	if ok {
		m.settings = state.Settings.Clone()
		m.custom = profile.CloneAll(state.CustomProfiles)
	} else {
		m.settings = profile.Settings{}
		m.custom = nil
	}
	published := m.settings.Clone()
	m.mu.Unlock()

	m.hub.Settings.Publish(published)
}

// CurrentSettings returns a copy of the last refreshed settings.
func (m *Mirror) CurrentSettings() profile.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.Clone()
}

// CustomProfiles returns a copy of the last refreshed custom profiles.
func (m *Mirror) CustomProfiles() []profile.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return profile.CloneAll(m.custom)
}

// BuiltinProfiles returns a copy of the built-in profile collection.
func (m *Mirror) BuiltinProfiles() []profile.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return profile.CloneAll(m.builtin)
}

// AllProfiles returns built-in profiles followed by custom profiles.
func (m *Mirror) AllProfiles() []profile.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]profile.Profile, 0, len(m.builtin)+len(m.custom))
	all = append(all, profile.CloneAll(m.builtin)...)
	all = append(all, profile.CloneAll(m.custom)...)
	return all
}

// Catalog returns the read-only name-keyed view over this mirror.
func (m *Mirror) Catalog() Catalog {
	return Catalog{m: m}
}

// Catalog is a read-only, name-keyed lookup across the mirror's profile
// collections. Hits are independent copies.
type Catalog struct {
	m *Mirror
}

// FindByName searches built-in and custom profiles for an exact name match.
func (c Catalog) FindByName(name string) (profile.Profile, bool) {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()
	if i := profile.IndexByName(c.m.builtin, name); i >= 0 {
		return c.m.builtin[i].Clone(), true
	}
	if i := profile.IndexByName(c.m.custom, name); i >= 0 {
		return c.m.custom[i].Clone(), true
	}
	return profile.Profile{}, false
}

// FindCustomByName searches only the custom profiles.
func (c Catalog) FindCustomByName(name string) (profile.Profile, bool) {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()
	if i := profile.IndexByName(c.m.custom, name); i >= 0 {
		return c.m.custom[i].Clone(), true
	}
	return profile.Profile{}, false
}
