// Package session holds the single in-progress profile edit: a detached
// copy of one custom profile plus enough bookkeeping to tell whether the
// draft still matches the committed version.
package session

import (
	"github.com/rkuiper/tunesync/internal/mirror"
	"github.com/rkuiper/tunesync/internal/notify"
	"github.com/rkuiper/tunesync/internal/profile"
)

// Editor is a two-state machine: idle (no draft) or editing (draft bound
// to a custom profile). At most one Editor exists per process and it is
// not safe for concurrent use.
type Editor struct {
	mirror *mirror.Mirror
	hub    *notify.Hub

	draft  *profile.Profile
	index  int    // position in the custom collection at Begin time
	origin string // profile name at Begin time, used to re-resolve on commit
}

// New returns an idle editor over the given mirror.
func New(m *mirror.Mirror, hub *notify.Hub) *Editor {
	return &Editor{mirror: m, hub: hub, index: -1}
}

// Begin starts editing the custom profile named name, capturing its current
// position and a deep copy as the draft. An empty name is an explicit
// deselect and always succeeds. Returns false (and goes idle) when no
// custom profile has that name.
func (e *Editor) Begin(name string) bool {
	if name == "" {
		e.Clear()
		return true
	}

	custom := e.mirror.CustomProfiles()
	i := profile.IndexByName(custom, name)
	if i < 0 {
		e.Clear()
		return false
	}

	draft := custom[i].Clone()
	e.draft = &draft
	e.index = i
	e.origin = name
	e.hub.Draft.Publish(e.draft)
	return true
}

// Clear discards any draft and returns the editor to idle.
func (e *Editor) Clear() {
	e.draft = nil
	e.index = -1
	e.origin = ""
	e.hub.Draft.Publish(nil)
}

// Editing reports whether a draft exists.
func (e *Editor) Editing() bool {
	return e.draft != nil
}

// Draft returns the in-progress draft, or nil while idle. The pointer is
// the session's working copy, not a defensive copy; it must only be used
// from the session's single owning goroutine.
func (e *Editor) Draft() *profile.Profile {
	return e.draft
}

// Origin returns the profile name captured at Begin time.
func (e *Editor) Origin() string {
	return e.origin
}

// HasChanges reports whether the draft differs from the custom profile
// currently stored at the captured position. The comparison is purely
// structural, so a concurrent refresh that replaced the underlying
// collection is detected as a change. A captured position that no longer
// exists (the collection shrank) also counts as changed; commit resolves
// the real target by name.
func (e *Editor) HasChanges() bool {
	if e.draft == nil {
		return false
	}
	custom := e.mirror.CustomProfiles()
	if e.index < 0 || e.index >= len(custom) {
		return true
	}
	return !profile.Equal(*e.draft, custom[e.index])
}
