// Package commit stages configuration changes, hands them to the
// privileged daemon through the escalation helper, and reconciles the
// state mirror afterwards. Every operation resolves to a tagged Result;
// none of them panic or leak errors for domain outcomes such as unknown
// names or collisions.
package commit

import (
	"context"
	"fmt"

	"github.com/rkuiper/tunesync/internal/escalate"
	"github.com/rkuiper/tunesync/internal/mirror"
	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/rkuiper/tunesync/internal/session"
	"github.com/rkuiper/tunesync/internal/staging"
	"golang.org/x/sync/semaphore"
)

// Code classifies a commit outcome.
type Code int

const (
	// CodeOK means the change was staged, escalated, and acknowledged.
	CodeOK Code = iota
	// CodeNotFound means a profile name did not resolve.
	CodeNotFound
	// CodeNameCollision means a target name already belongs to another
	// profile, built-in or custom.
	CodeNameCollision
	// CodeNoChanges means there was nothing to commit; no I/O happened.
	CodeNoChanges
	// CodeEscalationFailed means staging or the helper process failed,
	// e.g. the privilege prompt was declined or the daemon rejected the
	// payload.
	CodeEscalationFailed
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNotFound:
		return "not found"
	case CodeNameCollision:
		return "name collision"
	case CodeNoChanges:
		return "no changes"
	case CodeEscalationFailed:
		return "escalation failed"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Result is the outcome of one commit operation. OK preserves the plain
// boolean contract (did the requested change apply); Code and Detail make
// failures distinguishable for a UI. OK with a non-OK code marks a partial
// apply: WriteProfile can land a state reassignment while the profile
// rename was blocked by a collision.
type Result struct {
	OK     bool
	Code   Code
	Detail string
}

func succeeded() Result {
	return Result{OK: true, Code: CodeOK}
}

func failed(code Code, detail string) Result {
	return Result{Code: code, Detail: detail}
}

// Future is a one-shot handle for an asynchronous commit.
type Future struct {
	done chan struct{}
	res  Result
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(res Result) {
	f.res = res
	close(f.done)
}

func completed(res Result) *Future {
	f := newFuture()
	f.complete(res)
	return f
}

// Wait blocks until the commit settles or ctx is done. Abandoning the wait
// does not cancel the commit; the helper keeps running and the mirror
// refresh still happens.
func (f *Future) Wait(ctx context.Context) Result {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return failed(CodeEscalationFailed, ctx.Err().Error())
	}
}

// Pipeline is the single writer-side service of the process. Commits are
// serialized through a weight-1 semaphore held from staging until the
// helper settles, so concurrent operations never race on the fixed staging
// paths.
type Pipeline struct {
	mirror  *mirror.Mirror
	editor  *session.Editor
	staging staging.Store
	runner  escalate.Runner
	slot    *semaphore.Weighted
}

// NewPipeline wires a pipeline over its collaborators.
func NewPipeline(m *mirror.Mirror, ed *session.Editor, st staging.Store, r escalate.Runner) *Pipeline {
	return &Pipeline{
		mirror:  m,
		editor:  ed,
		staging: st,
		runner:  r,
		slot:    semaphore.NewWeighted(1),
	}
}

// AssignProfile maps one operating condition to a profile and commits the
// resulting settings synchronously: the call blocks until the helper
// process returns. The mirror is refreshed regardless of the helper's
// outcome (at-least-once attempt, best-effort reporting).
func (p *Pipeline) AssignProfile(ctx context.Context, profileName, stateID string) Result {
	if _, ok := p.mirror.Catalog().FindByName(profileName); !ok {
		return failed(CodeNotFound, fmt.Sprintf("no profile named %q", profileName))
	}

	settings := p.mirror.CurrentSettings()
	if settings.StateMap == nil {
		settings.StateMap = make(map[string]string)
	}
	settings.StateMap[stateID] = profileName

	if err := p.slot.Acquire(ctx, 1); err != nil {
		return failed(CodeEscalationFailed, err.Error())
	}
	defer p.slot.Release(1)

	path, err := p.staging.WriteSettings(settings)
	if err != nil {
		return failed(CodeEscalationFailed, err.Error())
	}

	runErr := p.runner.Run(ctx, escalate.Invocation{SettingsPath: path})
	p.mirror.Refresh()
	if runErr != nil {
		return failed(CodeEscalationFailed, runErr.Error())
	}
	return succeeded()
}

// CopyProfile duplicates an existing profile (built-in or custom) under a
// new name and appends it to the custom collection. Fails without I/O when
// src does not resolve or newName already names any profile.
func (p *Pipeline) CopyProfile(ctx context.Context, src, newName string) *Future {
	catalog := p.mirror.Catalog()
	source, ok := catalog.FindByName(src)
	if !ok {
		return completed(failed(CodeNotFound, fmt.Sprintf("no profile named %q", src)))
	}
	if _, exists := catalog.FindByName(newName); exists {
		return completed(failed(CodeNameCollision, fmt.Sprintf("profile %q already exists", newName)))
	}

	duplicate := source.Clone()
	duplicate.Name = newName
	custom := append(p.mirror.CustomProfiles(), duplicate)

	return p.commitAsync(ctx, &custom, nil)
}

// DeleteCustomProfile removes a custom profile by name. Fails without I/O
// when the name does not match any custom profile.
func (p *Pipeline) DeleteCustomProfile(ctx context.Context, name string) *Future {
	custom := p.mirror.CustomProfiles()
	i := profile.IndexByName(custom, name)
	if i < 0 {
		return completed(failed(CodeNotFound, fmt.Sprintf("no custom profile named %q", name)))
	}
	custom = append(custom[:i], custom[i+1:]...)

	return p.commitAsync(ctx, &custom, nil)
}

// WriteProfile overwrites the custom profile currently named currentName
// with prof, optionally reassigning the listed state identifiers to
// prof.Name. A rename is permitted unless prof.Name already belongs to a
// built-in profile or to a different custom profile; renaming a profile to
// its own name is a no-op, not a collision. When the rename is blocked and
// no states were given, nothing is staged or escalated. When states were
// given, the settings side still commits and the result carries
// CodeNameCollision alongside OK so callers can report the partial apply.
func (p *Pipeline) WriteProfile(ctx context.Context, currentName string, prof profile.Profile, states []string) *Future {
	custom := p.mirror.CustomProfiles()
	idx := profile.IndexByName(custom, currentName)
	if idx < 0 {
		return completed(failed(CodeNotFound, fmt.Sprintf("no custom profile named %q", currentName)))
	}

	builtinCollision := profile.IsBuiltinName(prof.Name)
	customIdx := profile.IndexByName(custom, prof.Name)
	customCollision := customIdx >= 0 && customIdx != idx
	permitted := !builtinCollision && !customCollision

	if !permitted && len(states) == 0 {
		return completed(failed(CodeNameCollision, fmt.Sprintf("profile %q already exists", prof.Name)))
	}
	if permitted {
		custom[idx] = prof.Clone()
	}

	var settings *profile.Settings
	if len(states) > 0 {
		s := p.mirror.CurrentSettings()
		if s.StateMap == nil {
			s.StateMap = make(map[string]string)
		}
		for _, state := range states {
			s.StateMap[state] = prof.Name
		}
		settings = &s
	}

	fut := p.commitAsync(ctx, &custom, settings)
	if permitted {
		return fut
	}
	// Rewrite the settled result so the blocked rename stays visible.
	out := newFuture()
	go func() {
		res := fut.Wait(context.Background())
		if res.OK {
			res.Code = CodeNameCollision
			res.Detail = fmt.Sprintf("profile %q already exists; state reassignment applied", prof.Name)
		}
		out.complete(res)
	}()
	return out
}

// SaveSettings commits the current custom-profile collection unchanged
// together with the current settings.
func (p *Pipeline) SaveSettings(ctx context.Context) *Future {
	custom := p.mirror.CustomProfiles()
	settings := p.mirror.CurrentSettings()
	return p.commitAsync(ctx, &custom, &settings)
}

// CommitEditing commits the edit session's draft synchronously. It only
// proceeds when the session reports changes. The draft's target slot is
// re-resolved by the name captured when editing began, so a collection
// that was refreshed, reordered, or shrunk in the meantime is handled by
// name, never by stale position. On success the session is cleared.
func (p *Pipeline) CommitEditing(ctx context.Context) Result {
	if !p.editor.HasChanges() {
		return failed(CodeNoChanges, "no draft changes to commit")
	}
	draft := p.editor.Draft()

	custom := p.mirror.CustomProfiles()
	idx := profile.IndexByName(custom, p.editor.Origin())
	if idx < 0 {
		return failed(CodeNotFound, fmt.Sprintf("custom profile %q no longer exists", p.editor.Origin()))
	}

	// A draft rename obeys the same collision rules as WriteProfile.
	if profile.IsBuiltinName(draft.Name) {
		return failed(CodeNameCollision, fmt.Sprintf("profile %q already exists", draft.Name))
	}
	if j := profile.IndexByName(custom, draft.Name); j >= 0 && j != idx {
		return failed(CodeNameCollision, fmt.Sprintf("profile %q already exists", draft.Name))
	}
	custom[idx] = draft.Clone()

	if err := p.slot.Acquire(ctx, 1); err != nil {
		return failed(CodeEscalationFailed, err.Error())
	}
	defer p.slot.Release(1)

	path, err := p.staging.WriteProfiles(custom)
	if err != nil {
		return failed(CodeEscalationFailed, err.Error())
	}
	if err := p.runner.Run(ctx, escalate.Invocation{ProfilesPath: path}); err != nil {
		return failed(CodeEscalationFailed, err.Error())
	}

	p.mirror.Refresh()
	p.editor.Clear()
	return succeeded()
}

// commitAsync stages the given payloads and escalates on a background
// goroutine: one helper invocation carrying both flags when both payloads
// are present. The mirror is refreshed on success.
func (p *Pipeline) commitAsync(ctx context.Context, custom *[]profile.Profile, settings *profile.Settings) *Future {
	fut := newFuture()
	go func() {
		if err := p.slot.Acquire(ctx, 1); err != nil {
			fut.complete(failed(CodeEscalationFailed, err.Error()))
			return
		}
		defer p.slot.Release(1)

		var inv escalate.Invocation
		if custom != nil {
			path, err := p.staging.WriteProfiles(*custom)
			if err != nil {
				fut.complete(failed(CodeEscalationFailed, err.Error()))
				return
			}
			inv.ProfilesPath = path
		}
		if settings != nil {
			path, err := p.staging.WriteSettings(*settings)
			if err != nil {
				fut.complete(failed(CodeEscalationFailed, err.Error()))
				return
			}
			inv.SettingsPath = path
		}

		if err := p.runner.Run(ctx, inv); err != nil {
			fut.complete(failed(CodeEscalationFailed, err.Error()))
			return
		}

		p.mirror.Refresh()
		fut.complete(succeeded())
	}()
	return fut
}
