// Package escalate invokes the privilege-elevation helper that hands
// staged payloads to the daemon. One invocation looks like:
//
//	<elevator> <daemon> [--new_settings <path>] [--new_profiles <path>]
//
// Success is "process exited without error"; any non-zero exit is failure.
// Two flavors exist: a blocking Run and a Start that returns a Future.
// The protocol is identical either way.
package escalate

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Invocation names the staged payloads for one helper call. At least one
// path must be set.
type Invocation struct {
	SettingsPath string
	ProfilesPath string
}

// args renders the daemon's command line for this invocation.
func (inv Invocation) args(daemon string) []string {
	out := []string{daemon}
	if inv.SettingsPath != "" {
		out = append(out, "--new_settings", inv.SettingsPath)
	}
	if inv.ProfilesPath != "" {
		out = append(out, "--new_profiles", inv.ProfilesPath)
	}
	return out
}

// ErrNothingStaged is returned when an invocation names no payloads.
var ErrNothingStaged = errors.New("escalate: invocation names no payloads")

// HelperError is a helper process that exited with failure, e.g. the user
// declined the privilege prompt or the daemon rejected the payload.
type HelperError struct {
	Output string
	Err    error
}

func (e *HelperError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("escalation helper: %v", e.Err)
	}
	return fmt.Sprintf("escalation helper: %v: %s", e.Err, e.Output)
}

func (e *HelperError) Unwrap() error { return e.Err }

// Runner hands one staged payload set to the privileged daemon.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// Helper is the production Runner. Elevator is the privilege-elevating
// command (pkexec by default); Daemon is the daemon executable it runs.
type Helper struct {
	Elevator string
	Daemon   string
}

// Run blocks until the helper process exits.
func (h Helper) Run(ctx context.Context, inv Invocation) error {
	if inv.SettingsPath == "" && inv.ProfilesPath == "" {
		return ErrNothingStaged
	}
	cmd := exec.CommandContext(ctx, h.Elevator, inv.args(h.Daemon)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &HelperError{Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}

// Future is a one-shot completion handle for an asynchronous invocation.
type Future struct {
	done chan struct{}
	err  error
}

// Go runs fn on its own goroutine and returns its future.
func Go(fn func() error) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		f.err = fn()
		close(f.done)
	}()
	return f
}

// Wait blocks until the invocation settles or ctx is done. A caller that
// stops waiting does not cancel the helper; it keeps running and its side
// effects still happen.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start is the non-blocking flavor of Run.
func Start(ctx context.Context, r Runner, inv Invocation) *Future {
	return Go(func() error { return r.Run(ctx, inv) })
}
