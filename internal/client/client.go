// Package client assembles the synchronization core: one service object
// per process, collaborators injected rather than reached through globals.
package client

import (
	"github.com/rkuiper/tunesync/internal/commit"
	"github.com/rkuiper/tunesync/internal/config"
	"github.com/rkuiper/tunesync/internal/escalate"
	"github.com/rkuiper/tunesync/internal/mirror"
	"github.com/rkuiper/tunesync/internal/notify"
	"github.com/rkuiper/tunesync/internal/push"
	"github.com/rkuiper/tunesync/internal/session"
	"github.com/rkuiper/tunesync/internal/staging"
)

// Client bundles the mirror, edit session, commit pipeline, and
// notification hub over a shared push source and escalation runner.
type Client struct {
	Hub      *notify.Hub
	Mirror   *mirror.Mirror
	Editor   *session.Editor
	Pipeline *commit.Pipeline
}

// New wires a client from configuration, a push source, and an escalation
// runner. Passing a nil runner selects the production helper from cfg.
func New(cfg config.Config, source push.Source, runner escalate.Runner) *Client {
	if runner == nil {
		runner = escalate.Helper{Elevator: cfg.Elevator, Daemon: cfg.Daemon}
	}

	hub := notify.NewHub()
	m := mirror.New(source, hub)
	ed := session.New(m, hub)
	pipe := commit.NewPipeline(m, ed, staging.NewStore(cfg.StagingDir), runner)

	return &Client{
		Hub:      hub,
		Mirror:   m,
		Editor:   ed,
		Pipeline: pipe,
	}
}
