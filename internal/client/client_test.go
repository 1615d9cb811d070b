package client_test

import (
	"context"
	"testing"

	"github.com/rkuiper/tunesync/internal/client"
	"github.com/rkuiper/tunesync/internal/config"
	"github.com/rkuiper/tunesync/internal/escalate"
	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/rkuiper/tunesync/internal/push"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRunner struct{ calls int }

func (r *nopRunner) Run(ctx context.Context, inv escalate.Invocation) error {
	r.calls++
	return nil
}

func TestNewWiresTheCore(t *testing.T) {
	cfg := config.Default()
	cfg.StagingDir = t.TempDir()

	store := push.NewStore()
	store.Set(push.State{
		Settings:       profile.Settings{StateMap: map[string]string{"power_ac": "Office"}},
		CustomProfiles: []profile.Profile{{Name: "Office"}},
	})

	runner := &nopRunner{}
	c := client.New(cfg, store, runner)
	c.Mirror.Refresh()

	// Mirror sees the pushed state.
	assert.Equal(t, "Office", c.Mirror.CurrentSettings().StateMap["power_ac"])

	// Settings stream carries the refresh.
	latest, ok := c.Hub.Settings.Latest()
	require.True(t, ok)
	assert.Equal(t, "Office", latest.StateMap["power_ac"])

	// Session and pipeline share the same mirror.
	require.True(t, c.Editor.Begin("Office"))
	c.Editor.Draft().WebcamDisabled = true
	res := c.Pipeline.CommitEditing(context.Background())
	require.True(t, res.OK)
	assert.Equal(t, 1, runner.calls)
}

func TestNewDefaultsToProductionHelper(t *testing.T) {
	cfg := config.Default()
	cfg.StagingDir = t.TempDir()

	// Just assert construction succeeds with a nil runner; the helper is
	// never invoked here.
	c := client.New(cfg, push.NewStore(), nil)
	require.NotNil(t, c.Pipeline)
	c.Mirror.Refresh()
	assert.Empty(t, c.Mirror.CustomProfiles())
}
