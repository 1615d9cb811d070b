package escalate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkuiper/tunesync/internal/escalate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelperRun(t *testing.T) {
	t.Run("clean exit is success", func(t *testing.T) {
		h := escalate.Helper{Elevator: "true", Daemon: "tunesyncd"}
		err := h.Run(context.Background(), escalate.Invocation{SettingsPath: "/tmp/x"})
		assert.NoError(t, err)
	})

	t.Run("non-zero exit is a helper error", func(t *testing.T) {
		h := escalate.Helper{Elevator: "false", Daemon: "tunesyncd"}
		err := h.Run(context.Background(), escalate.Invocation{ProfilesPath: "/tmp/x"})
		require.Error(t, err)

		var helperErr *escalate.HelperError
		assert.ErrorAs(t, err, &helperErr)
	})

	t.Run("missing elevator is a helper error", func(t *testing.T) {
		h := escalate.Helper{Elevator: "tunesync-no-such-elevator", Daemon: "tunesyncd"}
		err := h.Run(context.Background(), escalate.Invocation{SettingsPath: "/tmp/x"})

		var helperErr *escalate.HelperError
		assert.ErrorAs(t, err, &helperErr)
	})

	t.Run("empty invocation is rejected before exec", func(t *testing.T) {
		h := escalate.Helper{Elevator: "true", Daemon: "tunesyncd"}
		err := h.Run(context.Background(), escalate.Invocation{})
		assert.ErrorIs(t, err, escalate.ErrNothingStaged)
	})
}

func TestStart(t *testing.T) {
	t.Run("future resolves with the run outcome", func(t *testing.T) {
		h := escalate.Helper{Elevator: "true", Daemon: "tunesyncd"}
		fut := escalate.Start(context.Background(), h, escalate.Invocation{SettingsPath: "/tmp/x"})
		assert.NoError(t, fut.Wait(context.Background()))
	})

	t.Run("abandoning the wait does not cancel the run", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})

		fut := escalate.Go(func() error {
			close(started)
			<-release
			close(done)
			return nil
		})

		<-started
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := fut.Wait(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		// The invocation still completes on its own.
		close(release)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("helper goroutine never finished")
		}
		assert.NoError(t, fut.Wait(context.Background()))
	})

	t.Run("failure propagates through the future", func(t *testing.T) {
		boom := errors.New("declined")
		fut := escalate.Go(func() error { return boom })
		assert.ErrorIs(t, fut.Wait(context.Background()), boom)
	})
}
