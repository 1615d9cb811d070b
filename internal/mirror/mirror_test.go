package mirror_test

import (
	"testing"

	"github.com/rkuiper/tunesync/internal/mirror"
	"github.com/rkuiper/tunesync/internal/notify"
	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/rkuiper/tunesync/internal/push"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMirror(t *testing.T, state *push.State) (*mirror.Mirror, *push.Store, *notify.Hub) {
	t.Helper()
	store := push.NewStore()
	if state != nil {
		store.Set(*state)
	}
	hub := notify.NewHub()
	return mirror.New(store, hub), store, hub
}

func TestRefresh(t *testing.T) {
	t.Run("pulls latest state", func(t *testing.T) {
		m, _, _ := newMirror(t, &push.State{
			Settings:       profile.Settings{StateMap: map[string]string{"power_ac": "Office"}},
			CustomProfiles: []profile.Profile{{Name: "Office"}},
		})
		m.Refresh()

		assert.Equal(t, "Office", m.CurrentSettings().StateMap["power_ac"])
		require.Len(t, m.CustomProfiles(), 1)
	})

	t.Run("empty channel yields empty state, not an error", func(t *testing.T) {
		m, _, _ := newMirror(t, nil)
		m.Refresh()

		assert.Empty(t, m.CurrentSettings().StateMap)
		assert.Empty(t, m.CustomProfiles())
	})

	t.Run("idempotent and re-emitting", func(t *testing.T) {
		m, _, hub := newMirror(t, &push.State{
			Settings: profile.Settings{FanControlEnabled: true},
		})
		ch, cancel := hub.Settings.Subscribe()
		defer cancel()

		m.Refresh()
		first := <-ch
		m.Refresh()
		second := <-ch

		// Same upstream value: content unchanged, but emitted again.
		assert.True(t, profile.SettingsEqual(first, second))
		assert.True(t, m.CurrentSettings().FanControlEnabled)
	})

	t.Run("drops state when channel goes empty", func(t *testing.T) {
		store := push.NewStore()
		store.Set(push.State{CustomProfiles: []profile.Profile{{Name: "Office"}}})
		m := mirror.New(store, notify.NewHub())
		m.Refresh()
		require.Len(t, m.CustomProfiles(), 1)

		// Simulate a source that cannot currently deliver.
		fresh := mirror.New(push.NewStore(), notify.NewHub())
		fresh.Refresh()
		assert.Empty(t, fresh.CustomProfiles())
	})
}

func TestDefensiveCopies(t *testing.T) {
	m, _, _ := newMirror(t, &push.State{
		Settings:       profile.Settings{StateMap: map[string]string{"power_ac": "Office"}},
		CustomProfiles: []profile.Profile{{Name: "Office", CPU: profile.CPUSettings{Governor: "powersave"}}},
	})
	m.Refresh()

	t.Run("settings", func(t *testing.T) {
		got := m.CurrentSettings()
		got.StateMap["power_ac"] = "clobbered"
		assert.Equal(t, "Office", m.CurrentSettings().StateMap["power_ac"])
	})

	t.Run("custom profiles", func(t *testing.T) {
		got := m.CustomProfiles()
		got[0].Name = "clobbered"
		assert.Equal(t, "Office", m.CustomProfiles()[0].Name)
	})

	t.Run("catalog hits", func(t *testing.T) {
		p, ok := m.Catalog().FindByName("Office")
		require.True(t, ok)
		p.CPU.Governor = "clobbered"

		again, ok := m.Catalog().FindByName("Office")
		require.True(t, ok)
		assert.Equal(t, "powersave", again.CPU.Governor)
	})
}

func TestAllProfiles(t *testing.T) {
	m, _, _ := newMirror(t, &push.State{
		CustomProfiles: []profile.Profile{{Name: "Office"}, {Name: "Quiet"}},
	})
	m.Refresh()

	builtin := m.BuiltinProfiles()
	all := m.AllProfiles()
	require.Len(t, all, len(builtin)+2)

	// Built-in profiles come first, custom after.
	assert.Equal(t, builtin[0].Name, all[0].Name)
	assert.Equal(t, "Office", all[len(builtin)].Name)
	assert.Equal(t, "Quiet", all[len(builtin)+1].Name)
}

func TestCatalogLookups(t *testing.T) {
	m, _, _ := newMirror(t, &push.State{
		CustomProfiles: []profile.Profile{{Name: "Office"}},
	})
	m.Refresh()
	catalog := m.Catalog()

	t.Run("finds builtin", func(t *testing.T) {
		p, ok := catalog.FindByName(profile.DescriptorDefault)
		require.True(t, ok)
		assert.Equal(t, profile.DescriptorDefault, p.Name)
	})

	t.Run("finds custom", func(t *testing.T) {
		_, ok := catalog.FindByName("Office")
		assert.True(t, ok)
		_, ok = catalog.FindCustomByName("Office")
		assert.True(t, ok)
	})

	t.Run("custom search excludes builtins", func(t *testing.T) {
		_, ok := catalog.FindCustomByName(profile.DescriptorDefault)
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := catalog.FindByName("Missing")
		assert.False(t, ok)
	})
}
