package staging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/rkuiper/tunesync/internal/staging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWriteSettings(t *testing.T) {
	store := staging.NewStore(t.TempDir())

	path, err := store.WriteSettings(profile.Settings{
		StateMap:          map[string]string{"power_ac": "Office"},
		FanControlEnabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, store.SettingsPath(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got profile.Settings
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "Office", got.StateMap["power_ac"])
	assert.True(t, got.FanControlEnabled)
}

func TestWriteProfiles(t *testing.T) {
	store := staging.NewStore(t.TempDir())

	path, err := store.WriteProfiles([]profile.Profile{
		{Name: "Office", CPU: profile.CPUSettings{Governor: "performance"}},
		{Name: "Quiet"},
	})
	require.NoError(t, err)
	assert.Equal(t, store.ProfilesPath(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []profile.Profile
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "performance", got[0].CPU.Governor)
}

func TestFixedPathsOverwritten(t *testing.T) {
	dir := t.TempDir()
	store := staging.NewStore(dir)

	first, err := store.WriteProfiles([]profile.Profile{{Name: "A"}})
	require.NoError(t, err)
	second, err := store.WriteProfiles([]profile.Profile{{Name: "B"}})
	require.NoError(t, err)
	assert.Equal(t, first, second, "staging location is fixed across writes")

	var got []profile.Profile
	data, err := os.ReadFile(second)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)

	// No temp files survive a successful write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreatesStagingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "staging")
	store := staging.NewStore(dir)

	_, err := store.WriteSettings(profile.Settings{})
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
