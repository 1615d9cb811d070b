package locale_test

import (
	"testing"

	"github.com/rkuiper/tunesync/internal/locale"
	"github.com/rkuiper/tunesync/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishCatalog(t *testing.T) {
	tr := locale.English()

	t.Run("covers every builtin descriptor", func(t *testing.T) {
		for _, p := range profile.Builtins() {
			e, ok := tr.Lookup(p.Name)
			require.True(t, ok, "missing entry for %q", p.Name)
			assert.NotEmpty(t, e.Name)
			assert.NotEmpty(t, e.Description)
		}
	})

	t.Run("absent key yields absent result", func(t *testing.T) {
		_, ok := tr.Lookup("Office")
		assert.False(t, ok)
	})
}

func TestDisplayName(t *testing.T) {
	tr := locale.English()
	assert.Equal(t, "Default", locale.DisplayName(tr, profile.DescriptorDefault))
	assert.Equal(t, "Office", locale.DisplayName(tr, "Office"))
	assert.Equal(t, "Office", locale.DisplayName(nil, "Office"))
}
