package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		assert.Equal(t, env.StorageRoot, env.Paths.StorageRoot())
		assert.Equal(t, env.BaseDir, env.Paths.BaseDir())
		assert.Equal(t, 0, env.Registry.Count())
		assert.Empty(t, env.Ledger.Entries())

		env.WithLiveFiles(FileTree{".config/app.conf": "live"}).
			WithStoredFiles(FileTree{".config/app.conf": "stored"})

		assert.True(t, env.LiveExists(".config/app.conf"))
		assert.True(t, env.StoredExists(".config/app.conf"))
		assert.Equal(t, "live", env.ReadLive(".config/app.conf"))
		assert.Equal(t, "stored", env.ReadStored(".config/app.conf"))
		assert.False(t, env.LiveExists("missing"))
	}
}

func TestReloadRegistryAfterSave(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	require.NoError(t, env.Registry.Save())

	reg := env.ReloadRegistry()
	assert.Equal(t, 0, reg.Count())
}
