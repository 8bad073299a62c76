package list_test

import (
	"testing"

	"github.com/arthur-debert/dotr/pkg/commands/list"
	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/testutil"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	require.NoError(t, env.Registry.Add(types.TrackedFile{Path: ".zshrc", Hash: "aa"}))
	require.NoError(t, env.Registry.Add(types.TrackedFile{Path: ".config/git/config", Hash: "bb"}))
	env.MarkInitialized()

	result, err := list.List(list.ListOptions{
		Workspace: workspace.Options{StorageRoot: env.StorageRoot, BaseDir: env.BaseDir, FS: env.FS},
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TrackedFile{
		{Path: ".zshrc", Hash: "aa"},
		{Path: ".config/git/config", Hash: "bb"},
	}, result.Files)
}

func TestListEmptyRegistry(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).MarkInitialized()

	result, err := list.List(list.ListOptions{
		Workspace: workspace.Options{StorageRoot: env.StorageRoot, BaseDir: env.BaseDir, FS: env.FS},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.NotNil(t, result.Files)
}

func TestListMissingRegistry(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	require.NoError(t, env.FS.MkdirAll(env.Paths.GitDir(), 0755))

	_, err := list.List(list.ListOptions{
		Workspace: workspace.Options{StorageRoot: env.StorageRoot, BaseDir: env.BaseDir, FS: env.FS},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}
