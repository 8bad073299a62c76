package sync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/ignore"
	"github.com/arthur-debert/dotr/pkg/internal/hashutil"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/testutil"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithLiveFiles(testutil.FileTree{".config/git/config": "[core]"})
	engine := newEngine(t, env, nil)

	file, err := engine.Track(env.LivePath(".config/git/config"))
	require.NoError(t, err)

	want := types.TrackedFile{Path: ".config/git/config", Hash: hashutil.Sum([]byte("[core]"))}
	assert.Equal(t, want, file)
	assert.Equal(t, []types.TrackedFile{want}, env.ReloadRegistry().Files())
	assert.False(t, env.StoredExists(".config/git/config"), "tracking does not copy until the next push")
}

func TestTrackRejections(t *testing.T) {
	tests := []struct {
		name string
		path func(env *testutil.TestEnvironment) string
		code errors.ErrorCode
	}{
		{
			name: "missing file",
			path: func(env *testutil.TestEnvironment) string { return env.LivePath("nope") },
			code: errors.ErrNotFound,
		},
		{
			name: "directory",
			path: func(env *testutil.TestEnvironment) string { return env.LivePath(".config") },
			code: errors.ErrIsDirectory,
		},
		{
			name: "outside base",
			path: func(env *testutil.TestEnvironment) string { return "/etc/hosts" },
			code: errors.ErrOutsideBase,
		},
		{
			name: "base dir itself",
			path: func(env *testutil.TestEnvironment) string { return env.BaseDir },
			code: errors.ErrIsDirectory,
		},
		{
			name: "duplicate",
			path: func(env *testutil.TestEnvironment) string { return env.LivePath(".zshrc") },
			code: errors.ErrAlreadyTracked,
		},
		{
			name: "empty path",
			path: func(env *testutil.TestEnvironment) string { return "" },
			code: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
				WithLiveFiles(testutil.FileTree{".zshrc": "z", ".config/app.conf": "a"})
			require.NoError(t, env.FS.MkdirAll("/etc", 0755))
			require.NoError(t, env.FS.WriteFile("/etc/hosts", []byte("127.0.0.1"), 0644))
			track(t, env, ".zshrc", "z")
			engine := newEngine(t, env, nil)
			env.Counting.Reset()

			_, err := engine.Track(tt.path(env))
			require.Error(t, err)

			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, 0, env.Counting.Writes(), "a rejected add must not mutate anything")
			assert.Equal(t, 1, env.Registry.Count())
		})
	}
}

func TestTrackRelativeAndSymlinkedPaths(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithLiveFiles(testutil.FileTree{"dots/vimrc": "syntax on"})
	require.NoError(t, os.Symlink(env.LivePath("dots/vimrc"), env.LivePath(".vimrc")))
	engine := newEngine(t, env, nil)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(env.BaseDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	file, err := engine.Track(".vimrc")
	require.NoError(t, err)
	assert.Equal(t, "dots/vimrc", file.Path, "symlinks resolve to the canonical file")

	_, err = engine.Track(filepath.Join("dots", "vimrc"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyTracked))
}

func TestTrackUnderSymlinkedBaseDir(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	realHome := filepath.Join(tmp, "realhome")
	home := filepath.Join(tmp, "home")
	storage := filepath.Join(tmp, "storage")
	require.NoError(t, os.MkdirAll(realHome, 0755))
	require.NoError(t, os.MkdirAll(storage, 0755))
	require.NoError(t, os.Symlink(realHome, home))
	require.NoError(t, os.WriteFile(filepath.Join(realHome, ".zshrc"), []byte("export A=1"), 0644))

	fsys := filesystem.NewOS()
	p, err := paths.New(fsys, storage, home)
	require.NoError(t, err)
	ledger, err := ignore.Load(fsys, p.IgnorePath())
	require.NoError(t, err)
	engine, err := sync.New(sync.Options{
		Paths:    p,
		FS:       fsys,
		Registry: registry.New(fsys, p.RegistryPath(), ""),
		Ledger:   ledger,
	})
	require.NoError(t, err)

	file, err := engine.Track(filepath.Join(home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, ".zshrc", file.Path)

	report, err := engine.PushAll()
	require.NoError(t, err)
	assert.Equal(t, []sync.Result{{Path: ".zshrc", Outcome: sync.OutcomeUpdated}}, report.Results)
	stored, err := os.ReadFile(filepath.Join(storage, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "export A=1", string(stored))
}
