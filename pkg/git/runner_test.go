package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func newRepo(t *testing.T) (string, *git.ShellRunner) {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(dir, "no-global"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	runner := git.NewRunner("", dir)
	_, err := runner.Run(context.Background(), "init", "-q")
	require.NoError(t, err)
	return dir, runner
}

func TestShellRunnerTrimsOutput(t *testing.T) {
	_, runner := newRepo(t)

	out, err := runner.Run(context.Background(), "rev-parse", "--is-inside-work-tree")
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestShellRunnerFailureCarriesStderr(t *testing.T) {
	_, runner := newRepo(t)

	_, err := runner.Run(context.Background(), "checkout", "no-such-branch")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
	assert.NotEmpty(t, errors.GetErrorDetails(err)["stderr"])
}

func TestShellRunnerLenient(t *testing.T) {
	_, runner := newRepo(t)

	_, err := runner.Run(context.Background(), "config", "user.signingkey")
	require.Error(t, err, "strict runner reports the silent exit code")

	out, err := runner.AsLenient().Run(context.Background(), "config", "user.signingkey")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = runner.AsLenient().Run(context.Background(), "checkout", "no-such-branch")
	assert.Error(t, err, "failures with stderr are still errors")
}

func TestClientCommitFlow(t *testing.T) {
	dir, runner := newRepo(t)
	client := git.NewClientWithRunners(runner, runner.AsLenient(), "")
	ctx := context.Background()

	require.NoError(t, client.ConfigSet(ctx, "user.name", "Test"))
	require.NoError(t, client.ConfigSet(ctx, "user.email", "test@example.com"))

	changed, err := client.HasChanges(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".zshrc"), []byte("x"), 0644))
	changed, err = client.HasChanges(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = client.AddAll(ctx)
	require.NoError(t, err)
	_, err = client.Commit(ctx, "Update files")
	require.NoError(t, err)

	changed, err = client.HasChanges(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	name, err := client.ConfigGet(ctx, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "Test", name)
}
