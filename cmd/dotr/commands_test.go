package dotr

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	home    string
	storage string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &cliEnv{
		home:    filepath.Join(root, "home"),
		storage: filepath.Join(root, "storage"),
	}
	require.NoError(t, os.MkdirAll(env.home, 0755))

	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "DOTR_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
	return env
}

// initialized fakes a cloned storage directory
func (e *cliEnv) initialized(t *testing.T) *cliEnv {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(e.storage, ".git"), 0755))
	reg := registry.New(filesystem.NewOS(), filepath.Join(e.storage, ".dotr.toml"), "")
	require.NoError(t, reg.Save())
	return e
}

func (e *cliEnv) writeHome(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.home, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append(args, "--storage-dir", e.storage, "--base-dir", e.home))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotr version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestListCmdJSON(t *testing.T) {
	env := newCLIEnv(t).initialized(t)
	env.writeHome(t, ".zshrc", "z")

	_, err := env.run(t, "add", filepath.Join(env.home, ".zshrc"))
	require.NoError(t, err)

	out, err := env.run(t, "list", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Files []struct {
			Path string `json:"path"`
			Hash string `json:"hash"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Files, 1)
	assert.Equal(t, ".zshrc", doc.Files[0].Path)
	assert.Len(t, doc.Files[0].Hash, 64)
}

func TestAddThenStatusText(t *testing.T) {
	env := newCLIEnv(t).initialized(t)
	zshrc := env.writeHome(t, ".zshrc", "z")

	out, err := env.run(t, "add", zshrc, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking .zshrc")

	// the stored copy only appears on push
	out, err = env.run(t, "status", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "not-stored")
	assert.Contains(t, out, ".zshrc")
}

func TestCommandsRequireInit(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.MkdirAll(env.storage, 0755))

	_, err := env.run(t, "status")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotInitialized))

	out, err := env.run(t, "status", "--format", "json")
	require.Error(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "NOT_INITIALIZED", doc["code"])
}

func TestPullRejectsYesAndNo(t *testing.T) {
	env := newCLIEnv(t).initialized(t)

	_, err := env.run(t, "pull", "--yes", "--no")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestHelpTopic(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "sync")
	assert.Contains(t, out, "ignore")
	assert.Contains(t, out, "configuration")
}

func TestInitCmdClonesRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	env := newCLIEnv(t)
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	remote := filepath.Join(filepath.Dir(env.home), "remote.git")
	require.NoError(t, exec.Command("git", "init", "--bare", remote).Run())

	out, err := env.run(t, "init", remote, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "with an empty registry")

	reg, err := registry.Load(filesystem.NewOS(), filepath.Join(env.storage, ".dotr.toml"))
	require.NoError(t, err)
	assert.Equal(t, remote, reg.GitURL())

	gitignore, err := os.ReadFile(filepath.Join(env.storage, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, ".dotrignore\n", string(gitignore))

	_, err = env.run(t, "init", remote)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
