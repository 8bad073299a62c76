package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/ignore"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/arthur-debert/dotr/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FileTree maps relative paths to file contents
type FileTree map[string]string

// TestEnvironment provides a storage root, base directory and the state
// objects a command would load from them
type TestEnvironment struct {
	StorageRoot string
	BaseDir     string

	FS       types.FS
	Counting *CountingFS
	Paths    paths.Paths
	Registry *registry.Registry
	Ledger   *ignore.Ledger

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. All filesystem access
// goes through Counting so tests can assert on mutations.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	var base types.FS
	switch envType {
	case EnvMemoryOnly:
		env.StorageRoot = "/virtual/home/.local/share/dotr"
		env.BaseDir = "/virtual/home"
		base = filesystem.NewMemory()
	case EnvIsolated:
		tempDir, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to resolve temp dir: %v", err)
		}
		env.StorageRoot = filepath.Join(tempDir, "storage")
		env.BaseDir = filepath.Join(tempDir, "home")
		base = filesystem.NewOS()
	}

	env.Counting = NewCountingFS(base)
	env.FS = env.Counting

	for _, dir := range []string{env.StorageRoot, env.BaseDir} {
		if err := base.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.BaseDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.BaseDir, ".local", "state"))

	p, err := paths.New(env.FS, env.StorageRoot, env.BaseDir)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p
	env.Registry = registry.New(env.FS, p.RegistryPath(), "")

	ledger, err := ignore.Load(env.FS, p.IgnorePath())
	if err != nil {
		t.Fatalf("Failed to load ignore ledger: %v", err)
	}
	env.Ledger = ledger

	return env
}

// MarkInitialized makes the storage root look like a cloned repository:
// a .git directory and a saved registry
func (env *TestEnvironment) MarkInitialized() *TestEnvironment {
	env.t.Helper()
	if err := env.FS.MkdirAll(env.Paths.GitDir(), 0755); err != nil {
		env.t.Fatalf("Failed to create .git: %v", err)
	}
	if err := env.Registry.Save(); err != nil {
		env.t.Fatalf("Failed to save registry: %v", err)
	}
	return env
}

// WithLiveFiles writes files under the base directory
func (env *TestEnvironment) WithLiveFiles(tree FileTree) *TestEnvironment {
	env.t.Helper()
	writeTree(env.t, env.FS, env.BaseDir, tree)
	return env
}

// WithStoredFiles writes files under the storage root
func (env *TestEnvironment) WithStoredFiles(tree FileTree) *TestEnvironment {
	env.t.Helper()
	writeTree(env.t, env.FS, env.StorageRoot, tree)
	return env
}

// LivePath returns the absolute live path of rel
func (env *TestEnvironment) LivePath(rel string) string {
	return filepath.Join(env.BaseDir, filepath.FromSlash(rel))
}

// StoredPath returns the absolute storage path of rel
func (env *TestEnvironment) StoredPath(rel string) string {
	return filepath.Join(env.StorageRoot, filepath.FromSlash(rel))
}

// ReadLive returns the content of a live file, failing the test if absent
func (env *TestEnvironment) ReadLive(rel string) string {
	env.t.Helper()
	return readFile(env.t, env.FS, env.LivePath(rel))
}

// ReadStored returns the content of a storage copy, failing the test if absent
func (env *TestEnvironment) ReadStored(rel string) string {
	env.t.Helper()
	return readFile(env.t, env.FS, env.StoredPath(rel))
}

// LiveExists checks for a live file
func (env *TestEnvironment) LiveExists(rel string) bool {
	_, err := env.FS.Stat(env.LivePath(rel))
	return err == nil
}

// StoredExists checks for a storage copy
func (env *TestEnvironment) StoredExists(rel string) bool {
	_, err := env.FS.Stat(env.StoredPath(rel))
	return err == nil
}

// ReloadRegistry reads the persisted registry back from disk
func (env *TestEnvironment) ReloadRegistry() *registry.Registry {
	env.t.Helper()
	reg, err := registry.Load(env.FS, env.Paths.RegistryPath())
	if err != nil {
		env.t.Fatalf("Failed to reload registry: %v", err)
	}
	return reg
}

// ReloadLedger reads the persisted ignore ledger back from disk
func (env *TestEnvironment) ReloadLedger() *ignore.Ledger {
	env.t.Helper()
	l, err := ignore.Load(env.FS, env.Paths.IgnorePath())
	if err != nil {
		env.t.Fatalf("Failed to reload ignore ledger: %v", err)
	}
	return l
}

func writeTree(t *testing.T, fsys types.FS, root string, tree FileTree) {
	t.Helper()
	for rel, content := range tree {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := fsys.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", rel, err)
		}
	}
}

func readFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
