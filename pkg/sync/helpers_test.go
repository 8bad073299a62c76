package sync_test

import (
	"testing"

	"github.com/arthur-debert/dotr/pkg/internal/hashutil"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/testutil"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, env *testutil.TestEnvironment, policy sync.MissingFilePolicy) *sync.Engine {
	t.Helper()
	engine, err := sync.New(sync.Options{
		Paths:    env.Paths,
		FS:       env.FS,
		Registry: env.Registry,
		Ledger:   env.Ledger,
		Policy:   policy,
	})
	require.NoError(t, err)
	return engine
}

// track registers rel with the hash of content without touching storage
func track(t *testing.T, env *testutil.TestEnvironment, rel, content string) types.TrackedFile {
	t.Helper()
	file := types.TrackedFile{Path: rel, Hash: hashutil.Sum([]byte(content))}
	require.NoError(t, env.Registry.Add(file))
	return file
}

func current(t *testing.T, env *testutil.TestEnvironment, rel string) types.TrackedFile {
	t.Helper()
	file, ok := env.Registry.Get(rel)
	require.True(t, ok, "%s should be tracked", rel)
	return file
}

// recordingPolicy answers with decision and remembers what it was asked
type recordingPolicy struct {
	decision sync.Decision
	asked    []string
}

func (p *recordingPolicy) Resolve(file types.TrackedFile, _ string) (sync.Decision, error) {
	p.asked = append(p.asked, file.Path)
	return p.decision, nil
}
