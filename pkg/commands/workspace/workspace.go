// Package workspace opens the storage root for a command: it checks the
// preconditions every command shares and loads the registry and ignore
// ledger fresh from disk.
package workspace

import (
	"context"
	"os"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/git"
	"github.com/arthur-debert/dotr/pkg/ignore"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Options locates the storage root and the base directory
type Options struct {
	StorageRoot string
	BaseDir     string

	// FS defaults to the OS filesystem
	FS types.FS
}

// GitClient is the part of git.Client commands use
type GitClient interface {
	Clone(ctx context.Context, url string) (string, error)
	HasChanges(ctx context.Context) (bool, error)
	AddAll(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) (string, error)
	Push(ctx context.Context) (string, error)
	Pull(ctx context.Context) (string, error)
	EnsureIdentity(ctx context.Context, asker git.Asker) error
}

// Workspace is an opened storage root
type Workspace struct {
	FS       types.FS
	Paths    paths.Paths
	Registry *registry.Registry
	Ledger   *ignore.Ledger
}

// FileSystem returns opts.FS or the OS filesystem
func (o Options) FileSystem() types.FS {
	if o.FS != nil {
		return o.FS
	}
	return filesystem.NewOS()
}

// Open checks that the storage root exists, is a git checkout and holds a
// registry, then loads registry and ledger
func Open(opts Options) (*Workspace, error) {
	fsys := opts.FileSystem()

	p, err := paths.New(fsys, opts.StorageRoot, opts.BaseDir)
	if err != nil {
		return nil, err
	}

	if _, err := fsys.Stat(p.GitDir()); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotInitialized,
				"the storage path %s is not a git repository, please run `dotr init` first", p.StorageRoot()).
				WithDetail("path", p.StorageRoot())
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", p.GitDir())
	}

	reg, err := registry.Load(fsys, p.RegistryPath())
	if err != nil {
		return nil, err
	}

	ledger, err := ignore.Load(fsys, p.IgnorePath())
	if err != nil {
		return nil, err
	}

	return &Workspace{FS: fsys, Paths: p, Registry: reg, Ledger: ledger}, nil
}

// Engine returns a sync engine bound to the workspace
func (w *Workspace) Engine(policy sync.MissingFilePolicy) (*sync.Engine, error) {
	return sync.New(sync.Options{
		Paths:    w.Paths,
		FS:       w.FS,
		Registry: w.Registry,
		Ledger:   w.Ledger,
		Policy:   policy,
	})
}
