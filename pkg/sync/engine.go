package sync

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/ignore"
	"github.com/arthur-debert/dotr/pkg/internal/hashutil"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/rs/zerolog"
)

// Options wires the engine to its collaborators
type Options struct {
	Paths    paths.Paths
	FS       types.FS
	Registry *registry.Registry
	Ledger   *ignore.Ledger

	// Policy is consulted by SyncToLive for missing live files. It may be
	// nil for engines that only push or track.
	Policy MissingFilePolicy

	// Logger defaults to the "sync" component logger
	Logger *zerolog.Logger
}

// Engine syncs tracked files between the base directory and the storage root
type Engine struct {
	paths    paths.Paths
	fs       types.FS
	registry *registry.Registry
	ledger   *ignore.Ledger
	policy   MissingFilePolicy
	logger   zerolog.Logger
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Paths == nil || opts.FS == nil || opts.Registry == nil || opts.Ledger == nil {
		return nil, errors.New(errors.ErrInternal, "sync engine requires paths, filesystem, registry and ledger")
	}

	e := &Engine{
		paths:    opts.Paths,
		fs:       opts.FS,
		registry: opts.Registry,
		ledger:   opts.Ledger,
		policy:   opts.Policy,
		logger:   logging.GetLogger("sync"),
	}
	if e.policy == nil {
		e.policy = noPolicy
	}
	if opts.Logger != nil {
		e.logger = *opts.Logger
	}
	return e, nil
}

// Registry returns the registry the engine mutates
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// exists reports whether path is present. Directories where a regular file
// is expected are an error.
func (e *Engine) exists(path string) (bool, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.ErrIsDirectory, "%s is a directory, only regular files can be synced", path).
			WithDetail("path", path)
	}
	return true, nil
}

// copyFile copies src to dst, creating dst's parent, and returns the bytes
// written
func (e *Engine) copyFile(src, dst string) ([]byte, error) {
	data, err := e.fs.ReadFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", src)
	}

	perm := os.FileMode(0644)
	if info, err := e.fs.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(dst)
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}

	if err := e.fs.WriteFile(dst, data, perm); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dst).
			WithDetail("source", src).
			WithDetail("target", dst)
	}

	e.logger.Trace().Str("from", src).Str("to", dst).Int("bytes", len(data)).Msg("File copied")
	return data, nil
}

func (e *Engine) hash(path string) (string, error) {
	return hashutil.CalculateFileChecksum(e.fs, path)
}

func consistencyError(file types.TrackedFile, storagePath string) error {
	return errors.Newf(errors.ErrConsistency,
		"%s is tracked but its storage copy %s is missing", file.Path, storagePath).
		WithDetail("path", file.Path).
		WithDetail("storage_path", storagePath)
}
