package initialize

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/registry"
	"github.com/arthur-debert/dotr/pkg/types"
)

// InitOptions defines the options for the Init command
type InitOptions struct {
	Workspace workspace.Options

	// GitURL is cloned into the storage root
	GitURL string

	// ForceRecreate removes an existing storage root first
	ForceRecreate bool

	// Git must run in the storage root
	Git workspace.GitClient
}

// InitResult describes what Init did
type InitResult struct {
	StorageRoot     string `json:"storage_root"`
	GitOutput       string `json:"git_output,omitempty"`
	CreatedRegistry bool   `json:"created_registry"`
	TrackedFiles    int    `json:"tracked_files"`
}

// Init clones the storage repository and seeds it with an empty registry
// when the clone has none. An existing registry is kept as is.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Init").Str("url", opts.GitURL).Msg("Executing command")

	if opts.GitURL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a git url is required")
	}

	fsys := opts.Workspace.FileSystem()
	root, err := paths.NormalizePath(opts.Workspace.StorageRoot)
	if err != nil {
		return nil, err
	}

	if _, err := fsys.Stat(root); err == nil {
		if !opts.ForceRecreate {
			return nil, errors.Newf(errors.ErrAlreadyExists,
				"the storage path %s already exists, use --force-recreate to replace it", root).
				WithDetail("path", root)
		}
		log.Warn().Str("path", root).Msg("Removing existing storage")
		if err := fsys.RemoveAll(root); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", root)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", root)
	}

	if err := fsys.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", root)
	}

	out, err := opts.Git.Clone(ctx, opts.GitURL)
	if err != nil {
		// the root was created above, leave nothing that blocks a retry
		if rmErr := fsys.RemoveAll(root); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", root).Msg("Failed to clean up storage after clone failure")
		}
		return nil, err
	}

	result := &InitResult{StorageRoot: root, GitOutput: out}
	registryPath := filepath.Join(root, paths.RegistryFile)

	reg, err := registry.Load(fsys, registryPath)
	switch {
	case err == nil:
		result.TrackedFiles = reg.Count()
	case errors.IsErrorCode(err, errors.ErrConfigMissing):
		if err := registry.New(fsys, registryPath, opts.GitURL).Save(); err != nil {
			return nil, err
		}
		result.CreatedRegistry = true
	default:
		return nil, err
	}

	if err := ensureGitIgnore(fsys, filepath.Join(root, paths.GitIgnoreFile)); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Init").
		Str("storage", root).
		Bool("created_registry", result.CreatedRegistry).
		Int("files", result.TrackedFiles).
		Msg("Command finished")
	return result, nil
}

// ensureGitIgnore keeps the ignore ledger out of the shared repository
func ensureGitIgnore(fsys types.FS, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}

	for _, line := range bytes.Split(data, []byte("\n")) {
		if string(bytes.TrimSpace(line)) == paths.IgnoreFile {
			return nil
		}
	}

	entry := []byte(paths.IgnoreFile + "\n")
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		entry = append([]byte("\n"), entry...)
	}
	if err := fsys.AppendFile(path, entry, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to update %s", path)
	}
	return nil
}
