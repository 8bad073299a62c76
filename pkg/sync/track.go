package sync

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Track starts tracking the regular file at path and persists the registry.
// Relative paths resolve against the working directory and symlinks are
// followed to the canonical file.
func (e *Engine) Track(path string) (types.TrackedFile, error) {
	if err := paths.ValidatePath(path); err != nil {
		return types.TrackedFile{}, err
	}

	abs, err := filepath.Abs(paths.ExpandHome(path))
	if err != nil {
		return types.TrackedFile{}, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", path)
	}

	canonical, err := e.fs.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return types.TrackedFile{}, errors.Newf(errors.ErrNotFound, "the file %s does not exist", abs).
				WithDetail("path", abs)
		}
		return types.TrackedFile{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", abs)
	}

	info, err := e.fs.Stat(canonical)
	if err != nil {
		return types.TrackedFile{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", canonical)
	}
	if info.IsDir() {
		return types.TrackedFile{}, errors.Newf(errors.ErrIsDirectory,
			"%s is a directory, only regular files can be added", canonical).WithDetail("path", canonical)
	}
	if !info.Mode().IsRegular() {
		return types.TrackedFile{}, errors.Newf(errors.ErrInvalidInput, "%s is not a regular file", canonical)
	}

	rel, err := e.paths.ToRelative(canonical)
	if err != nil {
		return types.TrackedFile{}, err
	}
	if e.registry.Has(rel) {
		return types.TrackedFile{}, errors.Newf(errors.ErrAlreadyTracked, "the file %s is already added", rel).
			WithDetail("path", rel)
	}

	hash, err := e.hash(canonical)
	if err != nil {
		return types.TrackedFile{}, err
	}

	file := types.TrackedFile{Path: rel, Hash: hash}
	if err := e.registry.Add(file); err != nil {
		return types.TrackedFile{}, err
	}
	if err := e.registry.Save(); err != nil {
		_ = e.registry.Remove(rel)
		return types.TrackedFile{}, err
	}

	e.logger.Info().Str("path", rel).Str("hash", file.ShortHash()).Msg("File tracked")
	return file, nil
}
