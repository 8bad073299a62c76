package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Files and directories inside the storage root. These define the storage
// layout and are not user-configurable.
const (
	// DotrDirName is the directory name for dotr-specific files
	DotrDirName = "dotr"

	// RegistryFile is the tracked-file registry document
	RegistryFile = ".dotr.toml"

	// IgnoreFile is the ignore ledger
	IgnoreFile = ".dotrignore"

	// GitIgnoreFile keeps the ledger out of the shared repository
	GitIgnoreFile = ".gitignore"

	// GitDirName marks an initialized storage root
	GitDirName = ".git"
)

// Paths resolves live and storage locations of tracked files
type Paths interface {
	StorageRoot() string
	BaseDir() string
	ToRelative(absPath string) (string, error)
	ToAbsolute(file types.TrackedFile) string
	StoragePath(file types.TrackedFile) string
	RegistryPath() string
	IgnorePath() string
	GitIgnorePath() string
	GitDir() string
}

type paths struct {
	storageRoot string
	baseDir     string
}

// New validates that both roots exist as directories on fsys and returns a
// Paths anchored at their symlink-free locations.
func New(fsys types.FS, storageRoot, baseDir string) (Paths, error) {
	storage, err := NormalizePath(storageRoot)
	if err != nil {
		return nil, err
	}
	base, err := NormalizePath(baseDir)
	if err != nil {
		return nil, err
	}

	if err := requireDir(fsys, storage); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageMissing,
			"the storage path %s does not exist, please run `dotr init` first", storage).
			WithDetail("path", storage)
	}
	if err := requireDir(fsys, base); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageMissing,
			"the base directory %s does not exist", base).
			WithDetail("path", base)
	}

	// live files are canonicalized before ToRelative, so the roots must be too
	if storage, err = fsys.EvalSymlinks(storage); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", storageRoot)
	}
	if base, err = fsys.EvalSymlinks(base); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", baseDir)
	}

	return &paths{storageRoot: storage, baseDir: base}, nil
}

func requireDir(fsys types.FS, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir)
	}
	return nil
}

// StorageRoot returns the git-backed mirror directory
func (p *paths) StorageRoot() string {
	return p.storageRoot
}

// BaseDir returns the directory live files are resolved against
func (p *paths) BaseDir() string {
	return p.baseDir
}

// ToRelative strips the base directory from an absolute path. Paths outside
// the base directory (or the base directory itself) are rejected.
func (p *paths) ToRelative(absPath string) (string, error) {
	if err := ValidatePath(absPath); err != nil {
		return "", err
	}
	if !filepath.IsAbs(absPath) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not an absolute path", absPath)
	}

	rel, err := filepath.Rel(p.baseDir, filepath.Clean(absPath))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrOutsideBase,
			"the file %s is not in the base directory %s", absPath, p.baseDir).
			WithDetail("path", absPath).
			WithDetail("base", p.baseDir)
	}

	return filepath.ToSlash(rel), nil
}

// ToAbsolute returns the live location of a tracked file
func (p *paths) ToAbsolute(file types.TrackedFile) string {
	return filepath.Join(p.baseDir, filepath.FromSlash(file.Path))
}

// StoragePath returns the location of a tracked file's storage copy
func (p *paths) StoragePath(file types.TrackedFile) string {
	return filepath.Join(p.storageRoot, filepath.FromSlash(file.Path))
}

func (p *paths) RegistryPath() string {
	return filepath.Join(p.storageRoot, RegistryFile)
}

func (p *paths) IgnorePath() string {
	return filepath.Join(p.storageRoot, IgnoreFile)
}

func (p *paths) GitIgnorePath() string {
	return filepath.Join(p.storageRoot, GitIgnoreFile)
}

func (p *paths) GitDir() string {
	return filepath.Join(p.storageRoot, GitDirName)
}

// DefaultStorageRoot returns $XDG_DATA_HOME/dotr
func DefaultStorageRoot() string {
	return filepath.Join(xdg.DataHome, DotrDirName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
