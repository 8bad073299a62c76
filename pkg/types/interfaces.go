package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dotr operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (fs.File, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// AppendFile appends data to name, creating it with perm if needed.
	AppendFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// EvalSymlinks returns the canonical form of path. Implementations
	// without symlink support return the cleaned path of an existing entry.
	EvalSymlinks(path string) (string, error)
}
