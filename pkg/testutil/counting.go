package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/types"
)

// CountingFS wraps a types.FS and counts every mutating call
type CountingFS struct {
	types.FS

	mu     sync.Mutex
	writes int
	ops    []string
}

// NewCountingFS wraps fsys
func NewCountingFS(fsys types.FS) *CountingFS {
	return &CountingFS{FS: fsys}
}

// NewMemFS returns a counting in-memory filesystem
func NewMemFS() *CountingFS {
	return NewCountingFS(filesystem.NewMemory())
}

// Writes returns the number of mutating calls since the last Reset
func (c *CountingFS) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// Ops returns the mutating calls as "op path" strings
func (c *CountingFS) Ops() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.ops))
	copy(out, c.ops)
	return out
}

// Reset zeroes the counters
func (c *CountingFS) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = 0
	c.ops = nil
}

func (c *CountingFS) record(op, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.ops = append(c.ops, op+" "+path)
}

func (c *CountingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	c.record("write", name)
	return c.FS.WriteFile(name, data, perm)
}

func (c *CountingFS) AppendFile(name string, data []byte, perm fs.FileMode) error {
	c.record("append", name)
	return c.FS.AppendFile(name, data, perm)
}

func (c *CountingFS) MkdirAll(path string, perm fs.FileMode) error {
	c.record("mkdir", path)
	return c.FS.MkdirAll(path, perm)
}

func (c *CountingFS) Remove(name string) error {
	c.record("remove", name)
	return c.FS.Remove(name)
}

func (c *CountingFS) RemoveAll(path string) error {
	c.record("removeall", path)
	return c.FS.RemoveAll(path)
}

func (c *CountingFS) Rename(oldpath, newpath string) error {
	c.record("rename", newpath)
	return c.FS.Rename(oldpath, newpath)
}
