// Package types defines the core types and interfaces shared across dotr:
// the filesystem abstraction every component writes through and the
// TrackedFile record that the registry persists and the sync engine updates.
package types
