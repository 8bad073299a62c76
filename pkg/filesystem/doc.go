// Package filesystem provides filesystem implementations for dotr.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero adapter used for
// in-memory tests.
package filesystem
