// Package testutil provides utilities for testing dotr components.
//
// Key components:
//   - TestEnvironment: storage root and base directory wired to a filesystem,
//     with a fresh registry and ignore ledger
//   - CountingFS: filesystem wrapper counting mutating calls
//   - FileTree: declarative file setup
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; only filesystem and git tests need EnvIsolated
//   - Define test data inline
//   - Each test builds its own environment; nothing is shared
package testutil
