// Package config loads dotr settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file $XDG_CONFIG_HOME/dotr/config.toml (or config.yaml)
//  3. DOTR_* environment variables (DOTR_STORAGE_DIR, DOTR_GIT_REMOTE, ...)
//  4. explicit overrides, typically command-line flags
//
// These settings describe the machine, not the tracked files: the list of
// tracked files is the registry document inside the storage root.
package config
