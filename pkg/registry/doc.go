// Package registry holds the ordered list of tracked files and persists it
// as the `.dotr.toml` document inside the storage root.
//
// A Registry is loaded fresh at the start of a command, owned exclusively by
// that command, mutated through Add/Remove/SetHash and written back with
// Save. Saves are atomic: the document is written to a sibling temp file and
// renamed over the original, so a crash never leaves a truncated registry.
//
// The document is meant to be committed alongside the mirrored files:
//
//	git_url = "git@github.com:me/dotfiles.git"
//
//	[[files]]
//	path = ".zshrc"
//	hash = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
package registry
