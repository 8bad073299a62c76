// Package paths provides centralized path handling for dotr.
//
// Two absolute directories anchor everything dotr touches:
//
//   - the base directory, where live files are resolved (the home directory)
//   - the storage root, the git-backed mirror holding tracked copies
//     (default: $XDG_DATA_HOME/dotr, i.e. ~/.local/share/dotr)
//
// Both are resolved once, validated to exist, and injected into the sync
// engine through a Paths value. Tracked files are identified by a
// slash-separated path relative to both roots.
//
// # Usage
//
//	p, err := paths.New(fs, "/home/me/.local/share/dotr", "/home/me")
//	if err != nil {
//	    return err
//	}
//
//	rel, err := p.ToRelative("/home/me/.config/git/config") // ".config/git/config"
//	live := p.ToAbsolute(types.TrackedFile{Path: rel})       // "/home/me/.config/git/config"
//	stored := p.StoragePath(types.TrackedFile{Path: rel})    // ".../dotr/.config/git/config"
package paths
