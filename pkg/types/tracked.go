package types

// TrackedFile is a file the user opted into synchronization.
//
// Path is slash-separated and relative to both the base (home) directory and
// the storage root. Hash is the hex SHA-256 of the content last synced from
// the live location.
type TrackedFile struct {
	Path string `toml:"path" json:"path"`
	Hash string `toml:"hash" json:"hash"`
}

// ShortHash returns the first 12 characters of the hash for display.
func (f TrackedFile) ShortHash() string {
	if len(f.Hash) <= 12 {
		return f.Hash
	}
	return f.Hash[:12]
}
