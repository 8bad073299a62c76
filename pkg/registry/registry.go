package registry

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Document is the persisted form of the registry
type Document struct {
	GitURL string              `toml:"git_url,omitempty"`
	Files  []types.TrackedFile `toml:"files"`
}

// Registry is the in-memory tracked-file list bound to its document path
type Registry struct {
	fs     types.FS
	path   string
	doc    Document
	dirty  bool
	logger zerolog.Logger
}

// New returns an empty registry that will be saved at path
func New(fsys types.FS, path string, gitURL string) *Registry {
	return &Registry{
		fs:     fsys,
		path:   path,
		doc:    Document{GitURL: gitURL, Files: []types.TrackedFile{}},
		dirty:  true,
		logger: logging.GetLogger("registry"),
	}
}

// Load reads the registry document at path
func Load(fsys types.FS, path string) (*Registry, error) {
	logger := logging.GetLogger("registry").With().Str("path", path).Logger()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigMissing, "the config file %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	seen := make(map[string]bool, len(doc.Files))
	for _, f := range doc.Files {
		if f.Path == "" {
			return nil, errors.Newf(errors.ErrConfigParse, "%s contains an entry without a path", path)
		}
		if !isLocal(f.Path) {
			return nil, errors.Newf(errors.ErrConfigParse, "%s lists %s which escapes the storage root", path, f.Path).
				WithDetail("path", f.Path)
		}
		if seen[f.Path] {
			return nil, errors.Newf(errors.ErrConfigParse, "%s lists %s more than once", path, f.Path)
		}
		seen[f.Path] = true
	}
	if doc.Files == nil {
		doc.Files = []types.TrackedFile{}
	}

	logger.Debug().Int("files", len(doc.Files)).Msg("Registry loaded")

	return &Registry{fs: fsys, path: path, doc: doc, logger: logger}, nil
}

// Path returns the document location
func (r *Registry) Path() string {
	return r.path
}

// GitURL returns the remote recorded at init time, if any
func (r *Registry) GitURL() string {
	return r.doc.GitURL
}

// Files returns a snapshot of the tracked files in registry order
func (r *Registry) Files() []types.TrackedFile {
	out := make([]types.TrackedFile, len(r.doc.Files))
	copy(out, r.doc.Files)
	return out
}

// Count returns the number of tracked files
func (r *Registry) Count() int {
	return len(r.doc.Files)
}

// Get returns the tracked file with the given relative path
func (r *Registry) Get(path string) (types.TrackedFile, bool) {
	if i := r.index(path); i >= 0 {
		return r.doc.Files[i], true
	}
	return types.TrackedFile{}, false
}

// Has checks if a relative path is tracked
func (r *Registry) Has(path string) bool {
	return r.index(path) >= 0
}

// Add appends a new tracked file
func (r *Registry) Add(file types.TrackedFile) error {
	if file.Path == "" {
		return errors.New(errors.ErrInvalidInput, "tracked file path cannot be empty")
	}
	if !isLocal(file.Path) {
		return errors.Newf(errors.ErrInvalidInput, "tracked file path %s must stay inside the base directory", file.Path).
			WithDetail("path", file.Path)
	}
	if r.Has(file.Path) {
		return errors.Newf(errors.ErrAlreadyTracked, "the file %s is already added", file.Path).
			WithDetail("path", file.Path)
	}

	r.doc.Files = append(r.doc.Files, file)
	r.dirty = true
	r.logger.Debug().Str("path", file.Path).Msg("Tracked file added")
	return nil
}

// Remove drops a tracked file, preserving the order of the others
func (r *Registry) Remove(path string) error {
	i := r.index(path)
	if i < 0 {
		return errors.Newf(errors.ErrNotFound, "%s is not tracked", path)
	}

	r.doc.Files = append(r.doc.Files[:i], r.doc.Files[i+1:]...)
	r.dirty = true
	r.logger.Debug().Str("path", path).Msg("Tracked file removed")
	return nil
}

// SetHash records the last-synced content hash of a tracked file
func (r *Registry) SetHash(path, hash string) error {
	i := r.index(path)
	if i < 0 {
		return errors.Newf(errors.ErrNotFound, "%s is not tracked", path)
	}

	if r.doc.Files[i].Hash != hash {
		r.doc.Files[i].Hash = hash
		r.dirty = true
	}
	return nil
}

// Dirty reports whether there are unsaved mutations
func (r *Registry) Dirty() bool {
	return r.dirty
}

// Save writes the document atomically
func (r *Registry) Save() error {
	data, err := toml.Marshal(r.doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode registry")
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(r.path))
	}

	tmp := r.path + ".tmp"
	if err := r.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write %s", tmp)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		_ = r.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to replace %s", r.path)
	}

	r.dirty = false
	r.logger.Debug().Str("path", r.path).Int("files", len(r.doc.Files)).Msg("Registry saved")
	return nil
}

func (r *Registry) index(path string) int {
	for i, f := range r.doc.Files {
		if f.Path == path {
			return i
		}
	}
	return -1
}

// isLocal reports whether a slash-separated registry path stays beneath both
// roots once joined to them.
func isLocal(path string) bool {
	return filepath.IsLocal(filepath.FromSlash(path))
}
