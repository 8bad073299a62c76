package ignore

import (
	"bytes"
	"os"
	"strings"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
	"github.com/rs/zerolog"
)

// Ledger is the append-only set of ignored relative paths
type Ledger struct {
	fs      types.FS
	path    string
	entries []string
	set     map[string]struct{}
	logger  zerolog.Logger
}

// Load reads the ledger at path. A missing file is an empty ledger.
func Load(fsys types.FS, path string) (*Ledger, error) {
	l := &Ledger{
		fs:     fsys,
		path:   path,
		set:    make(map[string]struct{}),
		logger: logging.GetLogger("ignore").With().Str("path", path).Logger(),
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read ignore file %s", path)
	}

	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		l.remember(entry)
	}

	l.logger.Debug().Int("entries", len(l.entries)).Msg("Ignore ledger loaded")
	return l, nil
}

// Contains reports whether path was previously ignored
func (l *Ledger) Contains(path string) bool {
	_, ok := l.set[path]
	return ok
}

// Entries returns the ignored paths in the order they were recorded
func (l *Ledger) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add records path and appends it to the ledger file immediately
func (l *Ledger) Add(path string) error {
	if strings.TrimSpace(path) == "" || strings.ContainsAny(path, "\r\n") {
		return errors.Newf(errors.ErrInvalidInput, "invalid ignore entry %q", path)
	}
	if l.Contains(path) {
		return nil
	}

	line := []byte(path + "\n")
	if needsLeadingNewline(l.fs, l.path) {
		line = append([]byte("\n"), line...)
	}
	if err := l.fs.AppendFile(l.path, line, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to append to ignore file %s", l.path)
	}

	l.remember(path)
	l.logger.Info().Str("entry", path).Msg("Path added to ignore ledger")
	return nil
}

func (l *Ledger) remember(entry string) {
	if _, ok := l.set[entry]; ok {
		return
	}
	l.set[entry] = struct{}{}
	l.entries = append(l.entries, entry)
}

// needsLeadingNewline checks whether the existing file lacks a trailing newline
func needsLeadingNewline(fsys types.FS, path string) bool {
	data, err := fsys.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	return !bytes.HasSuffix(data, []byte("\n"))
}
