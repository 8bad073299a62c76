package sync

import (
	"github.com/arthur-debert/dotr/pkg/types"
)

// Entry pairs a tracked file with its status
type Entry struct {
	File   types.TrackedFile `json:"file"`
	Status FileStatus        `json:"status"`
}

// Status inspects file without changing anything
func (e *Engine) Status(file types.TrackedFile) (FileStatus, error) {
	storageExists, err := e.exists(e.paths.StoragePath(file))
	if err != nil {
		return "", err
	}
	liveExists, err := e.exists(e.paths.ToAbsolute(file))
	if err != nil {
		return "", err
	}

	switch {
	case !storageExists && liveExists:
		return StatusNotStored, nil
	case !storageExists:
		return StatusStorageMissing, nil
	case !liveExists && e.ledger.Contains(file.Path):
		return StatusIgnored, nil
	case !liveExists:
		return StatusLiveMissing, nil
	}

	current, err := e.hash(e.paths.ToAbsolute(file))
	if err != nil {
		return "", err
	}
	if current != file.Hash {
		return StatusModified, nil
	}
	return StatusClean, nil
}

// StatusAll returns the status of every tracked file in registry order
func (e *Engine) StatusAll() ([]Entry, error) {
	files := e.registry.Files()
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		status, err := e.Status(file)
		if err != nil {
			return entries, err
		}
		entries = append(entries, Entry{File: file, Status: status})
	}
	return entries, nil
}
