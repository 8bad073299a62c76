package sync

import (
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/internal/hashutil"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
)

// SyncFromLive brings the storage copy of file up to date with its live copy.
// A file whose live copy is gone is untracked.
func (e *Engine) SyncFromLive(file types.TrackedFile) (Outcome, error) {
	livePath := e.paths.ToAbsolute(file)
	storagePath := e.paths.StoragePath(file)
	logger := e.logger.With().Str("path", file.Path).Logger()

	liveExists, err := e.exists(livePath)
	if err != nil {
		return OutcomeUnchanged, err
	}
	if !liveExists {
		logger.Debug().Str("live", livePath).Msg("Live file is gone, untracking")
		return e.untrack(file)
	}

	storageExists, err := e.exists(storagePath)
	if err != nil {
		return OutcomeUnchanged, err
	}

	if storageExists {
		current, err := e.hash(livePath)
		if err != nil {
			return OutcomeUnchanged, err
		}
		if current == file.Hash {
			logger.Trace().Msg("Unchanged")
			return OutcomeUnchanged, nil
		}
		logger.Debug().Str("old", file.Hash).Str("new", current).Msg("Live file changed")
	}

	data, err := e.copyFile(livePath, storagePath)
	if err != nil {
		return OutcomeUnchanged, err
	}

	newHash := hashutil.Sum(data)
	if err := e.registry.SetHash(file.Path, newHash); err != nil {
		return OutcomeUnchanged, err
	}

	logger.Info().Str("hash", newHash).Msg("Stored live changes")
	return OutcomeUpdated, nil
}

// untrack deletes the storage copy of file and drops it from the registry
func (e *Engine) untrack(file types.TrackedFile) (Outcome, error) {
	storagePath := e.paths.StoragePath(file)

	storageExists, err := e.exists(storagePath)
	if err != nil {
		return OutcomeUnchanged, err
	}
	if !storageExists {
		return OutcomeUnchanged, consistencyError(file, storagePath)
	}

	if err := e.fs.Remove(storagePath); err != nil {
		return OutcomeUnchanged, errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", storagePath)
	}
	if err := e.registry.Remove(file.Path); err != nil {
		return OutcomeUnchanged, err
	}
	if err := e.registry.Save(); err != nil {
		return OutcomeUnchanged, err
	}

	e.logger.Info().Str("path", file.Path).Msg("Untracked deleted file")
	return OutcomeUntracked, nil
}

// PushAll runs SyncFromLive over every tracked file in registry order and
// saves the registry. It stops at the first failure; the registry is still
// saved with the changes of the files processed before it.
func (e *Engine) PushAll() (*Report, error) {
	done := logging.LogOperationStart(e.logger, "push")
	defer done()

	report := &Report{Direction: DirectionPush, Results: []Result{}}
	var runErr error
	for _, file := range e.registry.Files() {
		outcome, err := e.SyncFromLive(file)
		if err != nil {
			report.FailedPath = file.Path
			runErr = err
			break
		}
		report.add(file, outcome)
	}

	if e.registry.Dirty() {
		if err := e.registry.Save(); err != nil {
			if runErr != nil {
				e.logger.Error().Err(err).Msg("Failed to save registry after push failure")
				return report, runErr
			}
			return report, err
		}
	}

	e.logBatch(report, runErr)
	return report, runErr
}

func (e *Engine) logBatch(report *Report, err error) {
	event := e.logger.Info()
	if err != nil {
		event = e.logger.Warn().Err(err).Str("failed", report.FailedPath)
	}
	event.Str("direction", string(report.Direction)).
		Int("files", len(report.Results)).
		Bool("changed", report.Changed()).
		Msg("Batch finished")
}
