package sync

import (
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
)

// SyncToLive brings the live copy of file in line with storage. Storage wins
// over a diverged live file. A missing live file is materialized or ignored
// according to the ledger and the policy.
func (e *Engine) SyncToLive(file types.TrackedFile) (Outcome, error) {
	livePath := e.paths.ToAbsolute(file)
	storagePath := e.paths.StoragePath(file)
	logger := e.logger.With().Str("path", file.Path).Logger()

	storageExists, err := e.exists(storagePath)
	if err != nil {
		return OutcomeUnchanged, err
	}
	if !storageExists {
		return OutcomeUnchanged, consistencyError(file, storagePath)
	}

	liveExists, err := e.exists(livePath)
	if err != nil {
		return OutcomeUnchanged, err
	}

	if liveExists {
		current, err := e.hash(livePath)
		if err != nil {
			return OutcomeUnchanged, err
		}
		if current == file.Hash {
			logger.Trace().Msg("Unchanged")
			return OutcomeUnchanged, nil
		}
		logger.Debug().Str("live", current).Str("stored", file.Hash).Msg("Live file diverged, storage wins")
	} else {
		if e.ledger.Contains(file.Path) {
			logger.Debug().Msg("Ignored")
			return OutcomeIgnored, nil
		}

		decision, err := e.policy.Resolve(file, livePath)
		if err != nil {
			return OutcomeUnchanged, err
		}
		if decision != DecisionCreate {
			if err := e.ledger.Add(file.Path); err != nil {
				return OutcomeUnchanged, err
			}
			return OutcomeNewlyIgnored, nil
		}
	}

	if _, err := e.copyFile(storagePath, livePath); err != nil {
		return OutcomeUnchanged, err
	}

	logger.Info().Str("live", livePath).Msg("Materialized from storage")
	return OutcomeMaterialized, nil
}

// PullAll runs SyncToLive over every tracked file in registry order,
// stopping at the first failure
func (e *Engine) PullAll() (*Report, error) {
	done := logging.LogOperationStart(e.logger, "pull")
	defer done()

	report := &Report{Direction: DirectionPull, Results: []Result{}}
	var runErr error
	for _, file := range e.registry.Files() {
		outcome, err := e.SyncToLive(file)
		if err != nil {
			report.FailedPath = file.Path
			runErr = err
			break
		}
		report.add(file, outcome)
	}

	e.logBatch(report, runErr)
	return report, runErr
}
