package status

import (
	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/sync"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	Workspace workspace.Options
}

// StatusResult holds one entry per tracked file.
type StatusResult struct {
	Files []sync.Entry `json:"files"`
}

// Status compares every tracked file with its live copy without changing
// anything.
func Status(opts StatusOptions) (*StatusResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Status").Msg("Executing command")

	ws, err := workspace.Open(opts.Workspace)
	if err != nil {
		return nil, err
	}
	engine, err := ws.Engine(nil)
	if err != nil {
		return nil, err
	}

	entries, err := engine.StatusAll()
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Status").Int("fileCount", len(entries)).Msg("Command finished")
	return &StatusResult{Files: entries}, nil
}
