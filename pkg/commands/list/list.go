package list

import (
	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Workspace workspace.Options
}

// ListResult holds the tracked files in registry order.
type ListResult struct {
	Files []types.TrackedFile `json:"files"`
}

// List returns every tracked file.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Msg("Executing command")

	ws, err := workspace.Open(opts.Workspace)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Files: ws.Registry.Files()}

	log.Info().Str("command", "List").Int("fileCount", len(result.Files)).Msg("Command finished")
	return result, nil
}
