package add

import (
	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/types"
)

// AddOptions defines the options for the Add command
type AddOptions struct {
	Workspace workspace.Options

	// Paths are the live files to start tracking
	Paths []string
}

// AddResult lists the files that were added
type AddResult struct {
	Added []types.TrackedFile `json:"added"`
}

// Add tracks each path in order. It stops at the first rejected path; the
// files added before it stay tracked.
func Add(opts AddOptions) (*AddResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Add").Strs("paths", opts.Paths).Msg("Executing command")

	ws, err := workspace.Open(opts.Workspace)
	if err != nil {
		return nil, err
	}
	engine, err := ws.Engine(nil)
	if err != nil {
		return nil, err
	}

	result := &AddResult{Added: []types.TrackedFile{}}
	for _, path := range opts.Paths {
		file, err := engine.Track(path)
		if err != nil {
			return result, err
		}
		result.Added = append(result.Added, file)
	}

	log.Info().Str("command", "Add").Int("added", len(result.Added)).Msg("Command finished")
	return result, nil
}
