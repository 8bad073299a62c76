package pull

import (
	"context"

	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/sync"
)

// PullOptions defines the options for the Pull command
type PullOptions struct {
	Workspace workspace.Options
	Git       workspace.GitClient

	// Policy decides about tracked files missing from the live tree
	Policy sync.MissingFilePolicy
}

// PullResult describes a pull
type PullResult struct {
	Report    *sync.Report `json:"report"`
	GitOutput string       `json:"git_output,omitempty"`
}

// Pull updates the storage checkout from its remote, then copies every
// tracked file from storage to the live tree
func Pull(ctx context.Context, opts PullOptions) (*PullResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Pull").Msg("Executing command")

	// preconditions are checked before git touches the checkout
	if _, err := workspace.Open(opts.Workspace); err != nil {
		return nil, err
	}

	out, err := opts.Git.Pull(ctx)
	result := &PullResult{GitOutput: out}
	if err != nil {
		return result, err
	}

	// the pull may have rewritten the registry and ledger
	ws, err := workspace.Open(opts.Workspace)
	if err != nil {
		return result, err
	}
	engine, err := ws.Engine(opts.Policy)
	if err != nil {
		return result, err
	}

	result.Report, err = engine.PullAll()
	if err != nil {
		return result, err
	}

	log.Info().Str("command", "Pull").
		Int("files", len(result.Report.Results)).
		Msg("Command finished")
	return result, nil
}
