package push

import (
	"context"

	"github.com/arthur-debert/dotr/pkg/commands/workspace"
	"github.com/arthur-debert/dotr/pkg/git"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/sync"
)

// DefaultCommitMessage is used when none is configured
const DefaultCommitMessage = "Update files"

// PushOptions defines the options for the Push command
type PushOptions struct {
	Workspace workspace.Options
	Git       workspace.GitClient

	// Asker supplies a git identity when none is configured
	Asker git.Asker

	CommitMessage string
}

// PushResult describes a push
type PushResult struct {
	Report    *sync.Report `json:"report"`
	Committed bool         `json:"committed"`
	GitOutput []string     `json:"git_output,omitempty"`
}

// Push copies live changes into storage, then commits and pushes them. Git is
// left alone when the storage checkout has nothing to commit.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Push").Msg("Executing command")

	ws, err := workspace.Open(opts.Workspace)
	if err != nil {
		return nil, err
	}
	engine, err := ws.Engine(nil)
	if err != nil {
		return nil, err
	}

	report, err := engine.PushAll()
	result := &PushResult{Report: report}
	if err != nil {
		return result, err
	}

	changed, err := opts.Git.HasChanges(ctx)
	if err != nil {
		return result, err
	}
	if !changed {
		log.Info().Str("command", "Push").Msg("No changes to commit")
		return result, nil
	}

	message := opts.CommitMessage
	if message == "" {
		message = DefaultCommitMessage
	}

	if err := result.collect(opts.Git.AddAll(ctx)); err != nil {
		return result, err
	}
	if err := opts.Git.EnsureIdentity(ctx, opts.Asker); err != nil {
		return result, err
	}
	if err := result.collect(opts.Git.Commit(ctx, message)); err != nil {
		return result, err
	}
	result.Committed = true
	if err := result.collect(opts.Git.Push(ctx)); err != nil {
		return result, err
	}

	log.Info().Str("command", "Push").
		Int("files", len(report.Results)).
		Bool("committed", result.Committed).
		Msg("Command finished")
	return result, nil
}

func (r *PushResult) collect(out string, err error) error {
	if out != "" {
		r.GitOutput = append(r.GitOutput, out)
	}
	return err
}
