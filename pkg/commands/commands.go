// Package commands provides high-level command implementations for dotr.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the sync engine.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command (clone and seed storage)
//   - add/        - Add command (start tracking files)
//   - push/       - Push command (live to storage, then git push)
//   - pull/       - Pull command (git pull, then storage to live)
//   - status/     - Status command
//   - list/       - List command
//   - workspace/  - Shared preconditions and loading
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"context"

	"github.com/arthur-debert/dotr/pkg/commands/add"
	"github.com/arthur-debert/dotr/pkg/commands/initialize"
	"github.com/arthur-debert/dotr/pkg/commands/list"
	"github.com/arthur-debert/dotr/pkg/commands/pull"
	"github.com/arthur-debert/dotr/pkg/commands/push"
	"github.com/arthur-debert/dotr/pkg/commands/status"
	"github.com/arthur-debert/dotr/pkg/commands/workspace"
)

// WorkspaceOptions locates the storage root and base directory.
type WorkspaceOptions = workspace.Options

// GitClient is the git surface commands depend on.
type GitClient = workspace.GitClient

// Init clones the storage repository and seeds its registry.
type InitOptions = initialize.InitOptions
type InitResult = initialize.InitResult

func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	return initialize.Init(ctx, opts)
}

// Add starts tracking live files.
type AddOptions = add.AddOptions
type AddResult = add.AddResult

func Add(opts AddOptions) (*AddResult, error) {
	return add.Add(opts)
}

// Push syncs live files into storage and publishes them.
type PushOptions = push.PushOptions
type PushResult = push.PushResult

func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	return push.Push(ctx, opts)
}

// Pull fetches storage and syncs it onto the live files.
type PullOptions = pull.PullOptions
type PullResult = pull.PullResult

func Pull(ctx context.Context, opts PullOptions) (*PullResult, error) {
	return pull.Pull(ctx, opts)
}

// Status reports how each tracked file compares with storage.
type StatusOptions = status.StatusOptions
type StatusResult = status.StatusResult

func Status(opts StatusOptions) (*StatusResult, error) {
	return status.Status(opts)
}

// List returns the tracked files.
type ListOptions = list.ListOptions
type ListResult = list.ListResult

func List(opts ListOptions) (*ListResult, error) {
	return list.List(opts)
}
