package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultBinary is the git executable looked up in PATH
const DefaultBinary = "git"

// Runner runs a git subcommand and returns its trimmed stdout
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ShellRunner runs the git binary as a subprocess in Dir
type ShellRunner struct {
	Binary string
	Dir    string

	// Lenient treats a failure that wrote nothing to stderr as success.
	// `git config <key>` exits 1 silently when the key is unset.
	Lenient bool

	logger zerolog.Logger
}

// NewRunner returns a strict runner for dir
func NewRunner(binary, dir string) *ShellRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ShellRunner{
		Binary: binary,
		Dir:    dir,
		logger: logging.GetLogger("git"),
	}
}

// AsLenient returns a lenient copy of the runner
func (r *ShellRunner) AsLenient() *ShellRunner {
	c := *r
	c.Lenient = true
	return &c
}

// Run executes `git args...` and returns trimmed stdout. Failures carry
// stderr in the error message and details.
func (r *ShellRunner) Run(ctx context.Context, args ...string) (string, error) {
	logging.LogCommand(r.Binary, args)

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	r.logger.Debug().
		Strs("args", args).
		Str("dir", r.Dir).
		Bool("success", err == nil).
		Msg("git finished")

	if err == nil {
		return out, nil
	}
	if r.Lenient && errOut == "" && ctx.Err() == nil {
		r.logger.Trace().Err(err).Strs("args", args).Msg("Ignoring silent git failure")
		return out, nil
	}

	msg := errOut
	if msg == "" {
		msg = err.Error()
	}
	return out, errors.Wrapf(err, errors.ErrGitCommand, "git %s failed: %s", strings.Join(args, " "), msg).
		WithDetail("args", args).
		WithDetail("stderr", errOut).
		WithDetail("dir", r.Dir)
}
