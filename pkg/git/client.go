package git

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotr/pkg/errors"
)

// Identity keys git refuses to commit without
var identityKeys = []string{"user.name", "user.email"}

// Asker reads a free-text answer from the operator
type Asker interface {
	Ask(message string) (string, error)
}

// Client wraps the git operations dotr needs
type Client struct {
	strict  Runner
	lenient Runner
	remote  string
}

// NewClient returns a client running binary in dir. remote may be empty to
// use git's configured upstream.
func NewClient(binary, dir, remote string) *Client {
	r := NewRunner(binary, dir)
	return NewClientWithRunners(r, r.AsLenient(), remote)
}

// NewClientWithRunners builds a client on explicit runners
func NewClientWithRunners(strict, lenient Runner, remote string) *Client {
	return &Client{strict: strict, lenient: lenient, remote: remote}
}

// Clone clones url into the runner's directory
func (c *Client) Clone(ctx context.Context, url string) (string, error) {
	return c.strict.Run(ctx, "clone", url, ".")
}

// HasChanges reports whether the working tree differs from HEAD
func (c *Client) HasChanges(ctx context.Context) (bool, error) {
	out, err := c.strict.Run(ctx, "status", "--porcelain=v2")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// AddAll stages every change
func (c *Client) AddAll(ctx context.Context) (string, error) {
	return c.strict.Run(ctx, "add", "-A")
}

// Commit records the staged changes
func (c *Client) Commit(ctx context.Context, message string) (string, error) {
	return c.strict.Run(ctx, "commit", "-m", message)
}

// Push sends commits to the remote
func (c *Client) Push(ctx context.Context) (string, error) {
	return c.strict.Run(ctx, c.withRemote("push")...)
}

// Pull fetches and merges from the remote
func (c *Client) Pull(ctx context.Context) (string, error) {
	return c.strict.Run(ctx, c.withRemote("pull")...)
}

// ConfigGet returns a config value, or "" when it is unset
func (c *Client) ConfigGet(ctx context.Context, key string) (string, error) {
	return c.lenient.Run(ctx, "config", key)
}

// ConfigSet writes a repository-local config value
func (c *Client) ConfigSet(ctx context.Context, key, value string) error {
	_, err := c.strict.Run(ctx, "config", key, value)
	return err
}

// EnsureIdentity asks for and stores user.name and user.email when git has
// none configured
func (c *Client) EnsureIdentity(ctx context.Context, asker Asker) error {
	for _, key := range identityKeys {
		value, err := c.ConfigGet(ctx, key)
		if err != nil {
			return err
		}
		if value != "" {
			continue
		}

		answer, err := asker.Ask("Git " + key + " is not set, please enter it:")
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return errors.Newf(errors.ErrInvalidInput, "git %s cannot be empty", key)
		}
		if err := c.ConfigSet(ctx, key, answer); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) withRemote(verb string) []string {
	if c.remote == "" {
		return []string{verb}
	}
	return []string{verb, c.remote}
}
