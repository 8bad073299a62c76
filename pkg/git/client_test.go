package git_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAsker struct {
	answers []string
	asked   []string
}

func (a *scriptedAsker) Ask(message string) (string, error) {
	a.asked = append(a.asked, message)
	answer := a.answers[0]
	a.answers = a.answers[1:]
	return answer, nil
}

func TestClientCommands(t *testing.T) {
	ctx := context.Background()
	fake := git.NewFakeRunner()
	client := git.NewClientWithRunners(fake, fake, "")

	_, err := client.Clone(ctx, "git@example.com:me/dots.git")
	require.NoError(t, err)
	_, err = client.AddAll(ctx)
	require.NoError(t, err)
	_, err = client.Commit(ctx, "Update files")
	require.NoError(t, err)
	_, err = client.Push(ctx)
	require.NoError(t, err)
	_, err = client.Pull(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"clone git@example.com:me/dots.git .",
		"add -A",
		"commit -m Update files",
		"push",
		"pull",
	}, fake.Commands())
}

func TestClientUsesRemote(t *testing.T) {
	fake := git.NewFakeRunner()
	client := git.NewClientWithRunners(fake, fake, "origin")

	_, _ = client.Push(context.Background())
	_, _ = client.Pull(context.Background())

	assert.Equal(t, []string{"push origin", "pull origin"}, fake.Commands())
}

func TestHasChanges(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{name: "clean", out: "", want: false},
		{name: "modified", out: "1 .M N... 100644 100644 100644 abc abc .zshrc", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := git.NewFakeRunner().On(tt.out, nil, "status", "--porcelain=v2")
			got, err := git.NewClientWithRunners(fake, fake, "").HasChanges(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasChangesPropagatesFailure(t *testing.T) {
	fake := git.NewFakeRunner().On("", errors.New(errors.ErrGitCommand, "not a git repository"), "status", "--porcelain=v2")

	_, err := git.NewClientWithRunners(fake, fake, "").HasChanges(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
}

func TestEnsureIdentity(t *testing.T) {
	fake := git.NewFakeRunner().On("Jane", nil, "config", "user.name")
	asker := &scriptedAsker{answers: []string{"  jane@example.com \n"}}
	client := git.NewClientWithRunners(fake, fake, "")

	require.NoError(t, client.EnsureIdentity(context.Background(), asker))

	assert.Len(t, asker.asked, 1)
	assert.Contains(t, asker.asked[0], "user.email")
	assert.Equal(t, []string{
		"config user.name",
		"config user.email",
		"config user.email jane@example.com",
	}, fake.Commands())
}

func TestEnsureIdentityRejectsEmptyAnswer(t *testing.T) {
	fake := git.NewFakeRunner()
	asker := &scriptedAsker{answers: []string{""}}

	err := git.NewClientWithRunners(fake, fake, "").EnsureIdentity(context.Background(), asker)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
