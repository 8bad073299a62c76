package ignore_test

import (
	"testing"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/filesystem"
	"github.com/arthur-debert/dotr/pkg/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerPath = "/store/.dotrignore"

func TestLoadMissingLedgerIsEmpty(t *testing.T) {
	l, err := ignore.Load(filesystem.NewMemory(), ledgerPath)
	require.NoError(t, err)
	assert.Empty(t, l.Entries())
	assert.False(t, l.Contains("anything"))
}

func TestLoadSkipsBlankLines(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile(ledgerPath, []byte("\n.zshrc\n\n  .config/app.conf  \n.zshrc\n"), 0644))

	l, err := ignore.Load(fs, ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, []string{".zshrc", ".config/app.conf"}, l.Entries())
}

func TestContainsIsExactMatch(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile(ledgerPath, []byte("a/b.txt\n"), 0644))

	l, err := ignore.Load(fs, ledgerPath)
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"a/b.txt", true},
		{"a/b.txt.bak", false},
		{"b.txt", false},
		{"a", false},
		{"x/a/b.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Contains(tt.path))
		})
	}
}

func TestAddAppendsImmediately(t *testing.T) {
	fs := filesystem.NewMemory()
	l, err := ignore.Load(fs, ledgerPath)
	require.NoError(t, err)

	require.NoError(t, l.Add(".bashrc"))
	require.NoError(t, l.Add(".vimrc"))
	require.NoError(t, l.Add(".bashrc"))

	data, err := fs.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, ".bashrc\n.vimrc\n", string(data))

	reloaded, err := ignore.Load(fs, ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, []string{".bashrc", ".vimrc"}, reloaded.Entries())
}

func TestAddHandlesMissingTrailingNewline(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile(ledgerPath, []byte(".profile"), 0644))

	l, err := ignore.Load(fs, ledgerPath)
	require.NoError(t, err)
	require.NoError(t, l.Add(".inputrc"))

	data, err := fs.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, ".profile\n.inputrc\n", string(data))
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	l, err := ignore.Load(filesystem.NewMemory(), ledgerPath)
	require.NoError(t, err)

	for _, entry := range []string{"", "   ", "a\nb"} {
		err := l.Add(entry)
		require.Error(t, err, "entry %q", entry)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
}
