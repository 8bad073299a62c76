package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingFSCountsMutationsOnly(t *testing.T) {
	fs := NewMemFS()

	require.NoError(t, fs.MkdirAll("/a", 0755))
	require.NoError(t, fs.WriteFile("/a/f", []byte("x"), 0644))
	require.NoError(t, fs.AppendFile("/a/f", []byte("y"), 0644))

	_, err := fs.ReadFile("/a/f")
	require.NoError(t, err)
	_, err = fs.Stat("/a/f")
	require.NoError(t, err)

	assert.Equal(t, 3, fs.Writes())
	assert.Equal(t, []string{"mkdir /a", "write /a/f", "append /a/f"}, fs.Ops())

	require.NoError(t, fs.Rename("/a/f", "/a/g"))
	require.NoError(t, fs.Remove("/a/g"))
	assert.Equal(t, 5, fs.Writes())

	fs.Reset()
	assert.Equal(t, 0, fs.Writes())
	assert.Empty(t, fs.Ops())
}
