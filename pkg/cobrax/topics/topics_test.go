package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source() fstest.MapFS {
	return fstest.MapFS{
		"sync.md":        {Data: []byte("# Sync\n\nHow files move.")},
		"option-yes.txt": {Data: []byte("Create every missing file.")},
		"notes.json":     {Data: []byte("{}")},
		"nested/ignore.md": {
			Data: []byte("# Ignore ledger"),
		},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(source(), Options{})
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"ignore", "option-yes", "sync"}, tm.ListTopics())

	topic, ok := tm.GetTopic("sync")
	require.True(t, ok)
	assert.Equal(t, "# Sync\n\nHow files move.", topic.Content)

	topic, ok = tm.GetTopic("--yes")
	require.True(t, ok)
	assert.Equal(t, "option-yes", topic.Name)

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok, ".json is not a topic extension")
}

func TestCustomExtensions(t *testing.T) {
	tm := New(source(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "dotr", Short: "dotfile sync", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "push", Short: "Push live files", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	_, err := Initialize(root, source(), Options{})
	require.NoError(t, err)
	return root, &out
}

func TestHelpTopic(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "sync"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "# Sync\n\nHow files move.", out.String())
}

func TestHelpTopicsList(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "General topics:\n  ignore\n  sync")
	assert.Contains(t, out.String(), "Option topics:\n  --yes")
	assert.Contains(t, out.String(), "dotr help <topic>")
}

func TestHelpFallsBackToCommands(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "push"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Push live files")
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer("notty")
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
	assert.Contains(t, r.Render("# Title", ".md"), "Title")
}
