package styles_test

import (
	"testing"

	"github.com/arthur-debert/dotr/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	expected := []string{
		"Header", "Bold", "Muted", "Info", "Success", "Warning", "Error",
		"FilePath", "Hash", "Label",
		"Unchanged", "Updated", "Untracked", "Ignored", "NewlyIgnored", "Materialized",
		"Clean", "Modified", "LiveMissing", "NotStored", "StorageMissing",
	}

	for _, name := range expected {
		assert.True(t, styles.Has(name), "style %s should be defined", name)
	}
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, styles.Render("Success", "done"), "done")
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStylesFromDataRejectsUnknownColor(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.Reset())
	})

	err := styles.LoadStylesFromData([]byte("styles:\n  Bad:\n    foreground: nope\n"))
	assert.Error(t, err)

	err = styles.LoadStylesFromData([]byte("colors: [unclosed"))
	assert.Error(t, err)

	require.NoError(t, styles.Reset())
	assert.True(t, styles.Has("Success"))
}
