package inventory

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrder(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "Chrome", catalog[0].Name)
	assert.Equal(t, "Edge", catalog[1].Name)
	for _, b := range catalog {
		assert.NotEmpty(t, b.IgnoredIDs, "%s should ignore its bundled extensions", b.Name)
	}
}

func TestExtensionsRootUnderDataRoot(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "")
	dataRoot := filepath.Join("home", "someone")

	for _, b := range Catalog() {
		root, err := b.ExtensionsRoot(dataRoot)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(root, dataRoot), "root %s should live under %s", root, dataRoot)
		assert.Equal(t, "Extensions", filepath.Base(root))
	}
}
