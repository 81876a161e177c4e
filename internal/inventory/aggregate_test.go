package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate())
	assert.Empty(t, Aggregate(nil, nil))
}

func TestAggregateCollapsesDuplicateIDs(t *testing.T) {
	chrome := []Record{{ID: "shared-extension", Name: "From Chrome", Browser: "Chrome"}}
	edge := []Record{{ID: "shared-extension", Name: "From Edge", Browser: "Edge"}}

	records := Aggregate(chrome, edge)
	require.Len(t, records, 1)
	// First occurrence in concatenation order survives.
	assert.Equal(t, "From Chrome", records[0].Name)
	assert.Equal(t, "Chrome", records[0].Browser)
}

func TestAggregateSortsAscendingByID(t *testing.T) {
	records := Aggregate([]Record{
		{ID: "charlie", Name: "C", Browser: "Chrome"},
		{ID: "alpha", Name: "A", Browser: "Chrome"},
		{ID: "bravo", Name: "B", Browser: "Edge"},
	})
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].ID)
	assert.Equal(t, "bravo", records[1].ID)
	assert.Equal(t, "charlie", records[2].ID)
}

func TestAggregateKeepsDistinctIDs(t *testing.T) {
	chrome := []Record{{ID: "only-chrome", Name: "A", Browser: "Chrome"}}
	edge := []Record{{ID: "only-edge", Name: "B", Browser: "Edge"}}

	records := Aggregate(chrome, edge)
	assert.Len(t, records, 2)
}

// Scanner output feeds straight into Aggregate: two extension directories,
// one locale-resolved and one ignored, across two browser roots sharing an
// extension.
func TestScanAggregateEndToEnd(t *testing.T) {
	chromeRoot := t.TempDir()
	edgeRoot := t.TempDir()

	writeManifest(t, chromeRoot, "localized-extension", "3.1.0", "__MSG_appName__")
	writeExtensionFile(t, chromeRoot, "localized-extension", "3.1.0", "_locales/en/messages.json",
		`{"appName": {"message": "Shopping Assistant"}}`)
	writeManifest(t, chromeRoot, "builtin-extension", "1.0.0", "Bundled Thing")
	writeManifest(t, edgeRoot, "localized-extension", "3.0.0", "__MSG_appName__")

	ignored := map[string]struct{}{"builtin-extension": {}}
	records := Aggregate(
		Scan(chromeRoot, ignored, "Chrome"),
		Scan(edgeRoot, ignored, "Edge"),
	)

	require.Len(t, records, 1)
	assert.Equal(t, "localized-extension", records[0].ID)
	assert.Equal(t, "Shopping Assistant", records[0].Name)
	assert.Equal(t, "Chrome", records[0].Browser)
}
