package inventory

import (
	"sort"

	"github.com/samber/lo"
)

// Aggregate merges per-browser scan results into one record per extension
// ID. Input order is preserved through a stable sort on ID, so the first
// record encountered for an ID survives; combined with the scanner's
// descending path order that tends to be the newest version's record. The
// result is ordered ascending by ID.
func Aggregate(batches ...[]Record) []Record {
	var merged []Record
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return lo.UniqBy(merged, func(r Record) string {
		return r.ID
	})
}
