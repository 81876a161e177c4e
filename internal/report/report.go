// Package report turns aggregated extension records into the tabular report
// and delivers it through a pluggable sink.
package report

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/Jakob-Lindstrom/extinv/internal/inventory"
)

// ContentTypeCSV is the media type used for every serialized report.
const ContentTypeCSV = "text/csv; charset=utf-8"

var csvHeader = []string{"ExtensionID", "Name", "Browser"}

// Report is the final, deduplicated inventory.
type Report struct {
	Records []inventory.Record
}

// New builds a Report from aggregated records.
func New(records []inventory.Record) *Report {
	return &Report{Records: records}
}

// CSV serializes the report with the fixed three-column header. An empty
// report still produces the header row.
func (r *Report) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range r.Records {
		if err := w.Write([]string{rec.ID, rec.Name, rec.Browser}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sink delivers a serialized report somewhere.
type Sink interface {
	Write(ctx context.Context, r *Report) error
	// Describe names the destination for user-facing messages.
	Describe() string
}
