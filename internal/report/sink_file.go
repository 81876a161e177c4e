package report

import (
	"context"
	"fmt"
	"os"
)

const reportFileMode = 0644

// FileSink writes the CSV report to a local path.
type FileSink struct {
	Path string
}

// NewFileSink returns a FileSink for path. The path's parent directory must
// already exist.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("no report path configured")
	}
	return &FileSink{Path: path}, nil
}

func (s *FileSink) Write(ctx context.Context, r *Report) error {
	data, err := r.CSV()
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := os.WriteFile(s.Path, data, reportFileMode); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileSink) Describe() string {
	return s.Path
}
