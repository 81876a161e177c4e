package report

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

const blobUploadTimeout = 30 * time.Second

// BlobSink uploads the CSV report to a blob-storage endpoint with a single
// HTTP PUT. The endpoint is typically a pre-signed container URL; an
// optional bearer token covers endpoints fronted by a gateway instead.
type BlobSink struct {
	URL   string
	Token string

	client *http.Client
}

// NewBlobSink returns a BlobSink for the given endpoint. A missing endpoint
// is a configuration error, not something to discover mid-upload.
func NewBlobSink(url, token string) (*BlobSink, error) {
	if url == "" {
		return nil, fmt.Errorf("no blob endpoint configured (set EXTINV_BLOB_URL)")
	}
	return &BlobSink{
		URL:    url,
		Token:  token,
		client: &http.Client{Timeout: blobUploadTimeout},
	}, nil
}

func (s *BlobSink) Write(ctx context.Context, r *Report) error {
	data, err := r.CSV()
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.URL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("x-ms-blob-type", "BlockBlob")
	req.Header.Set("Content-Type", ContentTypeCSV)
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("report upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("report upload failed: %s", resp.Status)
	}
	return nil
}

func (s *BlobSink) Describe() string {
	return s.URL
}
