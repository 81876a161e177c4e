package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the sink uses, kept narrow so tests
// can stub it.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads the CSV report as an S3 object.
type S3Sink struct {
	Bucket string
	Key    string

	client s3API
}

// NewS3Sink builds an S3Sink using the default AWS credential chain.
// Region falls back to the chain's own resolution when empty.
func NewS3Sink(ctx context.Context, bucket, key, region string) (*S3Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("no S3 bucket configured (set EXTINV_S3_BUCKET)")
	}
	if key == "" {
		return nil, fmt.Errorf("no S3 object key configured")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Sink{
		Bucket: bucket,
		Key:    key,
		client: s3.NewFromConfig(cfg),
	}, nil
}

func (s *S3Sink) Write(ctx context.Context, r *Report) error {
	data, err := r.CSV()
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentTypeCSV),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	return nil
}

func (s *S3Sink) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}
