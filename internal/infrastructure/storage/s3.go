package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"expediente-admin/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage writes images to an S3-compatible bucket using path-style URLs.
type S3Storage struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	opts := s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	endpoint := strings.TrimSuffix(cfg.S3Endpoint, "/")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.S3Region)
	}

	return &S3Storage{
		client:   s3.New(opts),
		bucket:   cfg.S3Bucket,
		endpoint: endpoint,
	}
}

func (s *S3Storage) Put(ctx context.Context, reference, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(reference),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", s.bucket, reference, err)
	}
	return nil
}

func (s *S3Storage) URL(reference string) string {
	return s.endpoint + "/" + s.bucket + "/" + strings.TrimPrefix(reference, "/")
}
