// Package storage talks to the S3-compatible object store that holds trip
// images. Hosted backends (Supabase, R2, MinIO) all speak the S3 API, so a
// single path-style client covers them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// DefaultBucket is the bucket trip images are uploaded to.
const DefaultBucket = "trip-images"

// Settings configures the object-store client.
type Settings struct {
	// Endpoint is the S3 API base URL, e.g. https://<project>.supabase.co/storage/v1/s3.
	Endpoint string
	// Region is passed to request signing. S3-compatible stores mostly ignore it.
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// PublicBaseURL prefixes public object URLs as <PublicBaseURL>/<bucket>/<key>.
	// Defaults to Endpoint.
	PublicBaseURL string
}

// Configured reports whether enough is set to make authenticated requests.
func (s Settings) Configured() bool {
	return s.Endpoint != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Bucket is the subset of object-store operations the site needs.
type Bucket interface {
	// Upload stores body under key. The object is expected to be publicly readable.
	Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) error

	// PublicURL returns the URL the object under key is served from.
	// It is computed locally; no request is made.
	PublicURL(key string) string
}

// putter is the slice of *s3.S3 used by s3Bucket.
type putter interface {
	PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

type s3Bucket struct {
	client     putter
	bucket     string
	publicBase string
}

// NewBucket builds a Bucket for the configured S3-compatible endpoint.
// No network traffic happens until the first Upload.
func NewBucket(s Settings) (Bucket, error) {
	if !s.Configured() {
		return nil, errors.New("storage.NewBucket: endpoint and access keys are required")
	}
	if s.Bucket == "" {
		s.Bucket = DefaultBucket
	}
	if s.Region == "" {
		s.Region = "us-east-1"
	}

	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(s.Endpoint),
		Region:           aws.String(s.Region),
		Credentials:      credentials.NewStaticCredentials(s.AccessKeyID, s.SecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("storage.NewBucket: session: %w", err)
	}

	base := s.PublicBaseURL
	if base == "" {
		base = s.Endpoint
	}

	return &s3Bucket{
		client:     s3.New(sess),
		bucket:     s.Bucket,
		publicBase: strings.TrimRight(base, "/"),
	}, nil
}

func (b *s3Bucket) Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := b.client.PutObjectWithContext(ctx, in); err != nil {
		return fmt.Errorf("storage.Bucket.Upload: %s: %w", key, err)
	}
	return nil
}

func (b *s3Bucket) PublicURL(key string) string {
	return b.publicBase + "/" + url.PathEscape(b.bucket) + "/" + url.PathEscape(key)
}
