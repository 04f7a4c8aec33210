// Where: internal/publish/uploader.go
// What: Bundle upload to an S3 bucket.
// Why: Ship the built .flatpak to object storage behind a testable interface.
package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// bundleContentType is the media type registered for single-file bundles.
const bundleContentType = "application/vnd.flatpak"

// S3API is the slice of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Request describes one bundle upload.
type Request struct {
	Bucket     string
	Key        string
	BundlePath string
}

// Uploader sends bundle files to an S3-compatible object store.
type Uploader struct {
	client S3API
}

// NewUploader creates an Uploader over the given client.
func NewUploader(client S3API) *Uploader {
	return &Uploader{client: client}
}

// Upload streams the bundle at req.BundlePath to s3://bucket/key. The key
// defaults to the bundle filename when empty.
func (u *Uploader) Upload(ctx context.Context, req Request) error {
	if u.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	if req.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}

	key := req.Key
	if key == "" {
		key = filepath.Base(req.BundlePath)
	}

	file, err := os.Open(req.BundlePath)
	if err != nil {
		return fmt.Errorf("open bundle: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat bundle: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(req.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(bundleContentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
