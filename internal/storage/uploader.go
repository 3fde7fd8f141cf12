package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ErrDisabled is returned when no bucket is configured; image uploads are an
// optional feature.
var ErrDisabled = errors.New("image storage is not configured")

type Uploader struct {
	client *gcs.Client
	bucket string
}

// NewUploader returns a nil uploader (uploads disabled) when bucket is empty.
func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, nil
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// Upload streams the file into <prefix>/<uuid><ext> and returns its public
// URL.
func (u *Uploader) Upload(ctx context.Context, prefix, filename, contentType string, r io.Reader) (string, error) {
	if u == nil {
		return "", ErrDisabled
	}
	objectPath := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))
	w := u.client.Bucket(u.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, url.PathEscape(objectPath)), nil
}

func (u *Uploader) Close() error {
	if u == nil {
		return nil
	}
	return u.client.Close()
}
