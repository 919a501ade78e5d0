// Package storage provides the object storage implementation backed by a
// gocloud.dev blob bucket fronted by a CDN.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"yasen/config"
	"yasen/internal/domain/lifecycle"
	"yasen/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // Registers the s3:// bucket scheme.
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements service.ObjectStorage on top of a blob bucket.
// Uploaded objects are served through the CDN, and the public URL format
// is persisted, so it must remain stable.
type blobStorage struct {
	bucket     *blob.Bucket
	accessKey  string
	cdnBaseURL string
}

// New opens the configured bucket and returns it as a service.ObjectStorage.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:     bucket,
		accessKey:  cfg.AccessKey,
		cdnBaseURL: strings.TrimRight(cfg.CDNBaseURL, "/"),
	}, nil
}

// Put uploads one object and returns its public CDN URL.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	writeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(writeCtx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write object to bucket")
	}

	return s.publicURL(key), nil
}

// publicURL builds the CDN URL for an uploaded object.
func (s *blobStorage) publicURL(key string) string {
	return s.cdnBaseURL + "/projects/" + s.accessKey + "/bucket/" + key
}
