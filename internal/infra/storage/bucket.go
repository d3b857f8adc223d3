package storage

import (
	"context"
	"log/slog"

	"workforce/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// bucketStorage implements ObjectStorage over any gocloud.dev blob bucket
// (file://, gs://, s3://).
type bucketStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBucketStorage opens the bucket identified by url.
func NewBucketStorage(ctx context.Context, url string, logger *slog.Logger) (service.ObjectStorage, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	logger.Info("Bucket storage initialized", slog.String("url", url))

	return &bucketStorage{bucket: bucket, logger: logger}, nil
}

func (s *bucketStorage) Upload(ctx context.Context, path string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, path, data, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *bucketStorage) Download(ctx context.Context, path string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.WithStack(err)
	}

	return data, nil
}

func (s *bucketStorage) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, path)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return exists, nil
}

func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
