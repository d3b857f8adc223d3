// Package storage provides the remote object-storage backends that mirror
// the document file for backup and restore.
package storage

import (
	"context"
	"log/slog"

	"workforce/config"
	"workforce/internal/domain/constants"
	"workforce/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopStorage is a no-op implementation when no remote storage is
// configured. Uploads vanish and nothing ever exists remotely, which reads
// as a permanent fresh install.
type noopStorage struct {
	logger *slog.Logger
}

func (s *noopStorage) Upload(ctx context.Context, path string, data []byte) error {
	s.logger.Debug("[NoopStorage] Remote storage disabled, dropping upload",
		slog.String("path", path),
	)

	return nil
}

func (s *noopStorage) Download(ctx context.Context, path string) ([]byte, error) {
	return nil, service.ErrObjectNotFound
}

func (s *noopStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, nil
}

func (s *noopStorage) Close() error {
	return nil
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage creates an ObjectStorage based on configuration.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	// If storage is not configured, return a no-op client.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Remote storage not configured, using no-op client")

		return &noopStorage{logger: logger}, nil
	}

	var store service.ObjectStorage
	var err error

	switch cfg.Provider {
	case constants.StorageProviderBucket:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for bucket provider")
		}
		logger.Info("Using blob bucket for remote storage",
			slog.String("url", cfg.BucketURL),
		)

		store, err = NewBucketStorage(params.Ctx, cfg.BucketURL, logger)
		if err != nil {
			return nil, err
		}

	case constants.StorageProviderDropbox:
		logger.Info("Using Dropbox for remote storage")

		store, err = NewDropboxStorage(cfg.Dropbox, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ObjectStorage")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStorage),
)
