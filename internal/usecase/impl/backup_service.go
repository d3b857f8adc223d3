package impl

import (
	"context"
	"log/slog"
	"time"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/service"
	"workforce/internal/infra/docstore"
	"workforce/internal/usecase"

	"github.com/pkg/errors"
)

type backupService struct {
	store  *docstore.Store
	remote service.ObjectStorage
	path   string
	logger *slog.Logger
}

// NewBackupService creates the backup/restore synchronizer. Remote objects
// live under "<deployment>/<objectName>" so deployments never collide.
func NewBackupService(
	store *docstore.Store,
	remote service.ObjectStorage,
	deployment string,
	objectName string,
	logger *slog.Logger,
) usecase.BackupUsecase {
	return &backupService{
		store:  store,
		remote: remote,
		path:   deployment + "/" + objectName,
		logger: logger,
	}
}

// Backup pushes the current document bytes with overwrite semantics.
func (s *backupService) Backup(ctx context.Context) error {
	data, err := s.store.Bytes()
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			s.logger.Info("No document to back up yet, skipping")

			return nil
		}

		return errors.Wrap(err, "failed to read document for backup")
	}

	if err := s.remote.Upload(ctx, s.path, data); err != nil {
		return domainerrors.ErrRemoteService.WithDetails(err.Error())
	}

	err = s.store.Update(func(doc *entity.Document) error {
		now := time.Now().UTC()
		doc.Backups = entity.AppendBounded(doc.Backups, entity.BackupRecord{
			Type:      entity.BackupAuto,
			Timestamp: now,
			Success:   true,
		}, entity.MaxBackupRecords)
		doc.Statistics.LastBackup = &now

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to record backup")
	}

	s.logger.Info("Backup uploaded", slog.String("path", s.path))

	return nil
}

// Restore pulls the remote document. Called once at startup, before the
// store is initialized; a missing remote object is a normal fresh install.
func (s *backupService) Restore(ctx context.Context) error {
	exists, err := s.remote.Exists(ctx, s.path)
	if err != nil {
		return domainerrors.ErrRemoteService.WithDetails(err.Error())
	}
	if !exists {
		s.logger.Info("No remote backup found, starting fresh",
			slog.String("path", s.path),
		)

		return nil
	}

	data, err := s.remote.Download(ctx, s.path)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			s.logger.Info("Remote backup vanished between probe and download, starting fresh")

			return nil
		}

		return domainerrors.ErrRemoteService.WithDetails(err.Error())
	}

	if err := s.store.ReplaceBytes(data); err != nil {
		return errors.Wrap(err, "failed to apply restored document")
	}

	err = s.store.Update(func(doc *entity.Document) error {
		doc.Backups = entity.AppendBounded(doc.Backups, entity.BackupRecord{
			Type:      entity.BackupRestore,
			Timestamp: time.Now().UTC(),
			Success:   true,
		}, entity.MaxBackupRecords)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to record restore")
	}

	s.logger.Info("Document restored from remote backup",
		slog.String("path", s.path),
	)

	return nil
}
