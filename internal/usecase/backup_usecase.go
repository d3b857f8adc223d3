package usecase

import "context"

// BackupUsecase mirrors the document file to remote object storage. The
// remote copy is a periodic snapshot, authoritative only at cold start.
type BackupUsecase interface {
	// Backup pushes the current document bytes with overwrite semantics and
	// records an auto_backup audit entry on success.
	Backup(ctx context.Context) error

	// Restore pulls the remote document at startup. A missing remote object
	// is a normal fresh install, not an error.
	Restore(ctx context.Context) error
}
