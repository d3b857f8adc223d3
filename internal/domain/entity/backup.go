package entity

import "time"

// BackupRecordType tags an audit log entry.
type BackupRecordType string

const (
	// BackupWorkerApplication records a submitted worker application.
	BackupWorkerApplication BackupRecordType = "worker_application"
	// BackupWorkerDeleted records an administrative worker deletion,
	// capturing the deleted worker's full prior state.
	BackupWorkerDeleted BackupRecordType = "worker_deleted"
	// BackupAuto records a completed push to remote storage.
	BackupAuto BackupRecordType = "auto_backup"
	// BackupRestore records a completed pull from remote storage.
	BackupRestore BackupRecordType = "restore"
)

const (
	// MaxLifecycleRecords caps worker/order lifecycle audit entries.
	MaxLifecycleRecords = 100
	// MaxBackupRecords caps explicit backup/restore audit entries.
	MaxBackupRecords = 50
)

// BackupRecord is one entry in the bounded, append-only audit log of
// significant lifecycle events. Oldest entries are evicted first.
type BackupRecord struct {
	Type      BackupRecordType `json:"type"`
	UserID    string           `json:"userId,omitempty"`
	Role      Role             `json:"role,omitempty"`
	DeletedBy string           `json:"deletedBy,omitempty"`
	// WorkerData snapshots the removed worker on worker_deleted entries,
	// for audit and manual recovery. It is never replayed automatically.
	WorkerData *Worker   `json:"workerData,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success,omitempty"`
}

// AppendBounded appends rec and evicts the oldest entries beyond max.
func AppendBounded(records []BackupRecord, rec BackupRecord, max int) []BackupRecord {
	records = append(records, rec)
	if len(records) > max {
		records = records[len(records)-max:]
	}

	return records
}
