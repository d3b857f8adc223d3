// Package service defines the collaborator interfaces consumed by the
// application's business logic.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrObjectNotFound indicates the requested object does not exist remotely.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage is the remote mirror for the document file. Implementations
// must treat a missing object as the distinct ErrObjectNotFound outcome, not
// a generic failure: at cold start a missing snapshot is a normal fresh
// install.
type ObjectStorage interface {
	// Upload writes data to path with overwrite semantics; the last push
	// wins, there is no merge.
	Upload(ctx context.Context, path string, data []byte) error

	// Download returns the object bytes at path.
	Download(ctx context.Context, path string) ([]byte, error)

	// Exists probes path without downloading it.
	Exists(ctx context.Context, path string) (bool, error)

	// Close releases any resources held by the client.
	Close() error
}
