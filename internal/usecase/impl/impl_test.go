package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"workforce/internal/domain/entity"
	"workforce/internal/domain/service"
	"workforce/internal/infra/docstore"

	"github.com/stretchr/testify/require"
)

const testSuperAdmin = "super-1"

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.LifecycleEvent
}

func (p *recordingPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.json")
	admin := entity.SuperAdmin{ChatID: testSuperAdmin, Username: "boss", Role: "superadmin"}

	store := docstore.NewStore(path, admin, "test", discardLogger())
	require.NoError(t, store.Initialize())

	return store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
