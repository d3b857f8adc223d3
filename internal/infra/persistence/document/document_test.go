package document

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"workforce/internal/domain/entity"
	"workforce/internal/infra/docstore"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admin := entity.SuperAdmin{ChatID: "root", Username: "boss", Role: "superadmin"}

	store := docstore.NewStore(path, admin, "test", logger)
	require.NoError(t, store.Initialize())

	return store
}
