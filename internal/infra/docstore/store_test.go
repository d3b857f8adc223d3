package docstore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workforce/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.json")
	admin := entity.SuperAdmin{ChatID: "root", Username: "superadmin", Role: "superadmin"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStore(path, admin, "local", logger)
}

func TestStore_InitializeSeedsFreshDocument(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Initialize())

	var startupCount int
	require.NoError(t, store.View(func(doc *entity.Document) error {
		startupCount = doc.Statistics.StartupCount
		assert.Equal(t, entity.DocumentVersion, doc.Version)
		assert.Equal(t, "root", doc.Admin.ChatID)
		assert.NotEmpty(t, doc.Settings.WelcomeMessage)
		assert.Empty(t, doc.Workers)

		return nil
	}))
	assert.Equal(t, 1, startupCount)

	// A second startup bumps the counter on the persisted document.
	require.NoError(t, store.Initialize())
	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Equal(t, 2, doc.Statistics.StartupCount)

		return nil
	}))
}

func TestStore_UpdateRecomputesStatisticsOnSave(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Update(func(doc *entity.Document) error {
		doc.Workers["u1"] = &entity.Worker{ID: "u1", Status: entity.WorkerStatusPending}
		doc.Workers["u2"] = &entity.Worker{ID: "u2", Status: entity.WorkerStatusApproved}
		doc.Orders["order_1"] = &entity.Order{ID: "order_1", Status: entity.OrderStatusPending}
		// Stale hand-maintained values must be overwritten by the save.
		doc.Statistics.TotalWorkers = 99
		doc.Statistics.PendingWorkers = 99

		return nil
	}))

	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Equal(t, 2, doc.Statistics.TotalWorkers)
		assert.Equal(t, 1, doc.Statistics.TotalOrders)
		assert.Equal(t, 1, doc.Statistics.PendingWorkers)
		assert.NotNil(t, doc.Statistics.LastUpdate)
		assert.Equal(t, "local", doc.Statistics.Domain)

		return nil
	}))
}

func TestStore_UpdateErrorAbortsWithoutWriting(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Initialize())

	wantErr := os.ErrPermission
	err := store.Update(func(doc *entity.Document) error {
		doc.Workers["ghost"] = &entity.Worker{ID: "ghost"}

		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Empty(t, doc.Workers)

		return nil
	}))
}

func TestStore_MalformedFileDegradesToSkeleton(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	// Reads serve an empty skeleton instead of failing.
	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Empty(t, doc.Users)
		assert.Empty(t, doc.Workers)

		return nil
	}))

	// The next write replaces the corrupt file with a valid document.
	require.NoError(t, store.Update(func(doc *entity.Document) error {
		doc.Users["u1"] = &entity.User{ID: "u1"}

		return nil
	}))
	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Len(t, doc.Users, 1)

		return nil
	}))
}

func TestStore_DayRolloverResetsDailyCounters(t *testing.T) {
	store := newTestStore(t)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	store.now = func() time.Time { return yesterday }
	require.NoError(t, store.Update(func(doc *entity.Document) error {
		doc.Statistics.WorkersToday = 5
		doc.Statistics.OrdersToday = 3

		return nil
	}))

	store.now = time.Now
	require.NoError(t, store.Update(func(doc *entity.Document) error {
		// The rollover already ran before this mutation observed the doc.
		assert.Equal(t, 0, doc.Statistics.WorkersToday)
		assert.Equal(t, 0, doc.Statistics.OrdersToday)
		assert.Equal(t, entity.DayKey(time.Now()), doc.Statistics.LastReset)

		return nil
	}))
}

func TestStore_BytesAndReplaceBytes(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Bytes()
	require.ErrorIs(t, err, ErrNoDocument)

	require.NoError(t, store.Initialize())
	data, err := store.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	require.Error(t, store.ReplaceBytes([]byte("garbage")), "corrupt snapshot must be rejected")
	require.NoError(t, store.ReplaceBytes(data))
}
