package document

import (
	"context"
	"testing"

	"workforce/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDerivesCountersFromEntities(t *testing.T) {
	store := newTestStore(t)
	workers := NewWorkerRepository(store)
	orders := NewOrderRepository(store)
	stats := NewStatsRepository(store)

	applyWorker(t, workers, "rider", entity.RoleRider)
	applyWorker(t, workers, "cs", entity.RoleCustomerService)
	applyWorker(t, workers, "chief", entity.RoleAdmin)

	_, err := workers.Approve(context.Background(), "rider", "root")
	require.NoError(t, err)
	_, err = workers.Approve(context.Background(), "chief", "root")
	require.NoError(t, err)

	first := createOrder(t, orders)
	createOrder(t, orders)
	require.NoError(t, orders.Process(context.Background(), first.ID, "rider"))

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snap.TotalWorkers)
	assert.Equal(t, 1, snap.PendingWorkers)
	assert.Equal(t, 2, snap.ApprovedWorkers)
	assert.Equal(t, 3, snap.WorkersToday)
	assert.Equal(t, 1, snap.RiderCount)
	// The customer_service application is still pending.
	assert.Equal(t, 0, snap.CustomerServiceCount)
	// The approved admin worker plus the super admin.
	assert.Equal(t, 2, snap.AdminCount)

	assert.Equal(t, 2, snap.TotalOrders)
	assert.Equal(t, 2, snap.OrdersToday)
	assert.Equal(t, 1, snap.PendingOrders)
	assert.Equal(t, 1, snap.ProcessingOrders)
	assert.Equal(t, 0, snap.DeliveredOrders)

	assert.Equal(t, 1, snap.StartupCount)
	assert.Equal(t, "test", snap.Domain)
}

func TestPendingAdminDoesNotCountAsAdmin(t *testing.T) {
	store := newTestStore(t)
	workers := NewWorkerRepository(store)
	stats := NewStatsRepository(store)

	applyWorker(t, workers, "chief", entity.RoleAdmin)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.AdminCount)
}

func TestRoleCountsOnlyCoverApprovedWorkers(t *testing.T) {
	store := newTestStore(t)
	workers := NewWorkerRepository(store)
	stats := NewStatsRepository(store)

	applyWorker(t, workers, "cs", entity.RoleCustomerService)
	applyWorker(t, workers, "rider", entity.RoleRider)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CustomerServiceCount)
	assert.Equal(t, 0, snap.RiderCount)

	_, err = workers.Approve(context.Background(), "cs", "root")
	require.NoError(t, err)
	_, err = workers.Approve(context.Background(), "rider", "root")
	require.NoError(t, err)

	snap, err = stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CustomerServiceCount)
	assert.Equal(t, 1, snap.RiderCount)
}

func TestRecordVisitBumpsBothCounters(t *testing.T) {
	store := newTestStore(t)
	stats := NewStatsRepository(store)

	require.NoError(t, stats.RecordVisit(context.Background()))
	require.NoError(t, stats.RecordVisit(context.Background()))

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snap.WebsiteVisits)

	require.NoError(t, store.View(func(doc *entity.Document) error {
		assert.Equal(t, 2, doc.WebsiteStats.DailyVisits[entity.DayKey(nowUTC())])

		return nil
	}))
}

func TestSettingsReturnsSeededDefaults(t *testing.T) {
	store := newTestStore(t)
	stats := NewStatsRepository(store)

	settings, err := stats.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}
