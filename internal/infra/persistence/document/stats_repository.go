package document

import (
	"context"

	"workforce/internal/domain/entity"
	"workforce/internal/domain/repository"
	"workforce/internal/infra/docstore"
)

type statsRepository struct {
	store *docstore.Store
}

// NewStatsRepository creates a StatsRepository backed by the document store.
func NewStatsRepository(store *docstore.Store) repository.StatsRepository {
	return &statsRepository{store: store}
}

// Snapshot scans the entity maps and derives every counter fresh. The stored
// Statistics block only contributes the fields that cannot be derived:
// visit totals, backup and startup bookkeeping, and the domain stamp.
func (r *statsRepository) Snapshot(ctx context.Context) (*entity.StatisticsSnapshot, error) {
	var snap *entity.StatisticsSnapshot
	err := r.store.View(func(doc *entity.Document) error {
		today := entity.DayKey(nowUTC())

		s := &entity.StatisticsSnapshot{
			TotalWorkers:  len(doc.Workers),
			TotalOrders:   len(doc.Orders),
			OrdersToday:   doc.Statistics.OrdersToday,
			WebsiteVisits: doc.Statistics.WebsiteVisits,
			LastBackup:    doc.Statistics.LastBackup,
			StartupCount:  doc.Statistics.StartupCount,
			Domain:        doc.Statistics.Domain,
			AdminCount:    1, // the super admin
		}

		for _, worker := range doc.Workers {
			switch worker.Status {
			case entity.WorkerStatusPending:
				s.PendingWorkers++
			case entity.WorkerStatusApproved:
				s.ApprovedWorkers++
			}

			// Per-role counts only cover approved workers.
			if worker.Status == entity.WorkerStatusApproved {
				switch worker.Role {
				case entity.RoleCustomerService:
					s.CustomerServiceCount++
				case entity.RoleRider:
					s.RiderCount++
				case entity.RoleAdmin:
					s.AdminCount++
				}
			}

			if entity.DayKey(worker.AppliedAt) == today {
				s.WorkersToday++
			}
		}

		for _, order := range doc.Orders {
			switch order.Status {
			case entity.OrderStatusPending:
				s.PendingOrders++
			case entity.OrderStatusProcessing:
				s.ProcessingOrders++
			case entity.OrderStatusDelivered:
				s.DeliveredOrders++
			}
		}

		snap = s

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (r *statsRepository) RecordVisit(ctx context.Context) error {
	return r.store.Update(func(doc *entity.Document) error {
		doc.Statistics.WebsiteVisits++
		doc.WebsiteStats.DailyVisits[entity.DayKey(nowUTC())]++

		return nil
	})
}

func (r *statsRepository) Settings(ctx context.Context) (entity.Settings, error) {
	var settings entity.Settings
	err := r.store.View(func(doc *entity.Document) error {
		settings = doc.Settings

		return nil
	})

	return settings, err
}
