package repository

import (
	"context"

	"workforce/internal/domain/entity"
)

// StatsRepository exposes the derived statistics and the visit counters.
type StatsRepository interface {
	// Snapshot scans all workers and orders and returns the full derived
	// counter view.
	Snapshot(ctx context.Context) (*entity.StatisticsSnapshot, error)

	// RecordVisit bumps the total and per-day visit counters.
	RecordVisit(ctx context.Context) error

	// Settings returns the current free-form configuration text.
	Settings(ctx context.Context) (entity.Settings, error)
}
