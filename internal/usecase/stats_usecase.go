package usecase

import (
	"context"

	"workforce/internal/domain/entity"
)

// StatsUsecase exposes the derived statistics and the visit counters.
type StatsUsecase interface {
	// Snapshot returns the full derived counter view.
	Snapshot(ctx context.Context) (*entity.StatisticsSnapshot, error)

	// RecordVisit bumps the total and per-day visit counters.
	RecordVisit(ctx context.Context) error

	// Settings returns the current welcome texts.
	Settings(ctx context.Context) (entity.Settings, error)
}
