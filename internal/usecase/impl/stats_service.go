package impl

import (
	"context"

	"workforce/internal/domain/entity"
	"workforce/internal/domain/repository"
	"workforce/internal/usecase"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new statistics service instance
func NewStatsService(statsRepo repository.StatsRepository) usecase.StatsUsecase {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Snapshot(ctx context.Context) (*entity.StatisticsSnapshot, error) {
	return s.statsRepo.Snapshot(ctx)
}

func (s *statsService) RecordVisit(ctx context.Context) error {
	return s.statsRepo.RecordVisit(ctx)
}

func (s *statsService) Settings(ctx context.Context) (entity.Settings, error) {
	return s.statsRepo.Settings(ctx)
}
