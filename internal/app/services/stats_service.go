package services

import (
	"context"
	"fmt"

	"github.com/dsu-aiml/portal/internal/app/models"
)

// StatsService defines the interface for department statistics
type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type statsServiceImpl struct {
	statsRepo StatsStore
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo StatsStore) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

func (s *statsServiceImpl) GetStats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.statsRepo.Compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing stats: %w", err)
	}
	return stats, nil
}
