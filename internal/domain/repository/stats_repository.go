package repository

import (
	"context"

	"clubefast/internal/domain/entity"
)

// StatsRepository computes program-wide aggregates.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}
