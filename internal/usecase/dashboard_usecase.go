package usecase

import (
	"context"

	"clubefast/internal/domain/entity"
)

// DashboardUsecase provides the admin overview numbers.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
