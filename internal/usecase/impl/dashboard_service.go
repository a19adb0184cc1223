package impl

import (
	"context"

	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/repository"
	"clubefast/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	statsRepo repository.StatsRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(statsRepo repository.StatsRepository) usecase.DashboardUsecase {
	return &dashboardService{statsRepo: statsRepo}
}

func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := srv.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	return stats, nil
}
