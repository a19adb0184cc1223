package postgres

import (
	"context"

	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const dashboardQuery = `
SELECT
	(SELECT COUNT(*) FROM clientes_fast)                                  AS customers,
	(SELECT COALESCE(SUM(saldo_pontos), 0) FROM clientes_fast)            AS points_in_circulation,
	(SELECT COALESCE(SUM(total_pontos_ganhos), 0) FROM clientes_fast)     AS points_earned,
	(SELECT COALESCE(SUM(total_pontos_gastos), 0) FROM clientes_fast)     AS points_spent,
	(SELECT COUNT(*) FROM pedidos_fast)                                   AS orders,
	(SELECT COUNT(*) FROM resgates)                                       AS redemptions,
	(SELECT COUNT(*) FROM resgates WHERE coletado = false)                AS pending_pickups,
	(SELECT COUNT(*) FROM premios_catalogo WHERE ativo = true)            AS active_prizes`

// statsRepository implements the repository.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := repo.db.WithContext(ctx).Raw(dashboardQuery).Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	return &stats, nil
}
