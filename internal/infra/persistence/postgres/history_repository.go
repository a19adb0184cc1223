package postgres

import (
	"context"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pointsHistoryRepository implements the repository.PointsHistoryRepository interface.
type pointsHistoryRepository struct {
	db *gorm.DB
}

// NewPointsHistoryRepository is the constructor for pointsHistoryRepository.
func NewPointsHistoryRepository(db *gorm.DB) repository.PointsHistoryRepository {
	return &pointsHistoryRepository{db: db}
}

func (repo *pointsHistoryRepository) Append(ctx context.Context, entry *entity.PointsHistoryEntry) error {
	entryM := &model.PointsHistoryModel{
		ID:           entry.ID,
		CustomerID:   entry.CustomerID,
		Type:         string(entry.Type),
		Points:       entry.Points,
		BalanceAfter: entry.BalanceAfter,
		Description:  entry.Description,
		OrderID:      entry.OrderID,
		RedemptionID: entry.RedemptionID,
		CreatedAt:    entry.CreatedAt,
	}
	if entryM.ID == uuid.Nil {
		entryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append points history")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *pointsHistoryRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.PointsHistoryEntry, error) {
	var entryModels []*model.PointsHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("cliente_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find points history")
	}

	entries := make([]*entity.PointsHistoryEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, &entity.PointsHistoryEntry{
			ID:           m.ID,
			CustomerID:   m.CustomerID,
			Type:         entity.HistoryType(m.Type),
			Points:       m.Points,
			BalanceAfter: m.BalanceAfter,
			Description:  m.Description,
			OrderID:      m.OrderID,
			RedemptionID: m.RedemptionID,
			CreatedAt:    m.CreatedAt,
		})
	}

	return entries, nil
}
