package postgres

import (
	"context"
	"time"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// redemptionRepository implements the repository.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemptionCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPrizeNotFound.WrapMessage("invalid customer or prize reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.CreatedAt = redemptionM.CreatedAt

	return nil
}

func (repo *redemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Joins("Customer").
		Where("resgates.id = ?", id))
}

// FindByIDForUpdate locks only the redemption row; the customer join is skipped.
func (repo *redemptionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (repo *redemptionRepository) FindByCode(ctx context.Context, code string) (*entity.Redemption, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Joins("Customer").
		Where("resgates.codigo_resgate = ?", code))
}

func (repo *redemptionRepository) findOne(tx *gorm.DB) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel
	if err := tx.First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return toRedemptionDomain(&redemptionM), nil
}

func (repo *redemptionRepository) List(ctx context.Context, filter repository.RedemptionFilter) ([]*entity.Redemption, int64, error) {
	narrow := func(tx *gorm.DB) *gorm.DB {
		if filter.CustomerID != nil {
			tx = tx.Where("resgates.cliente_id = ?", *filter.CustomerID)
		}
		if filter.Collected != nil {
			tx = tx.Where("resgates.coletado = ?", *filter.Collected)
		}

		return tx
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.RedemptionModel{}).Scopes(narrow).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count redemptions")
	}

	var redemptionModels []*model.RedemptionModel
	if err := repo.db.WithContext(ctx).
		Joins("Customer").
		Scopes(narrow).
		Order("resgates.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&redemptionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list redemptions")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, total, nil
}

// MarkCollected only touches rows not yet collected, so a second call reports not found.
func (repo *redemptionRepository) MarkCollected(ctx context.Context, id uuid.UUID, collectedBy string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("id = ? AND coletado = ?", id, false).
		Updates(map[string]any{
			"coletado":     true,
			"coletado_por": collectedBy,
			"data_coleta":  at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark redemption collected")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

func (repo *redemptionRepository) CountByPrize(ctx context.Context, prizeID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("premio_id = ?", prizeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count redemptions by prize")
	}

	return count, nil
}

func toRedemptionDomain(m *model.RedemptionModel) *entity.Redemption {
	redemption := &entity.Redemption{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		PrizeID:     m.PrizeID,
		PrizeName:   m.PrizeName,
		PointsCost:  m.PointsCost,
		Code:        m.Code,
		Status:      entity.RedemptionStatus(m.Status),
		Collected:   m.Collected,
		CollectedBy: m.CollectedBy,
		CollectedAt: m.CollectedAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.Customer != nil {
		redemption.CustomerName = m.Customer.Name
		redemption.CustomerEmail = m.Customer.Email
	}

	return redemption
}

func fromRedemptionDomain(r *entity.Redemption) *model.RedemptionModel {
	return &model.RedemptionModel{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		PrizeID:     r.PrizeID,
		PrizeName:   r.PrizeName,
		PointsCost:  r.PointsCost,
		Code:        r.Code,
		Status:      string(r.Status),
		Collected:   r.Collected,
		CollectedBy: r.CollectedBy,
		CollectedAt: r.CollectedAt,
		CreatedAt:   r.CreatedAt,
	}
}
