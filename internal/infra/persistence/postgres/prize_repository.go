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
	"gorm.io/gorm/clause"
)

// prizeRepository implements the repository.PrizeRepository interface.
type prizeRepository struct {
	db *gorm.DB
}

// NewPrizeRepository is the constructor for prizeRepository.
func NewPrizeRepository(db *gorm.DB) repository.PrizeRepository {
	return &prizeRepository{db: db}
}

func (repo *prizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prize, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *prizeRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Prize, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (repo *prizeRepository) findOne(tx *gorm.DB) (*entity.Prize, error) {
	var prizeM model.PrizeModel
	if err := tx.First(&prizeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrizeNotFound
		}

		return nil, errors.Wrap(err, "failed to find prize")
	}

	return toPrizeDomain(&prizeM), nil
}

func (repo *prizeRepository) List(ctx context.Context, filter repository.PrizeFilter) ([]*entity.Prize, error) {
	query := repo.db.WithContext(ctx)
	if filter.OnlyActive {
		query = query.Where("ativo = ?", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("destaque = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("categoria = ?", filter.Category)
	}
	if filter.MaxPoints > 0 {
		query = query.Where("pontos_necessarios <= ?", filter.MaxPoints)
	}

	var prizeModels []*model.PrizeModel
	if err := query.
		Order("ordem_exibicao ASC").
		Order("pontos_necessarios ASC").
		Find(&prizeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prizes")
	}

	prizes := make([]*entity.Prize, 0, len(prizeModels))
	for _, prizeM := range prizeModels {
		prizes = append(prizes, toPrizeDomain(prizeM))
	}

	return prizes, nil
}

func (repo *prizeRepository) Create(ctx context.Context, prize *entity.Prize) error {
	prizeM := fromPrizeDomain(prize)

	// Select("*") keeps false booleans from being replaced by column defaults.
	if err := repo.db.WithContext(ctx).Select("*").Create(prizeM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid prize data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prize")
	}

	prize.CreatedAt = prizeM.CreatedAt
	prize.UpdatedAt = prizeM.UpdatedAt

	return nil
}

func (repo *prizeRepository) Update(ctx context.Context, prize *entity.Prize) error {
	prizeM := fromPrizeDomain(prize)

	result := repo.db.WithContext(ctx).
		Model(prizeM).
		Select("*").
		Omit("id", "created_at").
		Updates(prizeM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid prize data")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update prize")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrizeNotFound
	}

	prize.UpdatedAt = prizeM.UpdatedAt

	return nil
}

func (repo *prizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PrizeModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("prize is referenced by redemptions")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete prize")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrizeNotFound
	}

	return nil
}

func toPrizeDomain(m *model.PrizeModel) *entity.Prize {
	return &entity.Prize{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		Category:      m.Category,
		PointsCost:    m.PointsCost,
		StockQuantity: m.StockQuantity,
		InStock:       m.InStock,
		DisplayOrder:  m.DisplayOrder,
		Active:        m.Active,
		Featured:      m.Featured,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromPrizeDomain(p *entity.Prize) *model.PrizeModel {
	return &model.PrizeModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		PointsCost:    p.PointsCost,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock,
		DisplayOrder:  p.DisplayOrder,
		Active:        p.Active,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
