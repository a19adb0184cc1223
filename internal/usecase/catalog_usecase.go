package usecase

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
)

// ListPrizesInput filters the customer catalog.
type ListPrizesInput struct {
	Category     string
	MaxPoints    int
	FeaturedOnly bool
}

// PrizeInput holds the editable fields of a prize.
type PrizeInput struct {
	Name          string
	Description   string
	ImageURL      string
	Category      string
	PointsCost    int
	StockQuantity *int // nil means unlimited
	DisplayOrder  int
	Active        *bool // nil keeps the current value, or true on create
	Featured      bool
}

// DeletePrizeOutput tells whether the prize was removed or only deactivated.
type DeletePrizeOutput struct {
	Deactivated bool
}

// CatalogUsecase defines the prize catalog operations.
type CatalogUsecase interface {
	// ListPrizes returns active prizes ordered by display order, then cost.
	ListPrizes(ctx context.Context, input *ListPrizesInput) ([]*entity.Prize, error)
	// GetPrize returns one active prize.
	GetPrize(ctx context.Context, id uuid.UUID) (*entity.Prize, error)

	// AdminListPrizes returns every prize, inactive ones included.
	AdminListPrizes(ctx context.Context) ([]*entity.Prize, error)
	CreatePrize(ctx context.Context, input *PrizeInput) (*entity.Prize, error)
	UpdatePrize(ctx context.Context, id uuid.UUID, input *PrizeInput) (*entity.Prize, error)
	// DeletePrize removes a prize, or deactivates it when redemptions reference it.
	DeletePrize(ctx context.Context, id uuid.UUID) (*DeletePrizeOutput, error)
}
