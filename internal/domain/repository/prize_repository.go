package repository

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPrizeNotFound is returned when a prize is not found.
var ErrPrizeNotFound = errors.New("prize not found")

// PrizeFilter narrows catalog queries.
type PrizeFilter struct {
	OnlyActive   bool
	FeaturedOnly bool
	Category     string
	MaxPoints    int // zero means no limit
}

// PrizeRepository defines the persistence operations for the prize catalog.
type PrizeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prize, error)

	// FindByIDForUpdate retrieves a prize and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Prize, error)

	// List returns prizes ordered by display order, then points cost.
	List(ctx context.Context, filter PrizeFilter) ([]*entity.Prize, error)

	Create(ctx context.Context, prize *entity.Prize) error
	Update(ctx context.Context, prize *entity.Prize) error
	Delete(ctx context.Context, id uuid.UUID) error
}
