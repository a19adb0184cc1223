package repository

import (
	"context"
	"time"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for redemption persistence.
var (
	// ErrRedemptionNotFound is returned when a redemption is not found.
	ErrRedemptionNotFound = errors.New("redemption not found")
	// ErrDuplicateRedemptionCode is returned when a generated pickup code collides.
	ErrDuplicateRedemptionCode = errors.New("redemption code already exists")
)

// RedemptionFilter narrows redemption listings.
type RedemptionFilter struct {
	CustomerID *uuid.UUID
	Collected  *bool
	Limit      int
	Offset     int
}

// RedemptionRepository defines the persistence operations for redemptions.
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *entity.Redemption) error

	// FindByID retrieves a redemption joined with its customer name and email.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error)

	// FindByIDForUpdate retrieves a redemption and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Redemption, error)

	// FindByCode retrieves a redemption by its pickup code.
	FindByCode(ctx context.Context, code string) (*entity.Redemption, error)

	// List returns redemptions newest first and the total count.
	List(ctx context.Context, filter RedemptionFilter) ([]*entity.Redemption, int64, error)

	// MarkCollected flags a redemption as handed over.
	MarkCollected(ctx context.Context, id uuid.UUID, collectedBy string, at time.Time) error

	// CountByPrize returns how many redemptions reference a prize.
	CountByPrize(ctx context.Context, prizeID uuid.UUID) (int64, error)
}
