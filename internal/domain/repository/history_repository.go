package repository

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
)

// PointsHistoryRepository defines the persistence operations for the points ledger.
type PointsHistoryRepository interface {
	// Append writes one ledger entry. Entries are never updated.
	Append(ctx context.Context, entry *entity.PointsHistoryEntry) error

	// FindByCustomer returns a customer's ledger newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.PointsHistoryEntry, error)
}
