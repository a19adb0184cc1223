package repository

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateOrder is returned when an order with the same fingerprint already exists.
var ErrDuplicateOrder = errors.New("order already registered")

// OrderRepository defines the persistence operations for credited orders.
type OrderRepository interface {
	// Create persists an order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// ExistsByFingerprint reports whether an invoice with this fingerprint was already credited.
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)

	// FindByCustomer returns a customer's orders newest first, items included.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)
}
