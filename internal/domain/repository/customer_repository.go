// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when the email is already registered.
	ErrDuplicateCustomer = errors.New("customer already exists")
	// ErrConcurrentUpdate is returned when a balance update lost an optimistic version check.
	ErrConcurrentUpdate = errors.New("customer was modified concurrently")
	// ErrNegativeBalance is returned when the store refuses a balance below zero.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

// CustomerFilter narrows the admin customer listing.
type CustomerFilter struct {
	Search string // matches name, email or CPF
	Limit  int
	Offset int
}

// CustomerRepository defines the persistence operations for customers and their balances.
type CustomerRepository interface {
	// FindByID retrieves a customer by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByIDForUpdate retrieves a customer and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a customer by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// UpdateBalance writes the balance counters guarded by the version read earlier.
	// The stored version is incremented; ErrConcurrentUpdate is returned if it no longer matches.
	UpdateBalance(ctx context.Context, customer *entity.Customer) error

	// List returns one page of customers and the total count.
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int64, error)
}
