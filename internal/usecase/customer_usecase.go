// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// ListCustomersInput filters the admin customer listing.
type ListCustomersInput struct {
	Search string
	Page   Page
}

// --- Output DTOs ---

// RegisterOutput returns the newly created customer.
type RegisterOutput struct {
	Customer *entity.Customer
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Customer     *entity.Customer
}

// RefreshTokenOutput returns a new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// CustomerPage is one page of the admin customer listing.
type CustomerPage struct {
	Customers []*entity.Customer
	Total     int64
}

// CustomerDetail is the admin view of one customer.
type CustomerDetail struct {
	Customer    *entity.Customer
	History     []*entity.PointsHistoryEntry
	Redemptions []*entity.Redemption
}

// CustomerUsecase defines the account operations of the loyalty club.
type CustomerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// GetProfile returns the customer with its current balance and counters.
	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	// GetHistory returns the customer's points ledger, newest first.
	GetHistory(ctx context.Context, customerID uuid.UUID, page Page) ([]*entity.PointsHistoryEntry, error)

	ListCustomers(ctx context.Context, input *ListCustomersInput) (*CustomerPage, error)
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerDetail, error)
}
