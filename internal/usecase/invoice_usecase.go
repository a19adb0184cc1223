package usecase

import (
	"context"

	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/points"
	"clubefast/internal/domain/service"

	"github.com/google/uuid"
)

// ProcessInvoiceInput is an uploaded invoice photo to be credited.
type ProcessInvoiceInput struct {
	CustomerID uuid.UUID
	Image      []byte
	MimeType   string
	Provider   string // empty selects the configured default
}

// PreviewInvoiceInput is an invoice photo to be read without crediting.
type PreviewInvoiceInput struct {
	Image    []byte
	MimeType string
	Provider string
}

// ProcessInvoiceOutput is the outcome of an invoice submission.
// Order is nil when the invoice had no eligible products and nothing was credited.
type ProcessInvoiceOutput struct {
	Provider string
	Result   *points.Result
	Order    *entity.Order
	Balance  int
	Credited bool
}

// PreviewInvoiceOutput is the computed result of an invoice without persistence.
type PreviewInvoiceOutput struct {
	Provider string
	Result   *points.Result
}

// ProvidersOutput reports which vision providers can be used right now.
type ProvidersOutput struct {
	Providers        []service.ProviderStatus
	OCRServiceHealth string // "ok", "unavailable" or "disabled"
}

// InvoiceUsecase turns invoice photos into credited points.
type InvoiceUsecase interface {
	// ProcessInvoice extracts, calculates and credits an invoice in one transaction.
	ProcessInvoice(ctx context.Context, input *ProcessInvoiceInput) (*ProcessInvoiceOutput, error)
	// PreviewInvoice extracts and calculates an invoice without touching the balance.
	PreviewInvoice(ctx context.Context, input *PreviewInvoiceInput) (*PreviewInvoiceOutput, error)
	// ListOrders returns the customer's credited invoices, newest first.
	ListOrders(ctx context.Context, customerID uuid.UUID, page Page) ([]*entity.Order, error)
	// Providers reports provider configuration and OCR service health.
	Providers(ctx context.Context) (*ProvidersOutput, error)
}
