package service

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceImageStore archives uploaded invoice photos.
type InvoiceImageStore interface {
	// Save writes the image and returns the key it was stored under.
	Save(ctx context.Context, customerID uuid.UUID, image []byte, mimeType string) (string, error)
}
