package service

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/pkg/errors"
)

// Parse failures are terminal: the provider answered but the answer could not be used.
var (
	// ErrNoJSONObject is returned when the model response contains no JSON object.
	ErrNoJSONObject = errors.New("no JSON object found in provider response")
	// ErrMalformedJSON is returned when the extracted object is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON in provider response")
	// ErrSchemaViolation is returned when the extracted object does not match the invoice schema.
	ErrSchemaViolation = errors.New("provider response does not match invoice schema")
	// ErrProviderRejected is returned when a provider reports it could not process the image.
	ErrProviderRejected = errors.New("provider could not process the image")
)

// ErrProviderNotConfigured is returned when a provider is selected whose key or URL is missing.
var ErrProviderNotConfigured = errors.New("vision provider not configured")

// IsParseError reports whether err is a terminal parse failure.
func IsParseError(err error) bool {
	return errors.Is(err, ErrNoJSONObject) ||
		errors.Is(err, ErrMalformedJSON) ||
		errors.Is(err, ErrSchemaViolation) ||
		errors.Is(err, ErrProviderRejected)
}

// InvoiceExtractor reads the purchase data out of an invoice image.
type InvoiceExtractor interface {
	// Name returns the provider name used for selection.
	Name() string

	// Extract sends the image to the provider and returns the typed invoice.
	Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error)
}

// InvoiceExtractorSelector resolves providers by name.
type InvoiceExtractorSelector interface {
	// Select returns the named extractor, or the default one when name is empty.
	Select(name string) (InvoiceExtractor, error)

	// Providers reports every known provider and whether it is configured.
	Providers() []ProviderStatus
}

// ProviderStatus describes one registered vision provider.
type ProviderStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Default    bool   `json:"default"`
	Retried    bool   `json:"retried"`
}

// HealthChecker is implemented by extractors backed by a service that exposes a health probe.
type HealthChecker interface {
	Health(ctx context.Context) error
}
