package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
)

// OCRServiceExtractor calls the self-hosted OCR microservice.
type OCRServiceExtractor struct {
	httpClient     *http.Client
	baseURL        string
	healthTimeout  time.Duration
	processTimeout time.Duration
	logger         *slog.Logger
}

// NewOCRServiceExtractor validates the configuration. It fails when no base URL is configured.
func NewOCRServiceExtractor(cfg config.OCRServiceConfig, logger *slog.Logger) (*OCRServiceExtractor, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "vision.ocrService.baseUrl is empty")
	}

	return &OCRServiceExtractor{
		httpClient:     &http.Client{},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		healthTimeout:  cfg.HealthTimeout,
		processTimeout: cfg.ProcessTimeout,
		logger:         logger,
	}, nil
}

type ocrProcessRequest struct {
	Image    string `json:"image"`
	FileType string `json:"fileType"`
}

type ocrProcessResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

// Name implements service.InvoiceExtractor.
func (o *OCRServiceExtractor) Name() string {
	return constants.VisionProviderOCRService
}

// Health implements service.HealthChecker.
func (o *OCRServiceExtractor) Health(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, o.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/health", nil)
	if err != nil {
		return errors.Wrap(err, "build health request")
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ocr service health")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(errUnexpectedStatus, "ocr service health status %d", resp.StatusCode)
	}

	return nil
}

// Extract implements service.InvoiceExtractor. Points reported by the service are ignored.
func (o *OCRServiceExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	return observe(ctx, o.logger, o.Name(), image, mimeType, func(ctx context.Context) (*entity.ParsedInvoice, error) {
		ctx, cancel := withTimeout(ctx, o.processTimeout)
		defer cancel()

		body := ocrProcessRequest{
			Image:    base64.StdEncoding.EncodeToString(image),
			FileType: mimeType,
		}

		raw, status, err := sendJSON(ctx, o.httpClient, o.baseURL+"/process-order", body, nil, requestLogger(ctx, o.logger))
		if err != nil {
			return nil, errors.Wrapf(err, "ocr service process-order (status %d)", status)
		}

		var resp ocrProcessResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, errors.Wrap(service.ErrMalformedJSON, err.Error())
		}
		if !resp.Success {
			return nil, errors.Wrap(service.ErrProviderRejected, resp.Error)
		}
		if resp.Data == nil {
			return nil, errors.Wrap(service.ErrNoJSONObject, "ocr service returned no data")
		}

		return decodeInvoiceMap(o.Name(), resp.Data)
	})
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
