package vision

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

const (
	defaultAnthropicModel     = "claude-3-5-sonnet-20241022"
	defaultAnthropicMaxTokens = 2048
	mimeTypePDF               = "application/pdf"
)

// AnthropicExtractor reads invoices with the Claude Messages API.
type AnthropicExtractor struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    *slog.Logger
}

// NewAnthropicExtractor creates the Claude client. It fails when no API key is configured.
func NewAnthropicExtractor(cfg config.LLMProviderConfig, logger *slog.Logger) (*AnthropicExtractor, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "vision.anthropic.apiKey is empty")
	}

	extractor := &AnthropicExtractor{
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		logger:    logger,
	}
	if extractor.model == "" {
		extractor.model = defaultAnthropicModel
	}
	if extractor.maxTokens <= 0 {
		extractor.maxTokens = defaultAnthropicMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(newHTTPClient()),
		// retries belong to the retry wrapper configured under vision.retry
		option.WithMaxRetries(0),
		option.WithMiddleware(extractor.logExchange),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	extractor.client = anthropic.NewClient(opts...)

	return extractor, nil
}

// Name implements service.InvoiceExtractor.
func (a *AnthropicExtractor) Name() string {
	return constants.VisionProviderAnthropic
}

// Extract implements service.InvoiceExtractor. PDFs travel as a document block, images as an image block.
func (a *AnthropicExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	return observe(ctx, a.logger, a.Name(), image, mimeType, func(ctx context.Context) (*entity.ParsedInvoice, error) {
		message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     a.model,
			MaxTokens: a.maxTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					attachmentBlock(image, mimeType),
					anthropic.NewTextBlock(invoicePrompt),
				),
			},
		})
		if err != nil {
			var apiErr *anthropic.Error
			if errors.As(err, &apiErr) {
				return nil, errors.Wrapf(err, "anthropic messages (status %d)", apiErr.StatusCode)
			}

			return nil, errors.Wrap(err, "anthropic messages")
		}

		var text strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				text.WriteString(block.Text)
			}
		}

		return decodeInvoice(a.Name(), text.String())
	})
}

func attachmentBlock(data []byte, mimeType string) anthropic.ContentBlockParamUnion {
	encoded := base64.StdEncoding.EncodeToString(data)
	if mimeType == mimeTypePDF {
		return anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded})
	}

	return anthropic.NewImageBlockBase64(mimeType, encoded)
}

// logExchange logs each Messages API round trip the way the OCR service client does.
func (a *AnthropicExtractor) logExchange(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	logger := requestLogger(req.Context(), a.logger)
	start := time.Now()

	logger.Debug("vision.http.request", slog.String("url", req.URL.String()), slog.Int64("content_length", req.ContentLength))

	resp, err := next(req)
	if err != nil {
		logger.Warn("vision.http.send_error", slog.Any("error", err), slog.Int64("elapsed_ms", time.Since(start).Milliseconds()))

		return resp, err
	}

	logger.Debug("vision.http.response",
		slog.Int("status", resp.StatusCode),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)

	return resp, nil
}
