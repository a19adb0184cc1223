package vision

import (
	"context"
	"log/slog"
	"strings"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// contentGenerator is the part of *genai.GenerativeModel used for extraction.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiExtractor reads invoices with Google Gemini.
type GeminiExtractor struct {
	client *genai.Client
	model  contentGenerator
	logger *slog.Logger
}

// NewGeminiExtractor creates the Gemini client. It fails when no API key is configured.
func NewGeminiExtractor(ctx context.Context, cfg config.LLMProviderConfig, logger *slog.Logger) (*GeminiExtractor, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "vision.gemini.apiKey is empty")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}

	return &GeminiExtractor{client: client, model: model, logger: logger}, nil
}

// Name implements service.InvoiceExtractor.
func (g *GeminiExtractor) Name() string {
	return constants.VisionProviderGemini
}

// Extract implements service.InvoiceExtractor.
func (g *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	return observe(ctx, g.logger, g.Name(), image, mimeType, func(ctx context.Context) (*entity.ParsedInvoice, error) {
		resp, err := g.model.GenerateContent(ctx, genai.Text(invoicePrompt), genai.Blob{MIMEType: mimeType, Data: image})
		if err != nil {
			return nil, errors.Wrap(err, "gemini generate content")
		}

		return decodeInvoice(g.Name(), geminiText(resp))
	})
}

// Close releases the underlying client.
func (g *GeminiExtractor) Close() error {
	if g.client == nil {
		return nil
	}

	return g.client.Close()
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if chunk, ok := part.(genai.Text); ok {
			text.WriteString(string(chunk))
		}
	}

	return text.String()
}
