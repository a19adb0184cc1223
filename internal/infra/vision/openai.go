package vision

import (
	"context"
	"log/slog"
	"strings"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel     = openai.GPT4o
	defaultOpenAIMaxTokens = 2048
)

// OpenAIExtractor reads invoices with an OpenAI vision model.
type OpenAIExtractor struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    *slog.Logger
}

// NewOpenAIExtractor creates the OpenAI client. It fails when no API key is configured.
func NewOpenAIExtractor(cfg config.LLMProviderConfig, logger *slog.Logger) (*OpenAIExtractor, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "vision.openai.apiKey is empty")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = newHTTPClient()

	extractor := &OpenAIExtractor{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
	if extractor.model == "" {
		extractor.model = defaultOpenAIModel
	}
	if extractor.maxTokens <= 0 {
		extractor.maxTokens = defaultOpenAIMaxTokens
	}

	return extractor, nil
}

// Name implements service.InvoiceExtractor.
func (o *OpenAIExtractor) Name() string {
	return constants.VisionProviderOpenAI
}

// Extract implements service.InvoiceExtractor.
func (o *OpenAIExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	return observe(ctx, o.logger, o.Name(), image, mimeType, func(ctx context.Context) (*entity.ParsedInvoice, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     o.model,
			MaxTokens: o.maxTokens,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{Type: openai.ChatMessagePartTypeText, Text: invoicePrompt},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    dataURL(image, mimeType),
								Detail: openai.ImageURLDetailHigh,
							},
						},
					},
				},
			},
		})
		if err != nil {
			return nil, errors.Wrap(err, "openai chat completion")
		}
		if len(resp.Choices) == 0 {
			return nil, errors.Wrap(service.ErrNoJSONObject, "openai returned no choices")
		}

		return decodeInvoice(o.Name(), resp.Choices[0].Message.Content)
	})
}
