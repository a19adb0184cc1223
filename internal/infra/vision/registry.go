package vision

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/service"
	"clubefast/internal/errors"

	"go.uber.org/fx"
)

// providerOrder is the order providers are built and reported in.
var providerOrder = []string{
	constants.VisionProviderGemini,
	constants.VisionProviderOpenAI,
	constants.VisionProviderAnthropic,
	constants.VisionProviderOCRService,
	constants.VisionProviderTesseract,
}

// Registry holds the configured extractors and resolves them by name.
type Registry struct {
	extractors  map[string]service.InvoiceExtractor
	retried     map[string]bool
	defaultName string
	closers     []io.Closer
}

// Params holds dependencies for the registry, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRegistry builds every provider from config and closes their clients on shutdown.
func NewRegistry(params Params) (service.InvoiceExtractorSelector, error) {
	registry, err := Build(params.Ctx, params.Config.Vision, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return registry.Close()
		},
	})

	return registry, nil
}

// Build creates the registry. A provider whose key or URL is missing is logged and left unavailable.
func Build(ctx context.Context, cfg *config.VisionConfig, logger *slog.Logger) (*Registry, error) {
	if cfg == nil {
		cfg = &config.VisionConfig{}
	}

	registry := &Registry{
		extractors:  make(map[string]service.InvoiceExtractor, len(providerOrder)),
		retried:     make(map[string]bool, len(cfg.Retry.Providers)),
		defaultName: strings.ToLower(strings.TrimSpace(cfg.DefaultProvider)),
	}
	for _, name := range cfg.Retry.Providers {
		registry.retried[strings.ToLower(strings.TrimSpace(name))] = true
	}

	if registry.defaultName != "" && !slices.Contains(providerOrder, registry.defaultName) {
		return nil, errors.Errorf("unknown vision.defaultProvider %q", cfg.DefaultProvider)
	}

	for _, name := range providerOrder {
		extractor, err := buildProvider(ctx, name, cfg, logger)
		if err != nil {
			logger.Warn("Vision provider unavailable", slog.String("provider", name), slog.Any("error", err))

			continue
		}
		if closer, ok := extractor.(io.Closer); ok {
			registry.closers = append(registry.closers, closer)
		}
		if registry.retried[name] {
			extractor = withRetry(extractor, cfg.Retry, logger)
		}
		registry.extractors[name] = extractor
	}

	logger.Info("Vision providers ready",
		slog.Int("configured", len(registry.extractors)),
		slog.String("default", registry.defaultName),
	)

	return registry, nil
}

func buildProvider(ctx context.Context, name string, cfg *config.VisionConfig, logger *slog.Logger) (service.InvoiceExtractor, error) {
	switch name {
	case constants.VisionProviderGemini:
		return NewGeminiExtractor(ctx, cfg.Gemini, logger)
	case constants.VisionProviderOpenAI:
		return NewOpenAIExtractor(cfg.OpenAI, logger)
	case constants.VisionProviderAnthropic:
		return NewAnthropicExtractor(cfg.Anthropic, logger)
	case constants.VisionProviderOCRService:
		return NewOCRServiceExtractor(cfg.OCRService, logger)
	case constants.VisionProviderTesseract:
		return NewTesseractExtractor(cfg.Tesseract, logger)
	default:
		return nil, errors.Errorf("unknown vision provider %q", name)
	}
}

// Select implements service.InvoiceExtractorSelector.
func (r *Registry) Select(name string) (service.InvoiceExtractor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = r.defaultName
	}
	if name == "" {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "no default vision provider")
	}

	extractor, ok := r.extractors[name]
	if !ok {
		return nil, errors.Wrapf(service.ErrProviderNotConfigured, "provider %q", name)
	}

	return extractor, nil
}

// Providers implements service.InvoiceExtractorSelector.
func (r *Registry) Providers() []service.ProviderStatus {
	statuses := make([]service.ProviderStatus, 0, len(providerOrder))
	for _, name := range providerOrder {
		_, configured := r.extractors[name]
		statuses = append(statuses, service.ProviderStatus{
			Name:       name,
			Configured: configured,
			Default:    name == r.defaultName,
			Retried:    r.retried[name],
		})
	}

	return statuses
}

// Close releases provider clients.
func (r *Registry) Close() error {
	var errs []error
	for _, closer := range r.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Module wires the vision registry into Fx.
var Module = fx.Options(
	fx.Provide(NewRegistry),
)
