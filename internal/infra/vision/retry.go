package vision

import (
	"context"
	"log/slog"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"
	"clubefast/internal/errors"
)

// retryExtractor retries transport failures of the wrapped provider with linear backoff.
// Parse failures, a missing configuration and cancellation of the caller's context end it at once.
type retryExtractor struct {
	next           service.InvoiceExtractor
	maxAttempts    int
	attemptTimeout time.Duration
	backoff        time.Duration
	logger         *slog.Logger
	sleep          func(ctx context.Context, d time.Duration) error
}

// retryHealthExtractor keeps the health probe of a wrapped service.HealthChecker reachable.
type retryHealthExtractor struct {
	*retryExtractor
	checker service.HealthChecker
}

func (r *retryHealthExtractor) Health(ctx context.Context) error {
	return r.checker.Health(ctx)
}

// withRetry wraps next in the retry policy. The result implements service.HealthChecker when next does.
func withRetry(next service.InvoiceExtractor, cfg config.RetryConfig, logger *slog.Logger) service.InvoiceExtractor {
	retry := &retryExtractor{
		next:           next,
		maxAttempts:    max(cfg.MaxAttempts, 1),
		attemptTimeout: cfg.AttemptTimeout,
		backoff:        cfg.Backoff,
		logger:         logger,
		sleep:          sleepContext,
	}

	if checker, ok := next.(service.HealthChecker); ok {
		return &retryHealthExtractor{retryExtractor: retry, checker: checker}
	}

	return retry
}

func (r *retryExtractor) Name() string {
	return r.next.Name()
}

func (r *retryExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	log := requestLogger(ctx, r.logger).With(slog.String("provider", r.next.Name()))

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		invoice, err := r.attempt(ctx, image, mimeType)
		if err == nil {
			return invoice, nil
		}
		lastErr = err

		if !retryable(ctx, err) || attempt == r.maxAttempts {
			break
		}

		wait := r.backoff * time.Duration(attempt)
		log.Warn("vision.extract.retry",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
		if err := r.sleep(ctx, wait); err != nil {
			return nil, errors.Wrap(err, "retry interrupted")
		}
	}

	return nil, lastErr
}

func (r *retryExtractor) attempt(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	attemptCtx, cancel := withTimeout(ctx, r.attemptTimeout)
	defer cancel()

	return r.next.Extract(attemptCtx, image, mimeType)
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	return !service.IsParseError(err) &&
		!errors.IsAny(err, service.ErrProviderNotConfigured, errEmptyImage, context.Canceled)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
