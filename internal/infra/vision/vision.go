// Package vision reads invoice photos through hosted AI models and self-hosted OCR fallbacks.
package vision

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
)

// errEmptyImage is returned before any provider call when there is nothing to send.
var errEmptyImage = errors.New("empty image")

// extractFunc performs one provider call.
type extractFunc func(ctx context.Context) (*entity.ParsedInvoice, error)

// observe logs the start and outcome of a provider call.
func observe(ctx context.Context, logger *slog.Logger, provider string, image []byte, mimeType string, call extractFunc) (*entity.ParsedInvoice, error) {
	log := requestLogger(ctx, logger).With(slog.String("provider", provider))
	if len(image) == 0 {
		return nil, errEmptyImage
	}

	start := time.Now()
	log.Info("vision.extract.start", slog.String("mime_type", mimeType), slog.Int("image_bytes", len(image)))

	invoice, err := call(ctx)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		level := slog.LevelError
		if service.IsParseError(err) {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "vision.extract.error", slog.Any("error", err), slog.Int64("elapsed_ms", elapsed))

		return nil, err
	}

	log.Info("vision.extract.done",
		slog.Int("products", invoice.ProductCount()),
		slog.Int64("elapsed_ms", elapsed),
	)

	return invoice, nil
}

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

func dataURL(image []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
