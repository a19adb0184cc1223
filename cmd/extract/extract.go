package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/points"
	"clubefast/internal/infra/vision"
	"clubefast/internal/util"

	"github.com/pkg/errors"
)

type extractOutput struct {
	Provider string                `json:"provider"`
	Size     string                `json:"size"`
	Elapsed  string                `json:"elapsed"`
	Invoice  *entity.ParsedInvoice `json:"invoice"`
	Result   *points.Result        `json:"result"`
}

func runExtract(ctx context.Context, path, provider, mimeType string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if mimeType == "" {
		mimeType = detectMimeType(path, image)
	}

	logger := newCLILogger()

	registry, err := openRegistry(ctx, logger)
	if err != nil {
		return err
	}
	defer registry.Close()

	extractor, err := registry.Select(provider)
	if err != nil {
		return err
	}

	start := time.Now()
	invoice, err := extractor.Extract(ctx, image, mimeType)
	if err != nil {
		return errors.Wrapf(err, "extract with %s", extractor.Name())
	}

	return printJSON(extractOutput{
		Provider: extractor.Name(),
		Size:     util.FormatBytes(int64(len(image))),
		Elapsed:  time.Since(start).Round(time.Millisecond).String(),
		Invoice:  invoice,
		Result:   points.NewCalculator(time.Now).Calculate(invoice),
	})
}

func openRegistry(ctx context.Context, logger *slog.Logger) (*vision.Registry, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return vision.Build(ctx, cfg.Vision, logger)
}

// detectMimeType prefers the file extension and falls back to content sniffing.
func detectMimeType(path string, image []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(image))

	return mediaType
}

func newCLILogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
