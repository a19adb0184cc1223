package vision

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
)

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}

var (
	reProductLine = regexp.MustCompile(`^\s*([A-Z]{2}\d{5})\s+(.+?)\s+(\d+(?:[.,]\d+)?)\s+(?:[A-Z]{2}\s+)?(\d{1,3}(?:\.\d{3})*,\d{2})\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*$`)
	reInvoiceDate = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	reTotalLine   = regexp.MustCompile(`(?i)^\s*(?:valor\s+)?total(?:\s+(?:geral|da\s+nota|do\s+pedido))?\s*:?\s*(?:R\$\s*)?(\d{1,3}(?:\.\d{3})*,\d{2})\s*$`)
	reOrderNumber = regexp.MustCompile(`(?i)pedido\s*(?:n[º°o.]*)?\s*:?\s*(\d+)`)
	reCustomer    = regexp.MustCompile(`(?i)^\s*cliente\s*:\s*(.+?)\s*$`)
)

// TesseractExtractor runs the local tesseract CLI and parses the recognised text line by line.
type TesseractExtractor struct {
	runner   Runner
	binary   string
	language string
	logger   *slog.Logger
}

// NewTesseractExtractor checks that the fallback is enabled and the binary is on PATH.
func NewTesseractExtractor(cfg config.TesseractConfig, logger *slog.Logger) (*TesseractExtractor, error) {
	if !cfg.Enabled {
		return nil, errors.Wrap(service.ErrProviderNotConfigured, "vision.tesseract.enabled is false")
	}
	if _, err := exec.LookPath(cfg.Binary); err != nil {
		return nil, errors.Wrapf(service.ErrProviderNotConfigured, "tesseract binary %q not found", cfg.Binary)
	}

	return newTesseractExtractor(execRunner{}, cfg, logger), nil
}

func newTesseractExtractor(runner Runner, cfg config.TesseractConfig, logger *slog.Logger) *TesseractExtractor {
	return &TesseractExtractor{
		runner:   runner,
		binary:   cfg.Binary,
		language: cfg.Language,
		logger:   logger,
	}
}

// Name implements service.InvoiceExtractor.
func (t *TesseractExtractor) Name() string {
	return constants.VisionProviderTesseract
}

// Extract implements service.InvoiceExtractor.
func (t *TesseractExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entity.ParsedInvoice, error) {
	return observe(ctx, t.logger, t.Name(), image, mimeType, func(ctx context.Context) (*entity.ParsedInvoice, error) {
		if mimeType == mimeTypePDF {
			return nil, errors.Wrap(service.ErrProviderRejected, "tesseract reads images only")
		}

		path, cleanup, err := writeTempImage(image, mimeType)
		if err != nil {
			return nil, err
		}
		defer cleanup()

		start := time.Now()
		stdout, stderr, err := t.runner.Run(ctx, t.binary, path, "stdout", "-l", t.language)
		if err != nil {
			return nil, errors.Wrapf(err, "tesseract: %s", strings.TrimSpace(string(stderr)))
		}
		requestLogger(ctx, t.logger).Debug("vision.tesseract.ocr",
			slog.Int("text_len", len(stdout)),
			slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)

		invoice := parseTesseractText(string(stdout))
		if invoice.ProductCount() == 0 && invoice.ValorTotal == nil {
			return nil, errors.Wrap(service.ErrProviderRejected, "no invoice data recognised")
		}
		invoice.Provider = t.Name()

		return invoice, nil
	})
}

func writeTempImage(image []byte, mimeType string) (string, func(), error) {
	ext, ok := constants.AllowedImageMimeTypes[strings.ToLower(mimeType)]
	if !ok {
		ext = "img"
	}

	file, err := os.CreateTemp("", "clubefast-invoice-*."+ext)
	if err != nil {
		return "", nil, errors.Wrap(err, "create temp image")
	}
	cleanup := func() { _ = os.Remove(file.Name()) }

	if _, err := file.Write(image); err != nil {
		_ = file.Close()
		cleanup()

		return "", nil, errors.Wrap(err, "write temp image")
	}
	if err := file.Close(); err != nil {
		cleanup()

		return "", nil, errors.Wrap(err, "close temp image")
	}

	return file.Name(), cleanup, nil
}

// parseTesseractText reads product lines (code, description, quantity, unit price, total),
// the invoice date, the order number, the customer and the invoice total.
func parseTesseractText(text string) *entity.ParsedInvoice {
	invoice := &entity.ParsedInvoice{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()

		if match := reProductLine.FindStringSubmatch(line); match != nil {
			invoice.Produtos = append(invoice.Produtos, entity.ParsedProduct{
				Codigo:        stringPtr(match[1]),
				Descricao:     stringPtr(strings.TrimSpace(match[2])),
				Quantidade:    decimalPtr(match[3]),
				ValorUnitario: decimalPtr(match[4]),
				ValorTotal:    decimalPtr(match[5]),
			})

			continue
		}
		if match := reTotalLine.FindStringSubmatch(line); match != nil {
			invoice.ValorTotal = decimalPtr(match[1])

			continue
		}
		if match := reCustomer.FindStringSubmatch(line); match != nil && invoice.Cliente == nil {
			invoice.Cliente = stringPtr(match[1])
		}
		if match := reOrderNumber.FindStringSubmatch(line); match != nil && invoice.NumeroPedido == nil {
			invoice.NumeroPedido = stringPtr(match[1])
		}
		if match := reInvoiceDate.FindStringSubmatch(line); match != nil && invoice.Data == nil {
			invoice.Data = stringPtr(match[1])
		}
	}

	return invoice
}

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(s string) *float64 {
	value, ok := parseDecimal(s)
	if !ok {
		return nil
	}

	return &value
}
