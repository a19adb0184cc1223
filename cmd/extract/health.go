package main

import (
	"context"
	"fmt"

	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
)

func runHealth(ctx context.Context) error {
	registry, err := openRegistry(ctx, newCLILogger())
	if err != nil {
		return err
	}
	defer registry.Close()

	for _, status := range registry.Providers() {
		fmt.Printf("  %-12s configured=%t default=%t retried=%t\n", status.Name, status.Configured, status.Default, status.Retried)
	}

	extractor, err := registry.Select(constants.VisionProviderOCRService)
	if err != nil {
		fmt.Println("OCR service: disabled")

		return nil
	}

	checker, ok := extractor.(service.HealthChecker)
	if !ok {
		return errors.New("OCR service extractor has no health probe")
	}
	if err := checker.Health(ctx); err != nil {
		fmt.Println("OCR service: unavailable")

		return errors.Wrap(err, "OCR service health check")
	}

	fmt.Println("OCR service: ok")

	return nil
}
