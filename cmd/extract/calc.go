package main

import (
	"encoding/json"
	"os"
	"time"

	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/points"

	"github.com/pkg/errors"
)

func runCalc(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	var invoice entity.ParsedInvoice
	if err := json.Unmarshal(raw, &invoice); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}

	return printJSON(points.NewCalculator(time.Now).Calculate(&invoice))
}
