package service

import "clubefast/internal/domain/entity"

// RedemptionExporter renders redemptions as a downloadable spreadsheet.
type RedemptionExporter interface {
	Export(redemptions []*entity.Redemption) ([]byte, error)

	// ContentType returns the MIME type of the exported file.
	ContentType() string
}
