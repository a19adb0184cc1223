// Package export renders admin reports as spreadsheets.
package export

import (
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName    = "Resgates"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout   = "02/01/2006 15:04"
	collectedYes = "Sim"
	collectedNo  = "Não"
)

var headers = []string{
	"Código",
	"Data do resgate",
	"Cliente",
	"E-mail",
	"Prêmio",
	"Pontos",
	"Status",
	"Coletado",
	"Coletado por",
	"Data da coleta",
}

type xlsxRedemptionExporter struct{}

// NewRedemptionExporter returns the .xlsx exporter used by the admin download.
func NewRedemptionExporter() service.RedemptionExporter {
	return &xlsxRedemptionExporter{}
}

func (e *xlsxRedemptionExporter) ContentType() string {
	return xlsxMIME
}

// Export writes one row per redemption below a bold, frozen header row.
func (e *xlsxRedemptionExporter) Export(redemptions []*entity.Redemption) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, errors.Wrap(err, "write header")
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, style)
	}
	_ = f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i, r := range redemptions {
		row := i + 2
		collected, collectedAt := collectedNo, ""
		if r.Collected {
			collected = collectedYes
		}
		if r.CollectedAt != nil {
			collectedAt = r.CollectedAt.Format(dateLayout)
		}

		values := []any{
			r.Code,
			r.CreatedAt.Format(dateLayout),
			r.CustomerName,
			r.CustomerEmail,
			r.PrizeName,
			r.PointsCost,
			string(r.Status),
			collected,
			r.CollectedBy,
			collectedAt,
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "write row %d", row)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 16)
	_ = f.SetColWidth(sheetName, "B", "B", 18)
	_ = f.SetColWidth(sheetName, "C", "E", 30)
	_ = f.SetColWidth(sheetName, "F", "H", 12)
	_ = f.SetColWidth(sheetName, "I", "J", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "xlsx write")
	}

	return buf.Bytes(), nil
}
