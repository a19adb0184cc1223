package export

import (
	"bytes"
	"testing"
	"time"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXRedemptionExporter_Export(t *testing.T) {
	created := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	collectedAt := created.Add(48 * time.Hour)

	redemptions := []*entity.Redemption{
		{
			ID:            uuid.New(),
			Code:          "CF-0A1B2C3D4E",
			PrizeName:     "Kit de brocas",
			PointsCost:    1500,
			Status:        entity.RedemptionStatusConfirmed,
			CustomerName:  "Maria",
			CustomerEmail: "maria@example.com",
			CreatedAt:     created,
		},
		{
			ID:          uuid.New(),
			Code:        "CF-FFFFFFFFFF",
			PrizeName:   "Boné",
			PointsCost:  200,
			Status:      entity.RedemptionStatusConfirmed,
			Collected:   true,
			CollectedBy: "Gerente",
			CollectedAt: &collectedAt,
			CreatedAt:   created,
		},
	}

	exporter := NewRedemptionExporter()
	assert.Equal(t, xlsxMIME, exporter.ContentType())

	data, err := exporter.Export(redemptions)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"CF-0A1B2C3D4E", "10/06/2024 14:30", "Maria", "maria@example.com", "Kit de brocas", "1500", "confirmado", "Não"}, rows[1])
	assert.Equal(t, "Sim", rows[2][7])
	assert.Equal(t, "Gerente", rows[2][8])
	assert.Equal(t, "12/06/2024 14:30", rows[2][9])
}

func TestXLSXRedemptionExporter_EmptyList(t *testing.T) {
	data, err := NewRedemptionExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
