package points

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"clubefast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)
}

func TestCalculator_PlacaSTExample(t *testing.T) {
	calc := NewCalculator(fixedNow)

	result := calc.Calculate(&entity.ParsedInvoice{
		Produtos: []entity.ParsedProduct{
			{Codigo: ptr("DW00057"), Quantidade: ptr(35.0), ValorUnitario: ptr(33.20)},
		},
	})

	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.InDelta(t, 1162.00, item.Total, 1e-9)
	assert.Equal(t, "Placa ST", item.Category)
	assert.InDelta(t, 0.5, item.Rate, 1e-9)
	assert.Equal(t, 581, item.Points)
	assert.Equal(t, 581, result.TotalPoints)
	assert.False(t, result.NoEligibleProducts)
	assert.Empty(t, result.Message)
}

func TestCalculator_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		inv  *entity.ParsedInvoice
	}{
		{"nil invoice", nil},
		{"no arrays", &entity.ParsedInvoice{}},
		{"empty arrays", &entity.ParsedInvoice{
			Produtos:     []entity.ParsedProduct{},
			ProdutosFast: []entity.ParsedProduct{},
			Itens:        []entity.ParsedProduct{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewCalculator(fixedNow).Calculate(tt.inv)

			assert.Equal(t, 0, result.TotalPoints)
			assert.True(t, result.NoEligibleProducts)
			assert.Equal(t, NoEligibleProductsMessage, result.Message)
			assert.Empty(t, result.Items)
			assert.Empty(t, result.AllProducts)
			assert.Equal(t, "2024-06-10", result.Date)
		})
	}
}

func TestCalculator_IneligibleLinesOnlyInAllProducts(t *testing.T) {
	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
		Produtos: []entity.ParsedProduct{
			{Descricao: ptr("PLAGA ST 13MM"), Quantidade: ptr(10.0), ValorUnitario: ptr(40.0)},
			{Descricao: ptr("PARAFUSO 25MM"), Quantidade: ptr(100.0), ValorUnitario: ptr(0.15)},
		},
	})

	assert.Empty(t, result.Items)
	require.Len(t, result.AllProducts, 2)
	for _, item := range result.AllProducts {
		assert.False(t, item.Eligible)
		assert.Equal(t, 0, item.Points)
	}
	assert.True(t, result.NoEligibleProducts)
	assert.InDelta(t, 415.0, result.DeclaredTotal, 1e-9)
}

func TestCalculator_Defaults(t *testing.T) {
	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
		Itens: []entity.ParsedProduct{
			// missing quantity defaults to 1
			{Codigo: ptr("PX00100"), ValorUnitario: ptr(49.90)},
			// missing unit price defaults to 0: listed, never eligible
			{Codigo: ptr("GX00012"), Quantidade: ptr(3.0)},
			// explicit total wins over quantity * unit price
			{Descricao: ptr("BASECOAT GLASROC"), Quantidade: ptr(2.0), ValorUnitario: ptr(10.0), ValorTotal: ptr(25.0)},
		},
	})

	require.Len(t, result.AllProducts, 3)
	require.Len(t, result.Items, 2)

	assert.InDelta(t, 1.0, result.Items[0].Quantity, 1e-9)
	assert.Equal(t, 49, result.Items[0].Points)

	zero := result.AllProducts[1]
	assert.False(t, zero.Eligible)
	assert.Equal(t, 0, zero.Points)
	assert.Equal(t, "Placa Glasroc X", zero.Category)

	assert.InDelta(t, 25.0, result.Items[1].Total, 1e-9)
	assert.Equal(t, 50, result.Items[1].Points)

	assert.Equal(t, 99, result.TotalPoints)
}

func TestCalculator_TotalIsSumOfEligiblePoints(t *testing.T) {
	inv := &entity.ParsedInvoice{
		Cliente:      ptr("  Construtora Alfa  "),
		NumeroPedido: ptr("000123"),
		Data:         ptr("23/05/2024"),
		ValorTotal:   ptr(5000.0),
		Produtos: []entity.ParsedProduct{
			{Codigo: ptr("DW00058"), Quantidade: ptr(10.0), ValorUnitario: ptr(45.55)},
			{Descricao: ptr("PARAFUSO"), Quantidade: ptr(1.0), ValorUnitario: ptr(12.0)},
		},
		ProdutosFast: []entity.ParsedProduct{
			{Descricao: ptr("MALHA GLASROC X"), Quantidade: ptr(3.0), ValorUnitario: ptr(99.99)},
		},
		Itens: []entity.ParsedProduct{
			{Descricao: ptr("PLACOMIX 25KG"), ValorTotal: ptr(-5.0)},
			{Descricao: ptr("PLACOMIX 5KG"), Quantidade: ptr(2.0), ValorUnitario: ptr(19.99)},
		},
	}

	result := NewCalculator(fixedNow).Calculate(inv)

	sum := 0
	for _, item := range result.Items {
		assert.True(t, item.Eligible)
		sum += item.Points
	}
	assert.Equal(t, sum, result.TotalPoints)
	assert.GreaterOrEqual(t, result.TotalPoints, 0)
	assert.Len(t, result.AllProducts, 5)
	assert.Len(t, result.Items, 3)

	// 455.50*0.5=227, 299.97*2=599, 39.98*1=39
	assert.Equal(t, 227+599+39, result.TotalPoints)
	assert.Equal(t, "Construtora Alfa", result.CustomerName)
	assert.Equal(t, "2024-05-23", result.Date)
	assert.InDelta(t, 5000.0, result.DeclaredTotal, 1e-9)
	assert.InDelta(t, 795.45, result.EligibleTotal, 1e-9)
}

func TestCalculator_DropsEchoedArrays(t *testing.T) {
	line := entity.ParsedProduct{Codigo: ptr("DW00057"), Quantidade: ptr(2.0), ValorUnitario: ptr(30.0)}

	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
		Produtos:     []entity.ParsedProduct{line, line},
		ProdutosFast: []entity.ParsedProduct{line},
	})

	// Repeats inside one array are real lines; the echo under produtosFast is not.
	assert.Len(t, result.AllProducts, 2)
	assert.Equal(t, 60, result.TotalPoints)
}

func TestCalculator_OutOfRangeAmounts(t *testing.T) {
	tests := []struct {
		name    string
		product entity.ParsedProduct
	}{
		{"huge line total", entity.ParsedProduct{Codigo: ptr("GX00012"), ValorTotal: ptr(9e16)}},
		{"huge quantity times price", entity.ParsedProduct{Codigo: ptr("GX00012"), Quantidade: ptr(1e9), ValorUnitario: ptr(1e9)}},
		{"huge unit price", entity.ParsedProduct{Codigo: ptr("DW00057"), ValorUnitario: ptr(5e15)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
				ValorTotal: ptr(9e16),
				Produtos:   []entity.ParsedProduct{tt.product},
			})

			require.Len(t, result.AllProducts, 1)
			assert.GreaterOrEqual(t, result.TotalPoints, 0)
			assert.Equal(t, 0, result.TotalPoints)
			assert.False(t, result.AllProducts[0].Eligible)
			assert.True(t, result.NoEligibleProducts)
			assert.GreaterOrEqual(t, result.DeclaredTotal, 0.0)
		})
	}
}

func TestCalculator_PointsStayWithinColumnRange(t *testing.T) {
	products := make([]entity.ParsedProduct, 0, 20)
	for i := 0; i < 20; i++ {
		// each line is distinct so none is dropped as an echo
		products = append(products, entity.ParsedProduct{Codigo: ptr("GX00012"), Quantidade: ptr(float64(i + 1)), ValorTotal: ptr(maxAmount)})
	}

	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{Produtos: products})

	assert.Equal(t, maxPoints, result.TotalPoints)
	assert.LessOrEqual(t, result.EligibleTotal, fromCents(maxTotalCents))
}

func TestCalculator_NegativeLineListedWithoutPoints(t *testing.T) {
	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
		Produtos: []entity.ParsedProduct{
			{Codigo: ptr("DW00057"), Quantidade: ptr(35.0), ValorUnitario: ptr(33.20)},
			{Descricao: ptr("DESCONTO"), ValorTotal: ptr(-10.0)},
		},
	})

	require.Len(t, result.AllProducts, 2)
	discount := result.AllProducts[1]
	assert.Equal(t, "DESCONTO", discount.Description)
	assert.False(t, discount.Eligible)
	assert.Equal(t, 0, discount.Points)
	assert.Equal(t, 581, result.TotalPoints)
}

func TestCalculator_TruncatesToColumnWidths(t *testing.T) {
	longCode := "PX-" + strings.Repeat("Ç", 40)

	result := NewCalculator(fixedNow).Calculate(&entity.ParsedInvoice{
		Cliente:      ptr(strings.Repeat("Ã", 250)),
		NumeroPedido: ptr(strings.Repeat("9", 80)),
		Produtos: []entity.ParsedProduct{
			{Codigo: ptr(longCode), Descricao: ptr("PLACOMIX 25KG"), Quantidade: ptr(1.0), ValorUnitario: ptr(100.0)},
		},
	})

	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.True(t, item.Eligible)
	assert.Equal(t, 30, utf8.RuneCountInString(item.Code))
	assert.True(t, utf8.ValidString(item.Code))
	assert.True(t, strings.HasPrefix(item.Code, "PX-"))
	assert.Equal(t, 100, item.Points)
	assert.Equal(t, 200, utf8.RuneCountInString(result.CustomerName))
	assert.Len(t, result.OrderNumber, 60)
}
