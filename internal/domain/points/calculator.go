package points

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"clubefast/internal/domain/entity"
)

// NoEligibleProductsMessage explains an invoice without participating products.
const NoEligibleProductsMessage = "Nenhum produto participante da promoção foi encontrado nesta nota fiscal."

// Column widths of the persisted order fields.
const (
	maxCodeLength         = 30
	maxOrderNumberLength  = 60
	maxCustomerNameLength = 200
)

// Result is the normalized order computed from a parsed invoice.
type Result struct {
	CustomerName       string            `json:"cliente,omitempty"`
	OrderNumber        string            `json:"numeroPedido,omitempty"`
	Date               string            `json:"data"`
	DateFallback       bool              `json:"-"` // Date was unreadable and today was used.
	DeclaredTotal      float64           `json:"valorTotal"`
	EligibleTotal      float64           `json:"valorElegivel"`
	Items              []entity.LineItem `json:"items"`
	AllProducts        []entity.LineItem `json:"allProducts"`
	TotalPoints        int               `json:"totalPoints"`
	NoEligibleProducts bool              `json:"noEligibleProducts"`
	Message            string            `json:"message,omitempty"`
}

// Calculator turns parsed invoices into point totals.
type Calculator struct {
	now func() time.Time
}

// NewCalculator creates a calculator. now supplies the fallback date for unreadable invoice dates.
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}

	return &Calculator{now: now}
}

// Calculate matches every line of the invoice against the product table and sums the points.
// It never fails: missing fields take their defaults and an invoice without eligible
// products is reported through NoEligibleProducts.
func (c *Calculator) Calculate(inv *entity.ParsedInvoice) *Result {
	result := &Result{
		Items:       []entity.LineItem{},
		AllProducts: []entity.LineItem{},
	}
	if inv == nil {
		inv = &entity.ParsedInvoice{}
	}

	result.CustomerName = truncateRunes(trimmed(inv.Cliente), maxCustomerNameLength)
	result.OrderNumber = truncateRunes(trimmed(inv.NumeroPedido), maxOrderNumberLength)
	result.Date, result.DateFallback = normalizeDate(trimmed(inv.Data), c.now())

	var allCents, eligibleCents int64
	for _, product := range collectProducts(inv) {
		item, totalCents := buildLineItem(product)
		allCents = addCapped(allCents, totalCents, maxTotalCents)

		result.AllProducts = append(result.AllProducts, item)
		if item.Eligible {
			eligibleCents = addCapped(eligibleCents, totalCents, maxTotalCents)
			result.TotalPoints = int(addCapped(int64(result.TotalPoints), int64(item.Points), maxPoints))
			result.Items = append(result.Items, item)
		}
	}

	if declared := toCents(boundedOr(inv.ValorTotal, maxAmount, 0)); declared > 0 {
		result.DeclaredTotal = fromCents(declared)
	} else {
		result.DeclaredTotal = fromCents(allCents)
	}
	result.EligibleTotal = fromCents(eligibleCents)

	if len(result.Items) == 0 {
		result.NoEligibleProducts = true
		result.Message = NoEligibleProductsMessage
	}

	return result
}

func buildLineItem(product entity.ParsedProduct) (entity.LineItem, int64) {
	quantity := boundedOr(product.Quantidade, maxQuantity, 1)
	unitPrice := boundedOr(product.ValorUnitario, maxAmount, 0)

	var totalCents int64
	if product.ValorTotal != nil && *product.ValorTotal > 0 {
		totalCents = toCents(*product.ValorTotal)
	} else {
		totalCents = toCents(quantity * unitPrice)
	}

	code := strings.TrimSpace(product.Code())
	item := entity.LineItem{
		Code:        truncateRunes(code, maxCodeLength),
		Description: strings.TrimSpace(product.Name()),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       fromCents(totalCents),
	}

	category, kind := Match(code, item.Description)
	if kind == MatchNone {
		return item, totalCents
	}

	item.Category = category.Name
	item.Rate = category.Rate()
	if totalCents > 0 {
		item.Eligible = true
		item.Points = pointsFor(totalCents, category)
	}

	return item, totalCents
}

// collectProducts concatenates produtos, produtosFast and itens in that order.
// A line repeated verbatim under a later array key is an echo of the same list and is dropped;
// repeats inside one array are kept.
func collectProducts(inv *entity.ParsedInvoice) []entity.ParsedProduct {
	groups := [][]entity.ParsedProduct{inv.Produtos, inv.ProdutosFast, inv.Itens}

	products := make([]entity.ParsedProduct, 0, inv.ProductCount())
	seenIn := make(map[string]int)
	for groupIdx, group := range groups {
		for _, product := range group {
			key := productKey(product)
			if firstGroup, ok := seenIn[key]; ok && firstGroup != groupIdx {
				continue
			}
			seenIn[key] = groupIdx
			products = append(products, product)
		}
	}

	return products
}

func productKey(p entity.ParsedProduct) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		normalizeCode(p.Code()),
		strings.ToUpper(strings.TrimSpace(p.Name())),
		floatKey(p.Quantidade),
		floatKey(p.ValorUnitario),
		floatKey(p.ValorTotal),
	)
}

func floatKey(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.4f", *v)
}

// truncateRunes cuts s to at most limit runes.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
