// Package points holds the loyalty program rules: which products earn points,
// at which rate, and how an extracted invoice becomes a credited order.
package points

import "strings"

// Category is a product family of the promotion and its points-per-real rate.
// The rate is stored in tenths so point math stays in integers.
type Category struct {
	Name       string
	RateTenths int64
}

// Rate returns the points earned per real spent.
func (c Category) Rate() float64 {
	return float64(c.RateTenths) / 10
}

// MatchKind tells how a line was matched against the product table.
type MatchKind string

const (
	MatchNone MatchKind = ""
	MatchCode MatchKind = "code"
	MatchName MatchKind = "name"
)

// Product families participating in the promotion.
var (
	CategoryPlacaST      = Category{Name: "Placa ST", RateTenths: 5}
	CategoryPlacaGlasroc = Category{Name: "Placa Glasroc X", RateTenths: 20}
	CategoryPlacomix     = Category{Name: "Placomix", RateTenths: 10}
	CategoryMalhaGlasroc = Category{Name: "Malha Glasroc X", RateTenths: 20}
	CategoryBasecoat     = Category{Name: "Basecoat Glasroc X", RateTenths: 20}
)

// productCodes maps Fast Sistemas product codes to their family.
//
//nolint:gochecknoglobals
var productCodes = map[string]Category{
	"DW00057": CategoryPlacaST, // Placa ST 12,5mm 1200x1800
	"DW00058": CategoryPlacaST, // Placa ST 12,5mm 1200x2400
	"DW00059": CategoryPlacaST, // Placa ST 12,5mm 1200x2600
	"DW00074": CategoryPlacaST, // Placa ST 12,5mm 1200x2800
	"GX00012": CategoryPlacaGlasroc,
	"GX00013": CategoryPlacaGlasroc,
	"PX00100": CategoryPlacomix, // Placomix 25kg
	"PX00101": CategoryPlacomix, // Placomix 5kg
	"GX00020": CategoryMalhaGlasroc,
	"GX00030": CategoryBasecoat,
	"GX00031": CategoryBasecoat,
}

type nameRule struct {
	category Category
	matches  func(name string) bool
}

// nameRules are evaluated in order against the upper-cased product name.
// Matching is literal: OCR misreadings such as "PLAGA ST" do not qualify.
//
//nolint:gochecknoglobals
var nameRules = []nameRule{
	{CategoryPlacaST, func(n string) bool { return strings.Contains(n, "PLACA ST") && strings.Contains(n, "13") }},
	{CategoryPlacaGlasroc, func(n string) bool { return strings.Contains(n, "GLASROC") && strings.Contains(n, "PLACA") }},
	{CategoryPlacomix, func(n string) bool { return strings.Contains(n, "PLACOMIX") }},
	{CategoryMalhaGlasroc, func(n string) bool { return strings.Contains(n, "MALHA") && strings.Contains(n, "GLASROC") }},
	{CategoryBasecoat, func(n string) bool {
		return strings.Contains(n, "BASECOAT") || (strings.Contains(n, "MASSA") && strings.Contains(n, "GLASROC"))
	}},
}

// Match finds the product family for a line. A code in the table always wins over the name.
func Match(code, name string) (Category, MatchKind) {
	if category, ok := productCodes[normalizeCode(code)]; ok {
		return category, MatchCode
	}

	upper := strings.ToUpper(name)
	for _, rule := range nameRules {
		if rule.matches(upper) {
			return rule.category, MatchName
		}
	}

	return Category{}, MatchNone
}

// LookupCode returns the family registered for a product code.
func LookupCode(code string) (Category, bool) {
	category, ok := productCodes[normalizeCode(code)]

	return category, ok
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
