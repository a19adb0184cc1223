package vision

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed invoice.schema.json
var invoiceSchemaJSON []byte

var (
	invoiceSchemaOnce sync.Once
	invoiceSchema     *jsonschema.Schema
	invoiceSchemaErr  error
)

func compiledInvoiceSchema() (*jsonschema.Schema, error) {
	invoiceSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("invoice.schema.json", bytes.NewReader(invoiceSchemaJSON)); err != nil {
			invoiceSchemaErr = errors.Wrap(err, "add invoice schema")

			return
		}
		invoiceSchema, invoiceSchemaErr = compiler.Compile("invoice.schema.json")
		invoiceSchemaErr = errors.Wrap(invoiceSchemaErr, "compile invoice schema")
	})

	return invoiceSchema, invoiceSchemaErr
}

// keyAlias resolves a lower-cased key to its canonical name. Lower rank wins
// when several synonyms of the same field are present.
type keyAlias struct {
	canonical string
	rank      int
}

type keyTable map[string]keyAlias

// newKeyTable takes alias/canonical pairs in priority order.
func newKeyTable(pairs ...[2]string) keyTable {
	table := make(keyTable, len(pairs))
	for rank, pair := range pairs {
		table[pair[0]] = keyAlias{canonical: pair[1], rank: rank}
	}

	return table
}

// Key synonyms seen in model answers, mapped to the canonical names.
var (
	invoiceKeys = newKeyTable(
		[2]string{"cliente", "cliente"},
		[2]string{"nomecliente", "cliente"},
		[2]string{"customer", "cliente"},
		[2]string{"numeropedido", "numeroPedido"},
		[2]string{"numero_pedido", "numeroPedido"},
		[2]string{"pedido", "numeroPedido"},
		[2]string{"ordernumber", "numeroPedido"},
		[2]string{"data", "data"},
		[2]string{"datapedido", "data"},
		[2]string{"date", "data"},
		[2]string{"valortotal", "valorTotal"},
		[2]string{"valor_total", "valorTotal"},
		[2]string{"totalvalue", "valorTotal"},
		[2]string{"total", "valorTotal"},
		[2]string{"produtos", "produtos"},
		[2]string{"products", "produtos"},
		[2]string{"produtosfast", "produtosFast"},
		[2]string{"produtos_fast", "produtosFast"},
		[2]string{"itens", "itens"},
		[2]string{"items", "itens"},
	)
	productKeys = newKeyTable(
		[2]string{"codigo", "codigo"},
		[2]string{"cod", "codigo"},
		[2]string{"code", "codigo"},
		[2]string{"descricao", "descricao"},
		[2]string{"description", "descricao"},
		[2]string{"nome", "nome"},
		[2]string{"name", "nome"},
		[2]string{"quantidade", "quantidade"},
		[2]string{"qtd", "quantidade"},
		[2]string{"quantity", "quantidade"},
		[2]string{"valorunitario", "valorUnitario"},
		[2]string{"valor_unitario", "valorUnitario"},
		[2]string{"unitprice", "valorUnitario"},
		[2]string{"unitvalue", "valorUnitario"},
		[2]string{"valortotal", "valorTotal"},
		[2]string{"valor_total", "valorTotal"},
		[2]string{"totalvalue", "valorTotal"},
		[2]string{"total", "valorTotal"},
	)
	numericKeys = map[string]bool{
		"valorTotal":    true,
		"quantidade":    true,
		"valorUnitario": true,
	}
	textKeys = map[string]bool{
		"cliente":      true,
		"numeroPedido": true,
		"data":         true,
		"codigo":       true,
		"descricao":    true,
		"nome":         true,
	}
)

// decodeInvoice turns a raw provider answer into a validated ParsedInvoice.
func decodeInvoice(provider, text string) (*entity.ParsedInvoice, error) {
	object, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(object), &raw); err != nil {
		return nil, errors.Wrap(service.ErrMalformedJSON, err.Error())
	}

	return decodeInvoiceMap(provider, raw)
}

// decodeInvoiceMap sanitizes, validates and decodes an already parsed object.
func decodeInvoiceMap(provider string, raw map[string]any) (*entity.ParsedInvoice, error) {
	schema, err := compiledInvoiceSchema()
	if err != nil {
		return nil, err
	}

	clean := sanitizeObject(raw, invoiceKeys)
	if err := schema.Validate(clean); err != nil {
		return nil, errors.Wrap(service.ErrSchemaViolation, err.Error())
	}

	payload, err := json.Marshal(clean)
	if err != nil {
		return nil, errors.Wrap(service.ErrMalformedJSON, err.Error())
	}

	var invoice entity.ParsedInvoice
	if err := json.Unmarshal(payload, &invoice); err != nil {
		return nil, errors.Wrap(service.ErrSchemaViolation, err.Error())
	}
	invoice.Provider = provider

	return &invoice, nil
}

// sanitizeObject renames known synonyms, drops nulls and unknown keys, and coerces
// scalar types the schema expects. Values it cannot coerce are kept for the validator to reject.
func sanitizeObject(raw map[string]any, keys keyTable) map[string]any {
	picked := make(map[string]string, len(raw))
	for key, value := range raw {
		alias, ok := keys[strings.ToLower(strings.TrimSpace(key))]
		if !ok || value == nil {
			continue
		}
		if current, taken := picked[alias.canonical]; taken && !preferKey(keys, alias.canonical, key, current) {
			continue
		}
		picked[alias.canonical] = key
	}

	clean := make(map[string]any, len(picked))
	for canonical, key := range picked {
		value := raw[key]
		switch {
		case canonical == "produtos" || canonical == "produtosFast" || canonical == "itens":
			clean[canonical] = sanitizeProducts(value)
		case numericKeys[canonical]:
			clean[canonical] = coerceNumber(value)
		case textKeys[canonical]:
			clean[canonical] = coerceText(value)
		default:
			clean[canonical] = value
		}
	}

	return clean
}

// preferKey reports whether candidate should replace current for the same canonical field:
// lower alias rank first, then the exact canonical spelling, then the smaller raw key.
func preferKey(keys keyTable, canonical, candidate, current string) bool {
	candidateRank := keys[strings.ToLower(strings.TrimSpace(candidate))].rank
	currentRank := keys[strings.ToLower(strings.TrimSpace(current))].rank
	if candidateRank != currentRank {
		return candidateRank < currentRank
	}

	candidateExact := strings.TrimSpace(candidate) == canonical
	currentExact := strings.TrimSpace(current) == canonical
	if candidateExact != currentExact {
		return candidateExact
	}

	return candidate < current
}

func sanitizeProducts(value any) any {
	items, ok := value.([]any)
	if !ok {
		return value
	}

	products := make([]any, 0, len(items))
	for _, item := range items {
		switch product := item.(type) {
		case nil:
			continue
		case map[string]any:
			products = append(products, sanitizeObject(product, productKeys))
		default:
			products = append(products, product)
		}
	}

	return products
}

func coerceNumber(value any) any {
	text, ok := value.(string)
	if !ok {
		return value
	}
	if number, ok := parseDecimal(text); ok {
		return number
	}

	return value
}

func coerceText(value any) any {
	switch typed := value.(type) {
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return value
	}
}

// groupedThousands matches "1.162" or "-12.500.000": dots as thousands separators, no decimals.
var groupedThousands = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// parseDecimal reads amounts written as "1.162,00", "R$ 33,20", "R$ 1.162", "35" or "33.20".
func parseDecimal(text string) (float64, bool) {
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "R$"))
	text = strings.ReplaceAll(text, " ", "")
	if text == "" {
		return 0, false
	}

	switch {
	case strings.Contains(text, ","):
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	case groupedThousands.MatchString(text):
		text = strings.ReplaceAll(text, ".", "")
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	return number, true
}
