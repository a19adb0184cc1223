package entity

// ParsedInvoice is the typed payload a vision provider returns for one invoice photo.
// Every field is optional: providers fill what they can read and the calculator applies defaults.
// Product lines may arrive under any of the three array keys.
type ParsedInvoice struct {
	Provider     string          `json:"provider,omitempty"`
	Cliente      *string         `json:"cliente,omitempty"`
	NumeroPedido *string         `json:"numeroPedido,omitempty"`
	Data         *string         `json:"data,omitempty"`
	ValorTotal   *float64        `json:"valorTotal,omitempty"`
	Produtos     []ParsedProduct `json:"produtos,omitempty"`
	ProdutosFast []ParsedProduct `json:"produtosFast,omitempty"`
	Itens        []ParsedProduct `json:"itens,omitempty"`
}

// ParsedProduct is one product line as read from the invoice.
type ParsedProduct struct {
	Codigo        *string  `json:"codigo,omitempty"`
	Descricao     *string  `json:"descricao,omitempty"`
	Nome          *string  `json:"nome,omitempty"`
	Quantidade    *float64 `json:"quantidade,omitempty"`
	ValorUnitario *float64 `json:"valorUnitario,omitempty"`
	ValorTotal    *float64 `json:"valorTotal,omitempty"`
}

// Name returns the readable product name, preferring the description.
func (p ParsedProduct) Name() string {
	if p.Descricao != nil && *p.Descricao != "" {
		return *p.Descricao
	}
	if p.Nome != nil {
		return *p.Nome
	}

	return ""
}

// Code returns the product code or an empty string.
func (p ParsedProduct) Code() string {
	if p.Codigo == nil {
		return ""
	}

	return *p.Codigo
}

// ProductCount reports how many lines the invoice carries across all arrays.
func (inv *ParsedInvoice) ProductCount() int {
	return len(inv.Produtos) + len(inv.ProdutosFast) + len(inv.Itens)
}
