package vision

// invoicePrompt is sent with every image to the hosted models.
const invoicePrompt = `Você está analisando a foto de uma nota fiscal ou pedido da Fast Sistemas Construtivos.
Extraia os dados da compra e responda APENAS com um objeto JSON, sem texto adicional, no formato:

{
  "cliente": "nome do cliente como aparece na nota",
  "numeroPedido": "número do pedido ou da nota",
  "data": "DD/MM/AAAA",
  "valorTotal": 0.00,
  "produtos": [
    {
      "codigo": "código do produto, ex.: DW00057",
      "descricao": "descrição completa do produto",
      "quantidade": 0,
      "valorUnitario": 0.00,
      "valorTotal": 0.00
    }
  ]
}

Regras:
- Liste todos os produtos da nota, um item por linha impressa.
- Copie o código do produto exatamente como impresso. Se não houver código, omita o campo.
- Valores numéricos devem usar ponto como separador decimal e não podem conter "R$".
- Se um campo não estiver legível, omita o campo em vez de inventar um valor.
- Se a imagem não for uma nota fiscal, responda {"produtos": []}.`
