package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'pedidos_fast' table. Fingerprint is unique per logical invoice.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    uuid.UUID `gorm:"column:cliente_id;type:uuid;not null;index"`
	OrderNumber   string    `gorm:"column:numero_pedido;type:varchar(60)"`
	CustomerName  string    `gorm:"column:nome_cliente_nota;type:varchar(200)"`
	OrderDate     string    `gorm:"column:data_pedido;type:varchar(10);not null"`
	DeclaredTotal float64   `gorm:"column:valor_total;type:numeric(12,2);not null"`
	EligibleTotal float64   `gorm:"column:valor_elegivel;type:numeric(12,2);not null"`
	TotalPoints   int       `gorm:"column:pontos_gerados;not null"`
	Provider      string    `gorm:"column:provedor;type:varchar(30);not null"`
	ImageKey      string    `gorm:"column:imagem_chave;type:text"`
	Fingerprint   string    `gorm:"column:impressao_digital;type:char(64);uniqueIndex;not null"`
	CreatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos_fast"
}

// OrderItemModel mirrors the 'itens_pedido_fast' table.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"column:pedido_id;type:uuid;not null;index"`
	Code        string    `gorm:"column:codigo;type:varchar(30)"`
	Description string    `gorm:"column:descricao;type:text;not null"`
	Quantity    float64   `gorm:"column:quantidade;type:numeric(12,3);not null"`
	UnitPrice   float64   `gorm:"column:valor_unitario;type:numeric(12,2);not null"`
	Total       float64   `gorm:"column:valor_total;type:numeric(12,2);not null"`
	Eligible    bool      `gorm:"column:elegivel;not null"`
	Category    string    `gorm:"column:categoria;type:varchar(60)"`
	Rate        float64   `gorm:"column:taxa;type:numeric(4,1)"`
	Points      int       `gorm:"column:pontos;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "itens_pedido_fast"
}
