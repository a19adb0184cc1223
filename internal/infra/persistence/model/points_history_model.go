package model

import (
	"time"

	"github.com/google/uuid"
)

// PointsHistoryModel mirrors the append-only 'historico_pontos' table.
type PointsHistoryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   uuid.UUID  `gorm:"column:cliente_id;type:uuid;not null;index"`
	Type         string     `gorm:"column:tipo;type:varchar(10);not null"`
	Points       int        `gorm:"column:pontos;not null"`
	BalanceAfter int        `gorm:"column:saldo_apos;not null"`
	Description  string     `gorm:"column:descricao;type:text"`
	OrderID      *uuid.UUID `gorm:"column:pedido_id;type:uuid"`
	RedemptionID *uuid.UUID `gorm:"column:resgate_id;type:uuid"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointsHistoryModel) TableName() string {
	return "historico_pontos"
}
