package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'clientes_fast' table. The balance columns keep their Portuguese names.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CustomerModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"column:nome;type:varchar(150);not null"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone             string    `gorm:"column:telefone;type:varchar(30)"`
	CPF               string    `gorm:"column:cpf;type:varchar(14)"`
	PasswordHash      string    `gorm:"column:senha_hash;type:varchar(100);not null"`
	Role              string    `gorm:"type:varchar(20);not null;default:customer"`
	SaldoPontos       int       `gorm:"column:saldo_pontos;not null;default:0;check:saldo_pontos >= 0"`
	TotalPontosGanhos int       `gorm:"column:total_pontos_ganhos;not null;default:0"`
	TotalPontosGastos int       `gorm:"column:total_pontos_gastos;not null;default:0"`
	Version           int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "clientes_fast"
}
