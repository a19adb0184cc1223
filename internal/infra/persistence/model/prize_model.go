package model

import (
	"time"

	"github.com/google/uuid"
)

// PrizeModel mirrors the 'premios_catalogo' table. A NULL stock means unlimited.
type PrizeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"column:nome;type:varchar(150);not null"`
	Description   string    `gorm:"column:descricao;type:text"`
	ImageURL      string    `gorm:"column:imagem_url;type:text"`
	Category      string    `gorm:"column:categoria;type:varchar(60);index"`
	PointsCost    int       `gorm:"column:pontos_necessarios;not null;check:pontos_necessarios > 0"`
	StockQuantity *int      `gorm:"column:quantidade_estoque;check:quantidade_estoque >= 0"`
	InStock       bool      `gorm:"column:em_estoque;not null;default:true"`
	DisplayOrder  int       `gorm:"column:ordem_exibicao;not null;default:0"`
	Active        bool      `gorm:"column:ativo;not null;default:true"`
	Featured      bool      `gorm:"column:destaque;not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrizeModel) TableName() string {
	return "premios_catalogo"
}
