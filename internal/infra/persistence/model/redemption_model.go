package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionModel mirrors the 'resgates' table.
type RedemptionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID  uuid.UUID  `gorm:"column:cliente_id;type:uuid;not null;index"`
	PrizeID     uuid.UUID  `gorm:"column:premio_id;type:uuid;not null;index"`
	PrizeName   string     `gorm:"column:premio_nome;type:varchar(150);not null"`
	PointsCost  int        `gorm:"column:pontos_utilizados;not null"`
	Code        string     `gorm:"column:codigo_resgate;type:varchar(20);uniqueIndex;not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:confirmado"`
	Collected   bool       `gorm:"column:coletado;not null;default:false;index"`
	CollectedBy string     `gorm:"column:coletado_por;type:varchar(150)"`
	CollectedAt *time.Time `gorm:"column:data_coleta"`
	CreatedAt   time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "resgates"
}
