package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prize is a catalog entry that customers can redeem with points.
type Prize struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category,omitempty"`
	PointsCost    int       `json:"points_cost"`
	StockQuantity *int      `json:"stock_quantity,omitempty"` // nil means unlimited stock
	InStock       bool      `json:"in_stock"`
	DisplayOrder  int       `json:"display_order"`
	Active        bool      `json:"active"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Available reports whether the prize can currently be redeemed.
func (p *Prize) Available() bool {
	if !p.Active || !p.InStock {
		return false
	}

	return p.StockQuantity == nil || *p.StockQuantity > 0
}

// TakeOne consumes one unit of limited stock. Unlimited prizes are unchanged.
func (p *Prize) TakeOne() {
	if p.StockQuantity == nil {
		return
	}

	remaining := *p.StockQuantity - 1
	if remaining < 0 {
		remaining = 0
	}
	p.StockQuantity = &remaining
	p.InStock = remaining > 0
}
