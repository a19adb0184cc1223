package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is a product occurrence on an invoice after eligibility and points were applied.
type LineItem struct {
	ID          uuid.UUID `json:"id,omitempty"`
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	Eligible    bool      `json:"eligible"`
	Category    string    `json:"category,omitempty"`
	Rate        float64   `json:"rate,omitempty"`
	Points      int       `json:"points"`
}

// Order is a credited invoice together with its eligible line items.
type Order struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	OrderNumber   string     `json:"order_number,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	OrderDate     string     `json:"order_date"`
	DeclaredTotal float64    `json:"declared_total"`
	EligibleTotal float64    `json:"eligible_total"`
	TotalPoints   int        `json:"total_points"`
	Provider      string     `json:"provider"`
	ImageKey      string     `json:"image_key,omitempty"`
	Fingerprint   string     `json:"fingerprint"`
	Items         []LineItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
}
