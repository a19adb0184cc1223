package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoryType tells whether a history entry added or removed points.
type HistoryType string

const (
	HistoryTypeCredit HistoryType = "credito"
	HistoryTypeDebit  HistoryType = "debito"
)

// PointsHistoryEntry is an append-only record of a balance change.
type PointsHistoryEntry struct {
	ID           uuid.UUID   `json:"id"`
	CustomerID   uuid.UUID   `json:"customer_id"`
	Type         HistoryType `json:"type"`
	Points       int         `json:"points"`
	BalanceAfter int         `json:"balance_after"`
	Description  string      `json:"description"`
	OrderID      *uuid.UUID  `json:"order_id,omitempty"`
	RedemptionID *uuid.UUID  `json:"redemption_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
