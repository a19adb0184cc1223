package service

import (
	"context"
	"time"
)

// LoyaltyEvent announces a committed balance or redemption change.
type LoyaltyEvent struct {
	RequestID    string    `json:"request_id,omitempty"`
	ActorID      string    `json:"actor_id,omitempty"`
	Type         string    `json:"type"`
	CustomerID   string    `json:"customer_id"`
	Points       int       `json:"points"`
	Balance      int       `json:"balance"`
	OrderID      string    `json:"order_id,omitempty"`
	RedemptionID string    `json:"redemption_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
