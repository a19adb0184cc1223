package entity

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionStatus is the fulfillment status stored on a redemption.
type RedemptionStatus string

const (
	// RedemptionStatusConfirmed is set when points have been debited and the prize reserved.
	RedemptionStatusConfirmed RedemptionStatus = "confirmado"
)

// Redemption links a customer, a prize and the points paid for it.
// Collection is tracked separately: Collected flips once, set by staff at pickup.
type Redemption struct {
	ID          uuid.UUID        `json:"id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	PrizeID     uuid.UUID        `json:"prize_id"`
	PrizeName   string           `json:"prize_name"`
	PointsCost  int              `json:"points_cost"`
	Code        string           `json:"code"`
	Status      RedemptionStatus `json:"status"`
	Collected   bool             `json:"collected"`
	CollectedBy string           `json:"collected_by,omitempty"`
	CollectedAt *time.Time       `json:"collected_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`

	// CustomerName and CustomerEmail are filled on admin listings.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// MarkCollected records the pickup. It reports false when the prize was already collected.
func (r *Redemption) MarkCollected(collectedBy string, at time.Time) bool {
	if r.Collected {
		return false
	}

	r.Collected = true
	r.CollectedBy = collectedBy
	r.CollectedAt = &at

	return true
}
