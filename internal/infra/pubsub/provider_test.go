package pubsub

import (
	"encoding/json"
	"testing"

	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventAttributes(t *testing.T) {
	tests := []struct {
		name  string
		event *service.LoyaltyEvent
		want  map[string]string
	}{
		{
			name:  "credit without tracing",
			event: &service.LoyaltyEvent{Type: constants.EventPointsCredited, CustomerID: "c-1", OrderID: "o-1"},
			want:  map[string]string{"type": constants.EventPointsCredited, "customer_id": "c-1", "order_id": "o-1"},
		},
		{
			name: "collection by an admin",
			event: &service.LoyaltyEvent{
				Type:         constants.EventRedemptionCollected,
				CustomerID:   "c-1",
				ActorID:      "a-1",
				RequestID:    "req-1",
				RedemptionID: "r-1",
			},
			want: map[string]string{
				"type":          constants.EventRedemptionCollected,
				"customer_id":   "c-1",
				"actor_id":      "a-1",
				"request_id":    "req-1",
				"redemption_id": "r-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventAttributes(tt.event))
		})
	}
}

func TestNewEventMessage(t *testing.T) {
	event := &service.LoyaltyEvent{
		Type:       constants.EventRedemptionCreated,
		CustomerID: "c-42",
		Points:     1500,
		Balance:    0,
	}

	msg, err := newEventMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "c-42", msg.OrderingKey)
	assert.Equal(t, constants.EventRedemptionCreated, msg.Attributes["type"])

	var decoded service.LoyaltyEvent
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, 1500, decoded.Points)
	assert.Equal(t, "c-42", decoded.CustomerID)
}
