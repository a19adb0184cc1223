package impl

import (
	"context"
	"testing"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/service"
	mockSvc "clubefast/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublishEvent(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name       string
		ctx        context.Context
		publishErr error
		wantActor  string
		wantReqID  string
	}{
		{
			name:      "request scoped values are attached",
			ctx:       deliverycontext.WithActor(deliverycontext.WithRequestID(context.Background(), "req-7"), actorID),
			wantActor: actorID.String(),
			wantReqID: "req-7",
		},
		{
			name: "background context",
			ctx:  context.Background(),
		},
		{
			name:       "publish failure is swallowed",
			ctx:        context.Background(),
			publishErr: errors.New("broker down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := mockSvc.NewMockEventPublisher(t)
			var got *service.LoyaltyEvent
			publisher.EXPECT().Publish(mock.Anything, mock.Anything).
				Run(func(_ context.Context, event *service.LoyaltyEvent) { got = event }).
				Return(tt.publishErr).Once()

			publishEvent(tt.ctx, publisher, newDiscardLogger(), &service.LoyaltyEvent{
				Type:       constants.EventPointsCredited,
				CustomerID: "c-1",
				Points:     10,
			})

			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantActor, got.ActorID)
				assert.Equal(t, tt.wantReqID, got.RequestID)
				assert.False(t, got.OccurredAt.IsZero())
			}
		})
	}
}

func TestPublishEvent_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		publishEvent(context.Background(), nil, newDiscardLogger(), &service.LoyaltyEvent{})
	})
}
