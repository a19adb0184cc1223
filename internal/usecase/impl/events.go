package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/service"
)

// publishEvent sends a loyalty event after commit. Failures are logged and dropped.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LoyaltyEvent) {
	if publisher == nil {
		return
	}
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if actorID, ok := deliverycontext.ActorFromContext(ctx); ok {
		event.ActorID = actorID.String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish loyalty event",
			slog.String("type", event.Type),
			slog.String("customerID", event.CustomerID),
			slog.Any("error", err),
		)
	}
}
