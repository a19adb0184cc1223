package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"clubefast/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes loyalty events ordered per customer.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to an existing topic. Credentials come from the environment.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "topic %s not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Loyalty events go to Google Pub/Sub", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// newEventMessage builds the wire message. The ordering key keeps a customer's
// credits and debits in commit order for subscribers.
func newEventMessage(event *service.LoyaltyEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.CustomerID,
	}, nil
}

// Publish blocks until the server acknowledges the event.
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.LoyaltyEvent) error {
	msg, err := newEventMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Loyalty event published",
		slog.String("type", event.Type),
		slog.String("customer_id", event.CustomerID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
