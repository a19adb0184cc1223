package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/loyalty-events-sub"
	localPushTimeout  = 10 * time.Second
)

// localHTTPPublisher imitates a Pub/Sub push subscription against a local endpoint,
// so subscribers can be developed without a GCP project.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher pushes every event to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func newPushMessage(event *service.LoyaltyEvent, now time.Time) (*PushMessage, error) {
	msg, err := newEventMessage(event)
	if err != nil {
		return nil, err
	}

	push := &PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.Data)
	push.Message.Attributes = msg.Attributes
	push.Message.OrderingKey = msg.OrderingKey
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return push, nil
}

// Publish fails on any non-2xx answer, like a rejected push delivery.
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.LoyaltyEvent) error {
	push, err := newPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.DebugContext(ctx, "Loyalty event pushed",
		slog.String("type", event.Type),
		slog.String("message_id", push.Message.MessageID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no resources.
func (p *localHTTPPublisher) Close() error {
	return nil
}
