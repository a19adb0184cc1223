package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Loyalty event types published after a committed balance change.
const (
	EventPointsCredited      = "points.credited"
	EventRedemptionCreated   = "redemption.created"
	EventRedemptionCollected = "redemption.collected"
)
