package service

import (
	"context"
	"time"
)

// LoyaltyEventType names the published domain events.
type LoyaltyEventType string

const (
	EventCustomerRegistered LoyaltyEventType = "customer_registered"
	EventStampsAwarded      LoyaltyEventType = "stamps_awarded"
	EventRewardRedeemed     LoyaltyEventType = "reward_redeemed"
)

// LoyaltyEvent is published after a ledger or directory write commits.
type LoyaltyEvent struct {
	EventID    string           `json:"event_id"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       LoyaltyEventType `json:"type"`
	TenantID   string           `json:"tenant_id"`
	LocationID string           `json:"location_id"`
	CustomerID string           `json:"customer_id"`
	ActorID    string           `json:"actor_id"`
	Stamps     int              `json:"stamps,omitempty"`
	Balance    int              `json:"balance"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoyaltyEvent publishes a loyalty event for downstream consumers
	PublishLoyaltyEvent(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
