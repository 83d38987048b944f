package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction identifies what happened to a customer.
type ActivityAction string

const (
	ActivityRegistrationScan ActivityAction = "registration_scan"
	ActivityNewRegistration  ActivityAction = "new_registration"
	ActivityStampsAwarded    ActivityAction = "stamps_awarded"
	ActivityRewardRedeemed   ActivityAction = "reward_redeemed"
	ActivityStatusChanged    ActivityAction = "status_changed"
)

// Activity is an audit note attached to a customer.
type Activity struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID uuid.UUID      `json:"customer_id"`
	LocationID uuid.UUID      `json:"location_id"`
	TenantID   uuid.UUID      `json:"tenant_id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Action     ActivityAction `json:"action"`
	Details    string         `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
