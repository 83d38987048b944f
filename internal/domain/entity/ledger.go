package entity

import (
	"time"

	"github.com/google/uuid"
)

// StampEvent is an immutable record of stamps awarded to a customer.
type StampEvent struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	LocationID     uuid.UUID `json:"location_id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	Stamps         int       `json:"stamps_earned"`
	PurchaseAmount *float64  `json:"amount,omitempty"`
	Note           *string   `json:"notes,omitempty"`
	ActorID        uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// RewardStatus is the state of a reward event.
type RewardStatus string

// RewardStatusRedeemed is the only status produced by the redemption flow.
const RewardStatusRedeemed RewardStatus = "redeemed"

// RewardEvent is an immutable record of stamps consumed for a reward.
type RewardEvent struct {
	ID             uuid.UUID    `json:"id"`
	CustomerID     uuid.UUID    `json:"customer_id"`
	LocationID     uuid.UUID    `json:"location_id"`
	TenantID       uuid.UUID    `json:"tenant_id"`
	RewardType     string       `json:"reward_type"`
	RewardValue    float64      `json:"reward_value"`
	StampsConsumed int          `json:"stamps_redeemed"`
	ActorID        uuid.UUID    `json:"redeemed_by"`
	Status         RewardStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CardProgress describes a balance relative to the reward threshold.
type CardProgress struct {
	Balance             int
	AvailableRewards    int
	StampsForNextReward int
}

// NewCardProgress derives reward progress from a balance and the stamps required per reward.
func NewCardProgress(balance, stampsForReward int) CardProgress {
	if stampsForReward <= 0 {
		stampsForReward = 1
	}
	if balance < 0 {
		balance = 0
	}

	return CardProgress{
		Balance:             balance,
		AvailableRewards:    balance / stampsForReward,
		StampsForNextReward: stampsForReward - balance%stampsForReward,
	}
}

// LedgerResult is returned after stamps are awarded.
type LedgerResult struct {
	Event    *StampEvent
	Progress CardProgress
}

// RedemptionResult is returned after a reward is redeemed.
type RedemptionResult struct {
	Event    *RewardEvent
	Progress CardProgress
}

// CustomerHistory holds the most recent ledger entries of a customer.
type CustomerHistory struct {
	Customer     *Customer      `json:"customer"`
	StampEvents  []*StampEvent  `json:"stamp_events"`
	RewardEvents []*RewardEvent `json:"reward_events"`
	TotalStamps  int            `json:"total_stamps"`
	TotalRewards int            `json:"total_rewards"`
	// AvailableRewards and StampsForNextReward use the location's current threshold.
	AvailableRewards    int `json:"available_rewards"`
	StampsForNextReward int `json:"stamps_for_next_reward"`
}
