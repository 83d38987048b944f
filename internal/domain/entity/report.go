package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportScope selects the rows aggregated by a report.
type ReportScope struct {
	TenantID   uuid.UUID  `json:"tenant_id"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

// ReportCounts are raw counts for a single window.
type ReportCounts struct {
	NewCustomers     int64 `json:"new_customers"`
	StampEvents      int64 `json:"stamp_events"`
	StampsAwarded    int64 `json:"stamps_awarded"`
	StampedCustomers int64 `json:"stamped_customers"`
	RewardsRedeemed  int64 `json:"rewards_redeemed"`
	StampsRedeemed   int64 `json:"stamps_redeemed"`
}

// DailyBucket is a per-day activity count.
type DailyBucket struct {
	Day             time.Time `json:"day"`
	StampsAwarded   int64     `json:"stamps_awarded"`
	RewardsRedeemed int64     `json:"rewards_redeemed"`
}

// ReportSummary is an aggregate dashboard over a window and the preceding window of equal length.
type ReportSummary struct {
	Scope    ReportScope   `json:"scope"`
	From     time.Time     `json:"from"`
	To       time.Time     `json:"to"`
	Current  ReportCounts  `json:"current"`
	Previous ReportCounts  `json:"previous"`
	Daily    []DailyBucket `json:"daily"`

	CustomerGrowthRate       float64   `json:"customer_growth_rate"`
	RedemptionRate           float64   `json:"redemption_rate"`
	AverageStampsPerCustomer float64   `json:"average_stamps_per_customer"`
	GeneratedAt              time.Time `json:"generated_at"`
}
