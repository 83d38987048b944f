package service

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
)

// ReportCache stores computed report summaries.
type ReportCache interface {
	// Get returns the cached summary and whether it was found.
	Get(ctx context.Context, key string) (*entity.ReportSummary, bool, error)

	// Set stores the summary for ttl.
	Set(ctx context.Context, key string, summary *entity.ReportSummary, ttl time.Duration) error
}
