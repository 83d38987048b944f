package repository

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
)

// ReportRepository runs read-only aggregate queries over [from, to).
type ReportRepository interface {
	// CountWindow returns the raw counts for the scope within the window.
	CountWindow(ctx context.Context, scope entity.ReportScope, from, to time.Time) (*entity.ReportCounts, error)

	// DailyBuckets returns per-day stamps and rewards within the window, oldest first.
	DailyBuckets(ctx context.Context, scope entity.ReportScope, from, to time.Time) ([]entity.DailyBucket, error)
}
