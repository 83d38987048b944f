package usecase

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportInput selects a report scope and window. A nil window bound falls back to the default window.
type ReportInput struct {
	ActorID    uuid.UUID
	TenantID   *uuid.UUID
	LocationID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// ReportUsecase builds aggregate dashboards.
type ReportUsecase interface {
	Summary(ctx context.Context, input *ReportInput) (*entity.ReportSummary, error)
}
