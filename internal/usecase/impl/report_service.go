package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"
	"stampcard/internal/usecase"
	"stampcard/internal/util"

	"go.uber.org/fx"
)

const day = 24 * time.Hour

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo  repository.ReportRepository
	permissions usecase.PermissionUsecase
	cache       service.ReportCache
	report      *config.ReportConfig
	logger      *slog.Logger
	now         func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo  repository.ReportRepository
	Permissions usecase.PermissionUsecase
	Cache       service.ReportCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReportService creates the aggregate reporting usecase.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	reportCfg := config.DefaultReportConfig()
	if params.Config != nil && params.Config.Report != nil {
		reportCfg = params.Config.Report
	}

	return &reportService{
		reportRepo:  params.ReportRepo,
		permissions: params.Permissions,
		cache:       params.Cache,
		report:      reportCfg,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Summary counts activity in the window and in the preceding window of the same length.
func (s *reportService) Summary(ctx context.Context, input *usecase.ReportInput) (*entity.ReportSummary, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	scope, err := s.authorize(ctx, input)
	if err != nil {
		return nil, err
	}

	from, to, err := s.window(input)
	if err != nil {
		return nil, err
	}

	key := cacheKey(scope, from, to)
	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		logger.Warn("Report cache read failed", slog.Any("error", err))
	} else if found {
		return cached, nil
	}

	length := to.Sub(from)
	current, err := s.reportRepo.CountWindow(ctx, scope, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count current window")
	}

	previous, err := s.reportRepo.CountWindow(ctx, scope, from.Add(-length), from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count previous window")
	}

	buckets, err := s.reportRepo.DailyBuckets(ctx, scope, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily buckets")
	}

	summary := &entity.ReportSummary{
		Scope:                    scope,
		From:                     from,
		To:                       to,
		Current:                  *current,
		Previous:                 *previous,
		Daily:                    fillDailyBuckets(buckets, from, to),
		CustomerGrowthRate:       util.GrowthRate(current.NewCustomers, previous.NewCustomers),
		RedemptionRate:           util.Percentage(current.StampsRedeemed, current.StampsAwarded),
		AverageStampsPerCustomer: util.Average(current.StampsAwarded, current.StampedCustomers),
		GeneratedAt:              s.now().UTC(),
	}

	if err := s.cache.Set(ctx, key, summary, s.report.CacheTTL); err != nil {
		logger.Warn("Report cache write failed", slog.Any("error", err))
	}

	return summary, nil
}

// authorize derives the scope: a location needs view access there, a whole tenant needs a tenant admin.
func (s *reportService) authorize(ctx context.Context, input *usecase.ReportInput) (entity.ReportScope, error) {
	if input.LocationID != nil {
		perm, err := s.permissions.Require(ctx, input.ActorID, *input.LocationID, entity.CapabilityViewCustomerData)
		if err != nil {
			return entity.ReportScope{}, err
		}
		if input.TenantID != nil && *input.TenantID != perm.TenantID {
			return entity.ReportScope{}, domainerrors.ErrCrossTenantViolation
		}

		locationID := *input.LocationID

		return entity.ReportScope{TenantID: perm.TenantID, LocationID: &locationID}, nil
	}

	if input.TenantID == nil {
		return entity.ReportScope{}, domainerrors.NewValidationError("location_id or tenant_id is required")
	}

	perm, err := s.permissions.ResolveTenant(ctx, input.ActorID, *input.TenantID)
	if err != nil {
		return entity.ReportScope{}, err
	}
	if !perm.IsTenantAdmin() {
		return entity.ReportScope{}, domainerrors.ErrForbidden
	}

	return entity.ReportScope{TenantID: *input.TenantID}, nil
}

func (s *reportService) window(input *usecase.ReportInput) (time.Time, time.Time, error) {
	// The default upper bound is the end of the current minute.
	to := s.now().UTC().Truncate(time.Minute).Add(time.Minute)
	if input.To != nil {
		to = input.To.UTC()
	}

	from := to.Add(-s.report.DefaultWindow)
	if input.From != nil {
		from = input.From.UTC()
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, domainerrors.NewValidationError("from must be before to")
	}
	if to.Sub(from) > s.report.MaxWindow {
		return time.Time{}, time.Time{}, domainerrors.NewValidationError(
			fmt.Sprintf("report window must not exceed %d days", int(s.report.MaxWindow/day)))
	}

	return from, to, nil
}

func cacheKey(scope entity.ReportScope, from, to time.Time) string {
	location := "all"
	if scope.LocationID != nil {
		location = scope.LocationID.String()
	}

	return fmt.Sprintf("%s:%s:%d:%d", scope.TenantID, location, from.Unix(), to.Unix())
}

// fillDailyBuckets returns one bucket per UTC day touching [from, to), zero where no data exists.
func fillDailyBuckets(buckets []entity.DailyBucket, from, to time.Time) []entity.DailyBucket {
	byDay := make(map[time.Time]entity.DailyBucket, len(buckets))
	for _, bucket := range buckets {
		byDay[bucket.Day.UTC().Truncate(day)] = bucket
	}

	filled := make([]entity.DailyBucket, 0, int(to.Sub(from)/day)+1)
	for d := from.UTC().Truncate(day); d.Before(to); d = d.Add(day) {
		bucket, ok := byDay[d]
		if !ok {
			bucket = entity.DailyBucket{}
		}
		bucket.Day = d
		filled = append(filled, bucket)
	}

	return filled
}
