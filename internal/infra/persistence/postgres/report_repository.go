package postgres

import (
	"context"
	"sort"
	"time"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reportRepository implements repository.ReportRepository against read replicas.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

type eventAggregate struct {
	Events    int64
	Total     int64
	Customers int64
}

type dailyAggregate struct {
	Day   time.Time
	Total int64
}

// reader routes the query to a replica when replicas are configured.
func (repo *reportRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// scoped restricts a query on an event table to the report scope and window.
func scoped(db *gorm.DB, scope entity.ReportScope, from, to time.Time) *gorm.DB {
	db = db.Where("tenant_id = ? AND created_at >= ? AND created_at < ?", scope.TenantID, from, to)
	if scope.LocationID != nil {
		db = db.Where("location_id = ?", *scope.LocationID)
	}

	return db
}

// CountWindow returns the raw counts for the scope within [from, to).
func (repo *reportRepository) CountWindow(ctx context.Context, scope entity.ReportScope, from, to time.Time) (*entity.ReportCounts, error) {
	counts := &entity.ReportCounts{}

	customers := repo.reader(ctx).
		Model(&model.CustomerModel{}).
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", scope.TenantID, from, to)
	if scope.LocationID != nil {
		customers = customers.Where("home_location_id = ?", *scope.LocationID)
	}
	if err := customers.Count(&counts.NewCustomers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new customers")
	}

	var stamps eventAggregate
	if err := scoped(repo.reader(ctx).Model(&model.StampEventModel{}), scope, from, to).
		Select("COUNT(*) AS events, COALESCE(SUM(stamps), 0) AS total, COUNT(DISTINCT customer_id) AS customers").
		Scan(&stamps).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stamp events")
	}
	counts.StampEvents = stamps.Events
	counts.StampsAwarded = stamps.Total
	counts.StampedCustomers = stamps.Customers

	var rewards eventAggregate
	if err := scoped(repo.reader(ctx).Model(&model.RewardEventModel{}), scope, from, to).
		Select("COUNT(*) AS events, COALESCE(SUM(stamps_consumed), 0) AS total").
		Scan(&rewards).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reward events")
	}
	counts.RewardsRedeemed = rewards.Events
	counts.StampsRedeemed = rewards.Total

	return counts, nil
}

// DailyBuckets returns per-day totals for days with activity, oldest first.
func (repo *reportRepository) DailyBuckets(ctx context.Context, scope entity.ReportScope, from, to time.Time) ([]entity.DailyBucket, error) {
	var stampDays []dailyAggregate
	if err := scoped(repo.reader(ctx).Model(&model.StampEventModel{}), scope, from, to).
		Select("date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COALESCE(SUM(stamps), 0) AS total").
		Group("day").
		Scan(&stampDays).Error; err != nil {
		return nil, errors.Wrap(err, "failed to bucket stamp events")
	}

	var rewardDays []dailyAggregate
	if err := scoped(repo.reader(ctx).Model(&model.RewardEventModel{}), scope, from, to).
		Select("date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS total").
		Group("day").
		Scan(&rewardDays).Error; err != nil {
		return nil, errors.Wrap(err, "failed to bucket reward events")
	}

	byDay := make(map[time.Time]*entity.DailyBucket, len(stampDays))
	bucket := func(day time.Time) *entity.DailyBucket {
		day = day.UTC().Truncate(24 * time.Hour)
		b, ok := byDay[day]
		if !ok {
			b = &entity.DailyBucket{Day: day}
			byDay[day] = b
		}

		return b
	}
	for _, d := range stampDays {
		bucket(d.Day).StampsAwarded += d.Total
	}
	for _, d := range rewardDays {
		bucket(d.Day).RewardsRedeemed += d.Total
	}

	buckets := make([]entity.DailyBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Day.Before(buckets[j].Day)
	})

	return buckets, nil
}
