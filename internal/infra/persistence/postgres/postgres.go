package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/lifecycle"
	"stampcard/internal/errors"
	"stampcard/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the loyalty database. The schema is auto-migrated only in the
// develop environment.
func New(params Params) (*gorm.DB, error) {
	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open loyalty database")
	}

	// Ledger writes always run inside TransactionManager.Execute, so the
	// implicit per-statement transaction is redundant.
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap loyalty database handle")
	}

	watcher := &poolWatcher{
		logger:   params.Logger,
		db:       sqlDB,
		interval: 5 * time.Second,
		warnWait: 50 * time.Millisecond,
	}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "loyalty database unreachable")
			}

			if params.Config.Env.Env == constants.EnvDevelop {
				if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
					return errors.Wrap(err, "failed to migrate loyalty schema")
				}
			}

			var watchCtx context.Context
			watchCtx, stopWatch = context.WithCancel(context.Background())
			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher reports connection pool contention. Redemptions hold a row
// lock for the whole transaction, so waits here usually mean a hot customer.
type poolWatcher struct {
	logger   *slog.Logger
	db       *sql.DB
	interval time.Duration
	warnWait time.Duration
}

func (w *poolWatcher) run(ctx context.Context) {
	if w.logger == nil || w.db == nil {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.db.Stats()
			w.report(ctx, last, now)
			last = now
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, last, now sql.DBStats) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= w.warnWait {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Loyalty database pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}
