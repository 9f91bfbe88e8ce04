// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"garden/config"
	"garden/internal/domain/lifecycle"
	"garden/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the GORM handle for the service and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks. The operator CLI uses it directly.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres connection is not configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Constraint violations surface as gorm.ErrDuplicatedKey and friends.
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		// Writes only happen inside txManager.Execute scopes.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("waitDurationDelta", waitDurationDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}
