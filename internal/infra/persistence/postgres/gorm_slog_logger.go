package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"garden/config"
	deliverycontext "garden/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog, preferring the request-scoped
// logger so statements carry the request id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	log := l.log(ctx)
	if log == nil {
		return
	}

	log.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	log := l.log(ctx)
	if log == nil {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "GORM query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "GORM slow query", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "GORM query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	log.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
