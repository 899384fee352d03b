package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/runwayhq/runway-backend/internal/logger"
)

// slowQueryThreshold: any database operation above this is flagged as a slow
// query warning.
const slowQueryThreshold = 1000 * time.Millisecond

type gormLogger struct {
	log *logger.Logger
}

// NewGormLogger adapts our zap wrapper to gorm's logger interface so query
// timing flows through the same redacting sink as everything else.
func NewGormLogger(log *logger.Logger) gormlogger.Interface {
	return &gormLogger{log: log.With("component", "gorm")}
}

func (g *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return g
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	g.log.Info(msg, "args", args)
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	g.log.Warn(msg, "args", args)
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	g.log.Error(msg, "args", args)
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error("Query failed", "error", err, "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		g.log.Warn("Slow query", "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	}
}
