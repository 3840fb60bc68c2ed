package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// DBTracingConfig configures query spans
type DBTracingConfig struct {
	// DBName is reported as db.name
	DBName string
	// WithVariables keeps bound values in db.statement; off in production
	WithVariables bool
	// SlowThreshold flags queries at or above it with db.slow_query
	SlowThreshold time.Duration
}

// DBTracing is a gorm plugin that adds otelgorm query spans and marks slow
// and failed statements on them
type DBTracing struct {
	cfg DBTracingConfig
}

var _ gorm.Plugin = (*DBTracing)(nil)

// NewDBTracing creates the plugin; register it with db.Use
func NewDBTracing(cfg DBTracingConfig) *DBTracing {
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = 200 * time.Millisecond
	}
	return &DBTracing{cfg: cfg}
}

// Name implements gorm.Plugin
func (p *DBTracing) Name() string { return "zumech:db_tracing" }

// Initialize implements gorm.Plugin
func (p *DBTracing) Initialize(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(p.cfg.DBName)}
	if !p.cfg.WithVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("zumech:start_create", markStart),
		cb.Query().Before("gorm:query").Register("zumech:start_query", markStart),
		cb.Update().Before("gorm:update").Register("zumech:start_update", markStart),
		cb.Delete().Before("gorm:delete").Register("zumech:start_delete", markStart),
		cb.Row().Before("gorm:row").Register("zumech:start_row", markStart),
		cb.Raw().Before("gorm:raw").Register("zumech:start_raw", markStart),
		cb.Create().After("gorm:create").Register("zumech:finish_create", p.finish),
		cb.Query().After("gorm:query").Register("zumech:finish_query", p.finish),
		cb.Update().After("gorm:update").Register("zumech:finish_update", p.finish),
		cb.Delete().After("gorm:delete").Register("zumech:finish_delete", p.finish),
		cb.Row().After("gorm:row").Register("zumech:finish_row", p.finish),
		cb.Raw().After("gorm:raw").Register("zumech:finish_raw", p.finish),
	)
}

type queryStartKey struct{}

func markStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func (p *DBTracing) finish(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed >= p.cfg.SlowThreshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
