package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics records document activity: numbers allocated, allocation
// collisions, rendered PDFs and gate-pass extractions.
// A nil *BusinessMetrics is valid and records nothing.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	numbersAllocated  *Counter
	allocationRetries *Counter
	documentsRendered *Counter
	renderDuration    *Histogram
	extractionsTotal  *Counter
	messagesLogged    *Counter
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:  cfg.Meter,
		logger: logger,
	}

	var err error
	bm.numbersAllocated, err = NewCounter(
		cfg.Meter,
		"zumech_numbers_allocated_total",
		"Document numbers allocated",
		"{numbers}",
	)
	if err != nil {
		return nil, err
	}

	bm.allocationRetries, err = NewCounter(
		cfg.Meter,
		"zumech_allocation_retries_total",
		"Document number allocations retried after a collision",
		"{retries}",
	)
	if err != nil {
		return nil, err
	}

	bm.documentsRendered, err = NewCounter(
		cfg.Meter,
		"zumech_documents_rendered_total",
		"PDF documents rendered",
		"{documents}",
	)
	if err != nil {
		return nil, err
	}

	bm.renderDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "zumech_document_render_duration_seconds",
		Description: "Time spent rendering a PDF document",
		Unit:        "s",
		Boundaries:  RenderDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.extractionsTotal, err = NewCounter(
		cfg.Meter,
		"zumech_extractions_total",
		"Gate-pass extractions by outcome",
		"{extractions}",
	)
	if err != nil {
		return nil, err
	}

	bm.messagesLogged, err = NewCounter(
		cfg.Meter,
		"zumech_whatsapp_messages_total",
		"WhatsApp messages logged through the webhook",
		"{messages}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// DocumentKind labels metrics by document type.
type DocumentKind string

const (
	DocumentKindChallan     DocumentKind = "challan"
	DocumentKindInvoice     DocumentKind = "invoice"
	DocumentKindQuotation   DocumentKind = "quotation"
	DocumentKindBillSummary DocumentKind = "bill_summary"
)

// ExtractionStatus labels extraction outcomes.
type ExtractionStatus string

const (
	ExtractionStatusSuccess ExtractionStatus = "success"
	ExtractionStatusFailed  ExtractionStatus = "failed"
)

// RecordNumberAllocated counts a successfully allocated document number.
// attempts is how many candidates were tried; every attempt past the first
// is also counted as a retry.
func (bm *BusinessMetrics) RecordNumberAllocated(ctx context.Context, kind DocumentKind, attempts int) {
	if bm == nil {
		return
	}
	bm.numbersAllocated.Inc(ctx, AttrDocumentKind.String(string(kind)))
	if attempts > 1 {
		bm.allocationRetries.Add(ctx, int64(attempts-1), AttrDocumentKind.String(string(kind)))
	}
}

// RecordDocumentRendered counts a rendered PDF and its render time.
func (bm *BusinessMetrics) RecordDocumentRendered(ctx context.Context, kind DocumentKind, d time.Duration) {
	if bm == nil {
		return
	}
	bm.documentsRendered.Inc(ctx, AttrDocumentKind.String(string(kind)))
	bm.renderDuration.RecordDuration(ctx, d, AttrDocumentKind.String(string(kind)))
}

// RecordExtraction counts a gate-pass extraction attempt.
func (bm *BusinessMetrics) RecordExtraction(ctx context.Context, provider string, status ExtractionStatus) {
	if bm == nil {
		return
	}
	bm.extractionsTotal.Inc(ctx,
		AttrLLMProvider.String(provider),
		AttrExtractionStatus.String(string(status)),
	)
}

// RecordMessageLogged counts a message accepted by the webhook.
func (bm *BusinessMetrics) RecordMessageLogged(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.messagesLogged.Inc(ctx)
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// Business attribute keys
var (
	AttrDocumentKind     = attribute.Key("document_kind")
	AttrLLMProvider      = attribute.Key("llm_provider")
	AttrExtractionStatus = attribute.Key("extraction_status")
)
