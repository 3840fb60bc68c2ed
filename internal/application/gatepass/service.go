// Package gatepass implements gate-pass intake: file upload, LLM vision
// extraction, normalisation of raw model or OCR output, and lookups of
// stored extractions.
package gatepass

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/gatepass"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

const (
	defaultImageMime   = "image/png"
	defaultUploadMime  = "application/octet-stream"
	uploadCacheControl = "max-age=3600"
	extractMaxTokens   = 1024
)

var (
	dataURLPrefix  = regexp.MustCompile(`^data:[^;]+;base64,`)
	unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// Service handles gate-pass operations. The model, OCR engine and object
// store are optional; operations needing a missing one fail with UNAVAILABLE.
type Service struct {
	repo    gatepass.Repository
	model   LanguageModel
	ocr     OCREngine
	store   ObjectStore
	metrics *telemetry.BusinessMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithLanguageModel sets the extraction model
func WithLanguageModel(m LanguageModel) Option {
	return func(s *Service) { s.model = m }
}

// WithOCR sets the OCR engine
func WithOCR(o OCREngine) Option {
	return func(s *Service) { s.ocr = o }
}

// WithObjectStore sets upload storage
func WithObjectStore(st ObjectStore) Option {
	return func(s *Service) { s.store = st }
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new gate-pass Service
func NewService(repo gatepass.Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBusinessMetrics sets the business metrics collector
func (s *Service) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.metrics = bm
}

// Extract reads a gate-pass image with the vision model and stores the
// result. Failing to store the extraction does not fail the call.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	image, err := decodeImage(req.Base64Image)
	if err != nil {
		return nil, err
	}
	if s.model == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "Extraction model is not configured")
	}
	mime := strings.TrimSpace(req.MimeType)
	if mime == "" {
		mime = defaultImageMime
	}

	ctx, span := telemetry.StartSpan(ctx, "gatepass.extract",
		telemetry.SpanAttrLLMProvider.String(s.model.Provider()),
	)
	defer span.End()

	log := logger.For(ctx, s.logger)
	text, err := s.model.Complete(ctx, CompletionRequest{
		System:      gatepass.ExtractionPrompt,
		Text:        gatepass.ExtractionInstruction,
		Image:       image,
		MimeType:    mime,
		MaxTokens:   extractMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		s.metrics.RecordExtraction(ctx, s.model.Provider(), telemetry.ExtractionStatusFailed)
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("vision model call failed: %w", err)
	}
	s.metrics.RecordExtraction(ctx, s.model.Provider(), telemetry.ExtractionStatusSuccess)

	doc := gatepass.Resolve(text)
	fileURL := req.FileURL
	if fileURL != nil && strings.TrimSpace(*fileURL) == "" {
		fileURL = nil
	}

	record := &gatepass.Extraction{
		DocumentNo:   doc.DocumentNo,
		DocumentDate: doc.Date,
		Items:        doc.Items,
		RawText:      text,
		URL:          fileURL,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		log.Error("Failed to store extraction", zap.Error(err))
	}

	span.SetAttributes(telemetry.SpanAttrItemCount.Int(len(doc.Items)))
	log.Info("Gate pass extracted",
		zap.String("provider", s.model.Provider()),
		zap.Int("items", len(doc.Items)),
		zap.Bool("has_document_no", doc.DocumentNo != nil),
	)
	return &ExtractResponse{
		DocumentNo: doc.DocumentNo,
		Date:       doc.Date,
		FileURL:    fileURL,
		Items:      doc.Items,
	}, nil
}

// NormalizeRaw asks the model to reshape raw OCR or model output into the
// extraction schema. The reply must be an object with an items array.
func (s *Service) NormalizeRaw(ctx context.Context, req NormalizeRequest) (map[string]any, error) {
	if strings.TrimSpace(req.Raw) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "raw (string) is required")
	}
	if s.model == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "Extraction model is not configured")
	}

	text, err := s.model.Complete(ctx, CompletionRequest{
		System:      gatepass.NormalizationPrompt,
		Text:        req.Raw,
		MaxTokens:   extractMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("normalization model call failed: %w", err)
	}

	parsed := gatepass.CoerceJSON(text)
	if parsed == nil {
		return nil, normalizationFailed(text)
	}
	if _, ok := parsed["items"].([]any); !ok {
		return nil, normalizationFailed(text)
	}
	return parsed, nil
}

func normalizationFailed(raw string) error {
	return shared.NewDomainError("EXTRACTION_FAILED", "Normalization failed").
		WithDetails(map[string]string{"raw": raw})
}

// List returns stored extractions whose document number starts with gp
func (s *Service) List(ctx context.Context, req ListExtractionsRequest) ([]ExtractionResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = gatepass.DefaultListLimit
	}
	limit = shared.ClampLimit(limit, gatepass.DefaultListLimit, shared.MaxListLimit)

	rows, err := s.repo.FindByDocumentPrefix(ctx, strings.TrimSpace(req.GP), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	out := make([]ExtractionResponse, len(rows))
	for i := range rows {
		out[i] = ToExtractionResponse(&rows[i])
	}
	return out, nil
}

// Upload stores a gate-pass file under a timestamped, sanitized name and
// returns where to fetch it from
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResponse, error) {
	if s.store == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "File storage is not configured")
	}
	name := strings.TrimSpace(in.Filename)
	if name == "" || in.Body == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "file field is required")
	}
	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = defaultUploadMime
	}

	key := ObjectKey(s.now(), name)
	err := s.store.PutObject(ctx, key, in.Body, in.Size, PutOptions{
		ContentType:  contentType,
		CacheControl: uploadCacheControl,
		NoOverwrite:  true,
	})
	if err != nil {
		return nil, err
	}

	url, err := s.store.ObjectURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file URL: %w", err)
	}

	logger.For(ctx, s.logger).Info("Gate pass uploaded",
		zap.String("path", key),
		zap.Int64("size", in.Size),
	)
	return &UploadResponse{Path: key, FileURL: url}, nil
}

// ObjectKey builds the storage key "<unix millis>-<sanitized name>"
func ObjectKey(at time.Time, filename string) string {
	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + unsafeFilename.ReplaceAllString(filename, "_")
}

// OCR runs plain text recognition over an image
func (s *Service) OCR(ctx context.Context, req OCRRequest) (*OCRResponse, error) {
	if strings.TrimSpace(req.Base64Image) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "No image data provided")
	}
	image, err := decodeImage(req.Base64Image)
	if err != nil {
		return nil, err
	}
	if s.ocr == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "OCR service is not configured")
	}
	text, err := s.ocr.Recognize(ctx, image, "image.png")
	if err != nil {
		return nil, fmt.Errorf("ocr failed: %w", err)
	}
	return &OCRResponse{Text: text}, nil
}

// decodeImage strips an optional data URL prefix and decodes base64
func decodeImage(b64 string) ([]byte, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "base64Image is required")
	}
	b64 = dataURLPrefix.ReplaceAllString(b64, "")

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(b64, "="))
	}
	if err != nil || len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "base64Image is not valid base64")
	}
	return data, nil
}
