// Package printing renders challans, bills and quotations to PDF and
// bundles bills into summaries and ZIP exports.
package printing

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/printing"
	"github.com/zumech/backend/internal/domain/quotation"
	"github.com/zumech/backend/internal/domain/shared"
	infra "github.com/zumech/backend/internal/infrastructure/printing"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

const defaultMaxConcurrent = 4

// PrintService renders documents to PDF
type PrintService struct {
	challans      challan.Repository
	invoices      billing.Repository
	quotations    quotation.Repository
	templates     *infra.TemplateEngine
	renderer      infra.PDFRenderer
	archive       DocumentArchive
	maxConcurrent int
	metrics       *telemetry.BusinessMetrics
	logger        *zap.Logger
	now           func() time.Time
}

// Option configures a PrintService
type Option func(*PrintService)

// WithArchive stores every rendered PDF in archive
func WithArchive(a DocumentArchive) Option {
	return func(s *PrintService) { s.archive = a }
}

// WithMaxConcurrent bounds parallel renders of an export
func WithMaxConcurrent(n int) Option {
	return func(s *PrintService) {
		if n > 0 {
			s.maxConcurrent = n
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *PrintService) { s.logger = l }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *PrintService) { s.now = now }
}

// NewPrintService creates a new PrintService
func NewPrintService(
	challans challan.Repository,
	invoices billing.Repository,
	quotations quotation.Repository,
	templates *infra.TemplateEngine,
	renderer infra.PDFRenderer,
	opts ...Option,
) *PrintService {
	s := &PrintService{
		challans:      challans,
		invoices:      invoices,
		quotations:    quotations,
		templates:     templates,
		renderer:      renderer,
		maxConcurrent: defaultMaxConcurrent,
		logger:        zap.NewNop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBusinessMetrics sets the business metrics collector
func (s *PrintService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.metrics = bm
}

// ChallanPDF renders a delivery challan
func (s *PrintService) ChallanPDF(ctx context.Context, challanNo int64) (*Document, error) {
	c, err := s.challans.FindByNumber(ctx, challanNo)
	if err != nil {
		return nil, err
	}
	data, err := s.render(ctx, printing.DocKindChallan, c.Number(), infra.NewChallanPage(c))
	if err != nil {
		return nil, err
	}
	return pdfDocument(printing.DocKindChallan.FileName(c.Number()), data), nil
}

// InvoicePDF renders a bill with the P.O. and gate pass of its challan
func (s *PrintService) InvoicePDF(ctx context.Context, billNo string) (*Document, error) {
	billNo = strings.TrimSpace(billNo)
	if billNo == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "billno is required")
	}
	inv, err := s.invoices.FindByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	data, err := s.renderInvoice(ctx, inv)
	if err != nil {
		return nil, err
	}
	return pdfDocument(printing.DocKindInvoice.FileName(inv.BillNo), data), nil
}

// QuotationPDF renders a quotation
func (s *PrintService) QuotationPDF(ctx context.Context, id int64) (*Document, error) {
	q, err := s.quotations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.render(ctx, printing.DocKindQuotation, q.QuotationNo, infra.NewQuotationPage(q))
	if err != nil {
		return nil, err
	}
	return pdfDocument(printing.DocKindQuotation.FileName(q.QuotationNo), data), nil
}

// BillSummaryPDF renders one page listing the given bills with a grand total
func (s *PrintService) BillSummaryPDF(ctx context.Context, billNos []string) (*Document, error) {
	invoices, err := s.loadInvoices(ctx, billNos)
	if err != nil {
		return nil, err
	}

	gatePasses := make(map[int64]string)
	for _, inv := range invoices {
		if _, seen := gatePasses[inv.ChallanNo]; seen {
			continue
		}
		c, err := s.challanFor(ctx, inv.ChallanNo)
		if err != nil {
			return nil, err
		}
		gatePasses[inv.ChallanNo] = ""
		if c != nil {
			gatePasses[inv.ChallanNo] = c.GP
		}
	}

	page := infra.NewSummaryPage(invoices, gatePasses, s.now())
	name := s.rangeName("", page.Rows[0].BillNo, page.Rows[len(page.Rows)-1].BillNo)
	data, err := s.render(ctx, printing.DocKindBillSummary, "", page)
	if err != nil {
		return nil, err
	}
	return pdfDocument(printing.DocKindBillSummary.FileName(name), data), nil
}

// ExportInvoices renders every listed bill in parallel and zips them.
// Entries are named by bill label and ordered by bill number suffix.
func (s *PrintService) ExportInvoices(ctx context.Context, billNos []string) (*Document, error) {
	invoices, err := s.loadInvoices(ctx, billNos)
	if err != nil {
		return nil, err
	}
	billing.SortBySuffix(invoices)

	pdfs := make([][]byte, len(invoices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i := range invoices {
		g.Go(func() error {
			data, err := s.renderInvoice(gctx, &invoices[i])
			if err != nil {
				return fmt.Errorf("bill %s: %w", invoices[i].BillNo, err)
			}
			pdfs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, inv := range invoices {
		w, err := zw.Create(billing.Label(inv.BillNo) + ".pdf")
		if err != nil {
			return nil, fmt.Errorf("failed to add bill to archive: %w", err)
		}
		if _, err := w.Write(pdfs[i]); err != nil {
			return nil, fmt.Errorf("failed to add bill to archive: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}

	first, last := billing.Label(invoices[0].BillNo), billing.Label(invoices[len(invoices)-1].BillNo)
	logger.For(ctx, s.logger).Info("Bills exported",
		zap.Int("count", len(invoices)),
		zap.Int("bytes", buf.Len()),
	)
	return &Document{
		FileName:    s.rangeName("Invoices_", first, last) + ".zip",
		ContentType: ContentTypeZIP,
		Data:        buf.Bytes(),
	}, nil
}

// Render renders a document by kind and number, the way the admin CLI
// addresses documents: challan numbers, bill numbers and quotation ids.
func (s *PrintService) Render(ctx context.Context, kind printing.DocKind, number string) (*Document, error) {
	switch kind {
	case printing.DocKindChallan, printing.DocKindQuotation:
		n, err := strconv.ParseInt(strings.TrimSpace(number), 10, 64)
		if err != nil || n <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "document number must be a positive integer")
		}
		if kind == printing.DocKindChallan {
			return s.ChallanPDF(ctx, n)
		}
		return s.QuotationPDF(ctx, n)
	case printing.DocKindInvoice:
		return s.InvoicePDF(ctx, number)
	}
	return nil, shared.NewDomainError("INVALID_INPUT", "unsupported document kind: "+string(kind))
}

func (s *PrintService) renderInvoice(ctx context.Context, inv *billing.Invoice) ([]byte, error) {
	c, err := s.challanFor(ctx, inv.ChallanNo)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, printing.DocKindInvoice, inv.BillNo, infra.NewInvoicePage(inv, c))
}

// render executes the page template, prints it and archives the result.
// number names the archived copy; empty skips archiving.
func (s *PrintService) render(ctx context.Context, kind printing.DocKind, number string, page any) (_ []byte, err error) {
	ctx, span := telemetry.StartSpan(ctx, "printing.render",
		telemetry.SpanAttrDocumentKind.String(string(kind)),
		telemetry.SpanAttrDocumentNumber.String(number),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()
	log := logger.For(ctx, s.logger)

	html, err := s.templates.Render(ctx, kind, page)
	if err != nil {
		return nil, err
	}

	tmpl, err := infra.GetDefaultTemplate(kind)
	if err != nil {
		return nil, err
	}
	result, err := s.renderer.Render(ctx, &infra.RenderRequest{
		HTML:      html,
		PaperSize: tmpl.PaperSize,
		Margins:   tmpl.Margins,
		Title:     s.templates.Title(kind, page),
	})
	if err != nil {
		log.Error("Failed to render document",
			zap.String("kind", string(kind)),
			zap.String("number", number),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.RecordDocumentRendered(ctx, telemetry.DocumentKind(kind), result.RenderDuration)

	if s.archive != nil && number != "" {
		key := ArchiveKey(kind, number)
		if err := s.archive.Archive(ctx, key, result.PDFData); err != nil {
			log.Warn("Failed to archive document", zap.String("key", key), zap.Error(err))
		}
	}
	return result.PDFData, nil
}

// ArchiveKey is the storage key of an archived document: "<kind>/<number>.pdf"
func ArchiveKey(kind printing.DocKind, number string) string {
	return string(kind) + "/" + number + ".pdf"
}

// challanFor loads the challan a bill was raised for; nil when it is gone
func (s *PrintService) challanFor(ctx context.Context, challanNo int64) (*challan.Challan, error) {
	c, err := s.challans.FindByNumber(ctx, challanNo)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load challan %d: %w", challanNo, err)
	}
	return c, nil
}

func (s *PrintService) loadInvoices(ctx context.Context, billNos []string) ([]billing.Invoice, error) {
	seen := make(map[string]struct{}, len(billNos))
	cleaned := make([]string, 0, len(billNos))
	for _, b := range billNos {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		cleaned = append(cleaned, b)
	}
	if len(cleaned) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "billnos[] is required")
	}

	invoices, err := s.invoices.FindByBillNos(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	if len(invoices) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No matching bills found")
	}
	return invoices, nil
}

// rangeName names a multi-bill file "<date>_<infix><first>_to_<last>"
func (s *PrintService) rangeName(infix, first, last string) string {
	return s.now().Format("2006-01-02") + "_" + infix + first + "_to_" + last
}

func pdfDocument(name string, data []byte) *Document {
	return &Document{FileName: name, ContentType: ContentTypePDF, Data: data}
}
