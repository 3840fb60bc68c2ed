package printing

import (
	"embed"
	"fmt"

	"github.com/zumech/backend/internal/domain/printing"
)

//go:embed templates/*.html
var templateFS embed.FS

// layoutFile holds the shared letterhead, styles and signature blocks
const layoutFile = "templates/layout.html"

// DefaultTemplate describes the built-in page of one document kind
type DefaultTemplate struct {
	Kind      printing.DocKind
	PaperSize printing.PaperSize
	Margins   printing.Margins
	FilePath  string // Path within embed.FS
}

// GetDefaultTemplates returns the page of every printable document
func GetDefaultTemplates() []DefaultTemplate {
	return []DefaultTemplate{
		{Kind: printing.DocKindChallan, PaperSize: printing.PaperSizeA4, Margins: printing.DefaultMargins(), FilePath: "templates/challan.html"},
		{Kind: printing.DocKindInvoice, PaperSize: printing.PaperSizeA4, Margins: printing.DefaultMargins(), FilePath: "templates/invoice.html"},
		{Kind: printing.DocKindQuotation, PaperSize: printing.PaperSizeA4, Margins: printing.DefaultMargins(), FilePath: "templates/quotation.html"},
		{Kind: printing.DocKindBillSummary, PaperSize: printing.PaperSizeA4, Margins: printing.DefaultMargins(), FilePath: "templates/bill_summary.html"},
	}
}

// GetDefaultTemplate returns the built-in page of kind
func GetDefaultTemplate(kind printing.DocKind) (DefaultTemplate, error) {
	for _, t := range GetDefaultTemplates() {
		if t.Kind == kind {
			return t, nil
		}
	}
	return DefaultTemplate{}, fmt.Errorf("no template for document kind %q", kind)
}

// GetTemplateContent reads a template file from the embedded filesystem
func GetTemplateContent(filePath string) (string, error) {
	content, err := templateFS.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}
	return string(content), nil
}
