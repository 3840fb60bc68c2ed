// Package printing describes the printable documents and their page geometry.
package printing

import "github.com/zumech/backend/internal/domain/shared"

// DocKind is a printable document type
type DocKind string

const (
	DocKindChallan     DocKind = "challan"
	DocKindInvoice     DocKind = "invoice"
	DocKindQuotation   DocKind = "quotation"
	DocKindBillSummary DocKind = "bill_summary"
)

// IsValid checks if the kind is known
func (k DocKind) IsValid() bool {
	switch k {
	case DocKindChallan, DocKindInvoice, DocKindQuotation, DocKindBillSummary:
		return true
	}
	return false
}

// MinRows is the number of table rows a printed document always shows,
// padding with blank rows so forms keep a fixed look.
func (k DocKind) MinRows() int {
	switch k {
	case DocKindChallan, DocKindInvoice:
		return 6
	case DocKindQuotation:
		return 9
	default:
		return 0
	}
}

// Title is the heading printed on the document
func (k DocKind) Title() string {
	switch k {
	case DocKindChallan:
		return "Delivery Challan"
	case DocKindInvoice:
		return "Bill"
	case DocKindQuotation:
		return "Quotation"
	case DocKindBillSummary:
		return "Bill Summary"
	}
	return string(k)
}

// FileName returns the download name for a document number. Bill summaries
// are named by the caller.
func (k DocKind) FileName(number string) string {
	switch k {
	case DocKindChallan:
		return "Challan_" + number + ".pdf"
	case DocKindInvoice:
		return "Bill_" + number + ".pdf"
	case DocKindQuotation:
		return "Quotation_" + number + ".pdf"
	default:
		if number == "" {
			return "Bills_Summary.pdf"
		}
		return number + ".pdf"
	}
}

// PaperSize is the output paper format
type PaperSize string

// PaperSizeA4 is 210mm x 297mm (595.28 x 841.89 pt)
const PaperSizeA4 PaperSize = "A4"

// IsValid checks if the paper size is supported
func (p PaperSize) IsValid() bool {
	return p == PaperSizeA4
}

// Dimensions returns width and height in millimeters
func (p PaperSize) Dimensions() (width, height float64) {
	return 210, 297
}

// Margins represents the page margins in millimeters
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// NewMargins creates a new Margins value object
func NewMargins(top, right, bottom, left float64) (Margins, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot be negative")
	}
	if top > 100 || right > 100 || bottom > 100 || left > 100 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot exceed 100mm")
	}
	return Margins{Top: top, Right: right, Bottom: bottom, Left: left}, nil
}

// DefaultMargins returns half-inch margins (36pt)
func DefaultMargins() Margins {
	return Margins{Top: 12.7, Right: 12.7, Bottom: 12.7, Left: 12.7}
}
