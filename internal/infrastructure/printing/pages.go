package printing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/printing"
	"github.com/zumech/backend/internal/domain/quotation"
	"github.com/zumech/backend/internal/infrastructure/config"
)

// SampleReturnedNote is printed on the last used challan row when the
// challan is flagged sample returned
const SampleReturnedNote = "Note: Sample have been returned"

// dateLayout is how dates are printed
const dateLayout = "02/01/2006"

// Letterhead is the company block printed on every document
type Letterhead struct {
	Brand        string
	Email        string
	Phone        string
	Watermark    string
	LogoURL      string
	SignatureURL string
}

// LetterheadFrom maps the printing config section
func LetterheadFrom(cfg config.PrintingConfig) Letterhead {
	return Letterhead{
		Brand:        cfg.CompanyName,
		Email:        cfg.Email,
		Phone:        cfg.Phone,
		Watermark:    cfg.Watermark,
		LogoURL:      cfg.LogoURL,
		SignatureURL: cfg.SignatureURL,
	}
}

// ChallanRow is one printed challan row; blank rows pad the table
type ChallanRow struct {
	Qty         string
	Description string
	IndNo       string
}

// ChallanPage is the data of a printed delivery challan
type ChallanPage struct {
	ChallanNo string
	Date      string
	PO        string
	GP        string
	Company   string
	Rows      []ChallanRow
}

// NewChallanPage lays out a challan, padding to the minimum row count
func NewChallanPage(c *challan.Challan) ChallanPage {
	rows := make([]ChallanRow, 0, len(c.Items)+1)
	for _, it := range c.Items {
		rows = append(rows, ChallanRow{Qty: it.Qty, Description: it.Description, IndNo: it.IndNo})
	}
	if c.SampleReturned {
		rows = append(rows, ChallanRow{Description: SampleReturnedNote})
	}
	return ChallanPage{
		ChallanNo: c.Number(),
		Date:      printDate(c.Date),
		PO:        c.PO,
		GP:        c.GP,
		Company:   c.Industry,
		Rows:      padRows(rows, printing.DocKindChallan.MinRows()),
	}
}

// InvoiceRow is one printed bill row
type InvoiceRow struct {
	Qty         string
	Description string
	Rate        string
	Amount      string
}

// InvoicePage is the data of a printed bill
type InvoicePage struct {
	BillNo    string
	ChallanNo string
	Date      string
	PO        string
	GP        string
	Company   string
	Rows      []InvoiceRow
	Total     decimal.Decimal
}

// NewInvoicePage lays out a bill. c is the linked challan and may be nil.
func NewInvoicePage(inv *billing.Invoice, c *challan.Challan) InvoicePage {
	page := InvoicePage{
		BillNo:    billing.Label(inv.BillNo),
		ChallanNo: challan.FormatNumber(inv.ChallanNo),
		Date:      inv.CreatedAt.Format(dateLayout),
		PO:        challan.DefaultPO,
		Company:   billing.CompanyForPrefix(inv.BillNo, inv.Industry),
		Total:     inv.Total(),
	}
	if c != nil {
		page.PO = c.PO
		page.GP = c.GP
		if page.Company == "" {
			page.Company = c.Industry
		}
	}

	rows := make([]InvoiceRow, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		row := InvoiceRow{Qty: l.Qty, Description: l.Description, Rate: l.Rate}
		if rate, err := billing.ParseNumber(l.Rate); err == nil {
			row.Rate = rate.StringFixed(2)
		}
		if !l.Amount.IsZero() {
			row.Amount = FormatAmount(l.Amount)
		}
		rows = append(rows, row)
	}
	page.Rows = padRows(rows, printing.DocKindInvoice.MinRows())
	return page
}

// QuotationRow is one printed quotation row. Note rows span the table and
// carry no serial number.
type QuotationRow struct {
	Serial      int
	Description string
	Rate        string
	IsNote      bool
}

// QuotationPage is the data of a printed quotation
type QuotationPage struct {
	QuotationNo string
	Date        string
	Company     string
	Rows        []QuotationRow
}

// NewQuotationPage lays out a quotation, numbering only priced rows
func NewQuotationPage(q *quotation.Quotation) QuotationPage {
	rows := make([]QuotationRow, 0, len(q.Rows))
	serial := 0
	for _, r := range q.Rows {
		row := QuotationRow{Description: r.Description, Rate: r.Rate, IsNote: r.IsNote}
		if !r.IsNote {
			serial++
			row.Serial = serial
		}
		rows = append(rows, row)
	}
	return QuotationPage{
		QuotationNo: q.QuotationNo,
		Date:        q.QuotationDate.Format(dateLayout),
		Company:     q.IndustryName,
		Rows:        padRows(rows, printing.DocKindQuotation.MinRows()),
	}
}

// SummaryRow is one bill of a bill summary
type SummaryRow struct {
	Serial    int
	BillNo    string
	ChallanNo string
	GP        string
	Date      string
	Amount    decimal.Decimal
	Paid      bool
}

// SummaryPage lists several bills with a grand total
type SummaryPage struct {
	Date       string
	Rows       []SummaryRow
	GrandTotal decimal.Decimal
}

// NewSummaryPage lists invoices in bill number suffix order. gatePasses maps
// challan numbers to their gate-pass numbers.
func NewSummaryPage(invoices []billing.Invoice, gatePasses map[int64]string, now time.Time) SummaryPage {
	sorted := append([]billing.Invoice(nil), invoices...)
	billing.SortBySuffix(sorted)

	page := SummaryPage{Date: now.Format(dateLayout), GrandTotal: decimal.Zero}
	for i := range sorted {
		inv := &sorted[i]
		gp := gatePasses[inv.ChallanNo]
		if gp == "" {
			gp = "-"
		}
		total := inv.Total()
		page.Rows = append(page.Rows, SummaryRow{
			Serial:    i + 1,
			BillNo:    billing.Label(inv.BillNo),
			ChallanNo: challan.FormatNumber(inv.ChallanNo),
			GP:        gp,
			Date:      inv.CreatedAt.Format(dateLayout),
			Amount:    total,
			Paid:      inv.Paid,
		})
		page.GrandTotal = page.GrandTotal.Add(total)
	}
	return page
}

// printDate reformats a stored YYYY-MM-DD date for print, keeping
// unparseable values as they are
func printDate(s string) string {
	t, err := time.Parse(challan.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout)
}

func padRows[T any](rows []T, min int) []T {
	for len(rows) < min {
		var blank T
		rows = append(rows, blank)
	}
	return rows
}

// pageTitle is the PDF title metadata of a page
func pageTitle(kind printing.DocKind, data any) string {
	switch p := data.(type) {
	case ChallanPage:
		return fmt.Sprintf("%s %s", kind.Title(), p.ChallanNo)
	case InvoicePage:
		return fmt.Sprintf("%s %s", kind.Title(), p.BillNo)
	case QuotationPage:
		return fmt.Sprintf("%s %s", kind.Title(), p.QuotationNo)
	}
	return kind.Title()
}
