package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/printing"
)

func TestNewChallanPage(t *testing.T) {
	items := make([]challan.LineItem, 7)
	page := NewChallanPage(&challan.Challan{ChallanNo: 3, Date: "not-a-date", Items: items})

	assert.Equal(t, "00003", page.ChallanNo)
	assert.Equal(t, "not-a-date", page.Date)
	// longer tables are not truncated
	assert.Len(t, page.Rows, 7)
}

func TestNewInvoicePage_WithoutChallan(t *testing.T) {
	inv := &billing.Invoice{
		BillNo:    "41",
		ChallanNo: 9,
		Industry:  "Local Mill",
		Lines:     []billing.Line{{Qty: "2", Description: "Nut", Rate: "ask", Amount: decimal.Zero}},
	}
	inv.CreatedAt = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	page := NewInvoicePage(inv, nil)

	assert.Equal(t, "00041", page.BillNo)
	assert.Equal(t, "00009", page.ChallanNo)
	assert.Equal(t, "01/07/2025", page.Date)
	assert.Equal(t, challan.DefaultPO, page.PO)
	assert.Equal(t, "", page.GP)
	assert.Equal(t, "Local Mill", page.Company)
	assert.Equal(t, "ask", page.Rows[0].Rate)
	assert.Equal(t, "", page.Rows[0].Amount)
	assert.Len(t, page.Rows, printing.DocKindInvoice.MinRows())
}

func TestNewSummaryPage_Empty(t *testing.T) {
	page := NewSummaryPage(nil, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, page.Rows)
	assert.True(t, page.GrandTotal.IsZero())
	assert.Equal(t, "01/01/2025", page.Date)
}

func TestNewSummaryPage_DoesNotReorderInput(t *testing.T) {
	invoices := []billing.Invoice{{BillNo: "5"}, {BillNo: "2"}}
	page := NewSummaryPage(invoices, nil, time.Now())

	assert.Equal(t, "5", invoices[0].BillNo)
	assert.Equal(t, "00002", page.Rows[0].BillNo)
	assert.Equal(t, 1, page.Rows[0].Serial)
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Bill KTML-1", pageTitle(printing.DocKindInvoice, InvoicePage{BillNo: "KTML-1"}))
	assert.Equal(t, "Bill Summary", pageTitle(printing.DocKindBillSummary, SummaryPage{}))
}
