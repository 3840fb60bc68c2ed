// Package billing models bills (invoices) raised against delivery challans.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zumech/backend/internal/domain/shared"
)

// Line is one priced row of a bill
type Line struct {
	Qty         string          `json:"qty"`
	Description string          `json:"description"`
	Rate        string          `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a bill raised for a delivery challan
type Invoice struct {
	shared.BaseEntity
	BillNo string
	// BillSeq is the numeric value of the trailing digits of BillNo
	BillSeq   int64
	ChallanNo int64
	Lines     []Line
	Paid      bool
	// Industry is the company on the linked challan, read only
	Industry string
}

// LineInput is an unpriced or pre-priced row as submitted by a client
type LineInput struct {
	Qty         string
	Description string
	Rate        string
	Amount      string
}

// NewInvoice builds an unnumbered invoice for a challan.
func NewInvoice(challanNo int64, lines []LineInput) *Invoice {
	inv := &Invoice{
		ChallanNo: challanNo,
		Lines:     make([]Line, 0, len(lines)),
	}
	for _, l := range lines {
		inv.Lines = append(inv.Lines, PriceLine(l))
	}
	return inv
}

// AssignNumber sets the bill number and its derived sequence
func (i *Invoice) AssignNumber(billNo string) {
	i.BillNo = billNo
	i.BillSeq = SuffixNumber(billNo)
}

// Total is the sum of all line amounts
func (i *Invoice) Total() decimal.Decimal {
	return Total(i.Lines)
}

// Total sums line amounts
func Total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// PriceLine computes amount = round(qty * rate, 2) when both parse as
// numbers; otherwise the supplied amount is kept (zero when unparseable).
func PriceLine(in LineInput) Line {
	line := Line{
		Qty:         strings.TrimSpace(in.Qty),
		Description: strings.TrimSpace(in.Description),
		Rate:        strings.TrimSpace(in.Rate),
	}

	qty, qErr := ParseNumber(in.Qty)
	rate, rErr := ParseNumber(in.Rate)
	if qErr == nil && rErr == nil {
		line.Amount = qty.Mul(rate).Round(2)
		return line
	}

	if amount, err := ParseNumber(in.Amount); err == nil {
		line.Amount = amount.Round(2)
	}
	return line
}

// ParseNumber parses a user-entered number, ignoring thousands separators
func ParseNumber(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return decimal.Zero, shared.ErrInvalidInput
	}
	return decimal.NewFromString(cleaned)
}
