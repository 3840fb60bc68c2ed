package billing

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zumech/backend/internal/domain/billing"
)

// FlexString accepts a JSON string or number; null becomes empty.
// Bill forms send quantities and rates either way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// InvoiceLineRequest is one submitted bill row
type InvoiceLineRequest struct {
	Qty         FlexString `json:"qty"`
	Description string     `json:"description" binding:"max=500"`
	Rate        FlexString `json:"rate"`
	Amount      FlexString `json:"amount"`
}

// CreateInvoiceRequest is the body of POST /invoice
type CreateInvoiceRequest struct {
	ChallanNo int64                `json:"challanno"`
	Lines     []InvoiceLineRequest `json:"lines" binding:"max=200,dive"`
	// BillNo requests a specific number such as "KTML-0012"
	BillNo string `json:"billno" binding:"max=50"`
}

// SetPaidRequest is the body of PATCH /invoice
type SetPaidRequest struct {
	BillNo string `json:"billno"`
	Status *bool  `json:"status"`
}

// SetDateRequest is the body of PATCH /invoice-date
type SetDateRequest struct {
	BillNos []string `json:"billnos"`
	Date    string   `json:"date"`
}

// BillNumbersRequest lists bills for summary and export
type BillNumbersRequest struct {
	BillNos []string `json:"billnos" binding:"required,min=1,max=500"`
}

// ListInvoicesRequest carries the GET /invoice query
type ListInvoicesRequest struct {
	Bill    string `form:"bill"`
	Challan string `form:"challan"`
	Limit   int    `form:"limit"`
}

// InvoiceLineResponse is one stored bill row
type InvoiceLineResponse struct {
	Qty         string          `json:"qty"`
	Description string          `json:"description"`
	Rate        string          `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is a stored bill
type InvoiceResponse struct {
	ID          int64                 `json:"id"`
	BillNo      string                `json:"billno"`
	ChallanNo   int64                 `json:"challanno"`
	Description []InvoiceLineResponse `json:"Description"`
	Status      bool                  `json:"status"`
	Total       decimal.Decimal       `json:"total"`
	Industry    string                `json:"industry,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// CreatedInvoiceResponse is returned by create: the record and its number
type CreatedInvoiceResponse struct {
	Data InvoiceResponse `json:"data"`
	Bill string          `json:"bill"`
}

// NextNumberResponse is returned by GET /invoice/next-number
type NextNumberResponse struct {
	Company string `json:"company"`
	BillNo  string `json:"billno"`
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = InvoiceLineResponse{Qty: l.Qty, Description: l.Description, Rate: l.Rate, Amount: l.Amount}
	}
	return InvoiceResponse{
		ID:          inv.ID,
		BillNo:      inv.BillNo,
		ChallanNo:   inv.ChallanNo,
		Description: lines,
		Status:      inv.Paid,
		Total:       inv.Total(),
		Industry:    inv.Industry,
		CreatedAt:   inv.CreatedAt,
	}
}

func toInvoiceResponses(rows []billing.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(rows))
	for i := range rows {
		out[i] = ToInvoiceResponse(&rows[i])
	}
	return out
}

func (r CreateInvoiceRequest) lineInputs() []billing.LineInput {
	out := make([]billing.LineInput, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = billing.LineInput{
			Qty:         string(l.Qty),
			Description: l.Description,
			Rate:        string(l.Rate),
			Amount:      string(l.Amount),
		}
	}
	return out
}

// cleanBillNos trims and drops blank bill numbers, keeping order
func cleanBillNos(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
