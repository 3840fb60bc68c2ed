package quotation

import (
	"time"

	"github.com/zumech/backend/internal/domain/quotation"
)

// RowDTO is one quotation row on the wire
type RowDTO struct {
	Description string `json:"description" binding:"max=500"`
	Rate        string `json:"rate" binding:"max=50"`
	IsNote      bool   `json:"isNote"`
}

// CreateQuotationRequest is the body of POST /quotation
type CreateQuotationRequest struct {
	QuotationNo  string   `json:"quotation_no" binding:"required,max=50"`
	IndustryName string   `json:"industry_name" binding:"required,max=200"`
	Description  []RowDTO `json:"description" binding:"max=200,dive"`
	// QuotationDate is a date or ISO timestamp; empty means now
	QuotationDate string `json:"quotation_date" binding:"max=40"`
}

// ListQuotationsRequest carries the GET /quotation query
type ListQuotationsRequest struct {
	Quotation string `form:"quotation"`
	Industry  string `form:"industry"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit"`
}

// QuotationResponse is a stored quotation
type QuotationResponse struct {
	ID            int64     `json:"id"`
	QuotationNo   string    `json:"quotation_no"`
	IndustryName  string    `json:"industry_name"`
	Description   []RowDTO  `json:"description"`
	QuotationDate time.Time `json:"quotation_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToQuotationResponse converts a domain quotation
func ToQuotationResponse(q *quotation.Quotation) QuotationResponse {
	rows := make([]RowDTO, len(q.Rows))
	for i, r := range q.Rows {
		rows[i] = RowDTO{Description: r.Description, Rate: r.Rate, IsNote: r.IsNote}
	}
	return QuotationResponse{
		ID:            q.ID,
		QuotationNo:   q.QuotationNo,
		IndustryName:  q.IndustryName,
		Description:   rows,
		QuotationDate: q.QuotationDate,
		CreatedAt:     q.CreatedAt,
	}
}
