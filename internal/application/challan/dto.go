package challan

import (
	"time"

	"github.com/zumech/backend/internal/domain/challan"
)

// LineItemDTO is one challan row on the wire
type LineItemDTO struct {
	Qty         string `json:"qty" binding:"max=50"`
	Description string `json:"description" binding:"max=500"`
	IndNo       string `json:"indNo" binding:"max=50"`
}

// CreateChallanRequest is the body of POST /challan
type CreateChallanRequest struct {
	Date           string        `json:"Date" binding:"omitempty,max=30"`
	PO             string        `json:"PO" binding:"max=100"`
	GP             string        `json:"GP" binding:"max=100"`
	Industry       string        `json:"Industry" binding:"max=200"`
	Description    []LineItemDTO `json:"Description" binding:"max=200,dive"`
	SampleReturned bool          `json:"Sample_returned"`
}

// UpdateChallanRequest is the body of PATCH /challan. One of ID or
// ChallanNo identifies the challan.
type UpdateChallanRequest struct {
	ID        int64 `json:"id" binding:"omitempty,min=1"`
	ChallanNo int64 `json:"challanno" binding:"omitempty,min=1"`
	CreateChallanRequest
}

// ListChallansRequest carries the GET /challan query
type ListChallansRequest struct {
	ID       *int64 `form:"id"`
	Challan  string `form:"challan"`
	Exact    string `form:"exact"`
	Industry string `form:"industry"`
	Item     string `form:"item"`
	From     string `form:"from"`
	To       string `form:"to"`
	Limit    int    `form:"limit"`
}

// ChallanResponse is a stored challan
type ChallanResponse struct {
	ID             int64         `json:"id"`
	ChallanNo      int64         `json:"challanno"`
	Date           string        `json:"Date"`
	PO             string        `json:"PO"`
	GP             string        `json:"GP"`
	Industry       string        `json:"Industry"`
	Description    []LineItemDTO `json:"Description"`
	SampleReturned bool          `json:"Sample_returned"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SavedChallanResponse is returned by create and update: the record plus
// its printable number
type SavedChallanResponse struct {
	Data    ChallanResponse `json:"data"`
	Challan string          `json:"challan"`
}

// ToChallanResponse converts a domain challan
func ToChallanResponse(c *challan.Challan) ChallanResponse {
	items := make([]LineItemDTO, len(c.Items))
	for i, it := range c.Items {
		items[i] = LineItemDTO{Qty: it.Qty, Description: it.Description, IndNo: it.IndNo}
	}
	return ChallanResponse{
		ID:             c.ID,
		ChallanNo:      c.ChallanNo,
		Date:           c.Date,
		PO:             c.PO,
		GP:             c.GP,
		Industry:       c.Industry,
		Description:    items,
		SampleReturned: c.SampleReturned,
		CreatedAt:      c.CreatedAt,
	}
}

func (r CreateChallanRequest) details() challan.Details {
	items := make([]challan.LineItem, len(r.Description))
	for i, it := range r.Description {
		items[i] = challan.LineItem{Qty: it.Qty, Description: it.Description, IndNo: it.IndNo}
	}
	return challan.Details{
		Date:           r.Date,
		PO:             r.PO,
		GP:             r.GP,
		Industry:       r.Industry,
		Items:          items,
		SampleReturned: r.SampleReturned,
	}
}

func (r ListChallansRequest) filter() challan.Filter {
	return challan.Filter{
		ID:       r.ID,
		Challan:  r.Challan,
		Exact:    r.Exact == "true" || r.Exact == "1",
		Industry: r.Industry,
		Item:     r.Item,
		From:     r.From,
		To:       r.To,
		Limit:    r.Limit,
	}
}
