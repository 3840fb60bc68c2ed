// Package challan models delivery challans: numbered delivery notes listing
// the goods handed to a customer mill, with PO and gate-pass references.
package challan

import (
	"fmt"
	"strings"
	"time"

	"github.com/zumech/backend/internal/domain/shared"
)

// Defaults applied when a challan is created or edited without these fields
const (
	DefaultPO       = "00000"
	DefaultIndustry = "Kassim Textile Mills Limited"
	// NumberWidth is the zero-padded width of a printed challan number
	NumberWidth = 5
	// DateLayout is the wire and storage format of challan dates
	DateLayout = "2006-01-02"
)

// LineItem is one row of goods on a challan
type LineItem struct {
	Qty         string `json:"qty"`
	Description string `json:"description"`
	IndNo       string `json:"indNo"`
}

// IsBlank reports whether every field of the row is empty
func (l LineItem) IsBlank() bool {
	return strings.TrimSpace(l.Qty) == "" &&
		strings.TrimSpace(l.Description) == "" &&
		strings.TrimSpace(l.IndNo) == ""
}

// Challan is a delivery challan
type Challan struct {
	shared.BaseEntity
	ChallanNo      int64
	Date           string
	PO             string
	GP             string
	Industry       string
	Items          []LineItem
	SampleReturned bool
}

// Details is the editable content of a challan
type Details struct {
	Date           string
	PO             string
	GP             string
	Industry       string
	Items          []LineItem
	SampleReturned bool
}

// NewChallan builds an unnumbered challan from details, applying defaults.
// The number is assigned by the repository on insert.
func NewChallan(d Details, now time.Time) (*Challan, error) {
	c := &Challan{}
	if err := c.Apply(d, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply replaces the challan content with d. Blank rows are dropped.
func (c *Challan) Apply(d Details, now time.Time) error {
	date := strings.TrimSpace(d.Date)
	if date == "" {
		date = now.Format(DateLayout)
	} else if len(date) > len(DateLayout) {
		// accept full ISO timestamps from clients
		date = date[:len(DateLayout)]
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Date must be formatted as YYYY-MM-DD")
	}

	po := strings.TrimSpace(d.PO)
	if po == "" {
		po = DefaultPO
	}
	industry := strings.TrimSpace(d.Industry)
	if industry == "" {
		industry = DefaultIndustry
	}

	items := make([]LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.IsBlank() {
			continue
		}
		items = append(items, LineItem{
			Qty:         strings.TrimSpace(it.Qty),
			Description: strings.TrimSpace(it.Description),
			IndNo:       strings.TrimSpace(it.IndNo),
		})
	}

	c.Date = date
	c.PO = po
	c.GP = strings.TrimSpace(d.GP)
	c.Industry = industry
	c.Items = items
	c.SampleReturned = d.SampleReturned
	return nil
}

// Number returns the zero-padded challan number, e.g. "00042"
func (c *Challan) Number() string {
	return FormatNumber(c.ChallanNo)
}

// FormatNumber zero pads a challan number to NumberWidth digits
func FormatNumber(n int64) string {
	return fmt.Sprintf("%0*d", NumberWidth, n)
}
