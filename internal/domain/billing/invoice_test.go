package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLine(t *testing.T) {
	tests := []struct {
		name   string
		in     LineInput
		amount string
	}{
		{"qty times rate", LineInput{Qty: "3", Rate: "12.5"}, "37.5"},
		{"thousands separators", LineInput{Qty: "1,000", Rate: "2.345"}, "2345"},
		{"rounds half up to cents", LineInput{Qty: "3", Rate: "0.335"}, "1.01"},
		{"falls back to supplied amount", LineInput{Qty: "lot", Rate: "", Amount: "450.00"}, "450"},
		{"unparseable everything is zero", LineInput{Qty: "lot", Amount: "n/a"}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := PriceLine(tt.in)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(line.Amount), "got %s", line.Amount)
		})
	}
}

func TestInvoice_Total(t *testing.T) {
	inv := NewInvoice(12, []LineInput{
		{Qty: "2", Description: "Gear", Rate: "150"},
		{Qty: "1", Description: "Shaft", Rate: "99.99"},
		{Qty: "", Description: "Labour", Amount: "500"},
	})

	require.Len(t, inv.Lines, 3)
	assert.Equal(t, int64(12), inv.ChallanNo)
	assert.Equal(t, "899.99", inv.Total().StringFixed(2))
}

func TestInvoice_AssignNumber(t *testing.T) {
	tests := []struct {
		billNo string
		seq    int64
	}{
		{"KTML-0042", 42},
		{"MDM2-0005", 5},
		{"A1-0012", 12},
		{"2024-0012", 12},
		{"307", 307},
		{"DRAFT", 0},
	}
	for _, tt := range tests {
		t.Run(tt.billNo, func(t *testing.T) {
			inv := &Invoice{}
			inv.AssignNumber(tt.billNo)

			assert.Equal(t, tt.billNo, inv.BillNo)
			assert.Equal(t, tt.seq, inv.BillSeq)
		})
	}
}
