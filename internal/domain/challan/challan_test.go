package challan

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/shared"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNewChallan_Defaults(t *testing.T) {
	c, err := NewChallan(Details{
		Items: []LineItem{
			{Qty: " 10 ", Description: "Bearing 6204", IndNo: "IND-77"},
			{},
			{Qty: "  ", Description: "", IndNo: ""},
		},
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", c.Date)
	assert.Equal(t, DefaultPO, c.PO)
	assert.Equal(t, DefaultIndustry, c.Industry)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "10", c.Items[0].Qty)
	assert.True(t, c.IsNew())
}

func TestNewChallan_KeepsProvidedValues(t *testing.T) {
	c, err := NewChallan(Details{
		Date:           "2024-12-01T00:00:00.000Z",
		PO:             "4500012",
		GP:             "GP-19",
		Industry:       " Meko Demam Mills ",
		SampleReturned: true,
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2024-12-01", c.Date)
	assert.Equal(t, "4500012", c.PO)
	assert.Equal(t, "GP-19", c.GP)
	assert.Equal(t, "Meko Demam Mills", c.Industry)
	assert.True(t, c.SampleReturned)
	assert.Empty(t, c.Items)
}

func TestNewChallan_RejectsBadDate(t *testing.T) {
	_, err := NewChallan(Details{Date: "14/03/2025"}, fixedNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "00001", FormatNumber(1))
	assert.Equal(t, "00042", FormatNumber(42))
	assert.Equal(t, "123456", FormatNumber(123456))

	c := &Challan{ChallanNo: 7}
	assert.Equal(t, "00007", c.Number())
}

func TestDistinctCompanies(t *testing.T) {
	got := DistinctCompanies([]string{
		"Union Fabrics Private Limited",
		" Kassim Textile Mills Limited",
		"",
		"Kassim Textile Mills Limited ",
		"   ",
		"Meko Demam Mills",
	})

	assert.Equal(t, []string{
		"Kassim Textile Mills Limited",
		"Meko Demam Mills",
		"Union Fabrics Private Limited",
	}, got)
}

func TestRef_IsZero(t *testing.T) {
	assert.True(t, Ref{}.IsZero())
	assert.False(t, Ref{ChallanNo: 3}.IsZero())
	assert.False(t, Ref{ID: 9}.IsZero())
}
