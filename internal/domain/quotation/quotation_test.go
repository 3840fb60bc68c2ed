package quotation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/shared"
)

func TestNewQuotation(t *testing.T) {
	now := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

	q, err := NewQuotation(" Q-101 ", "Union Fabrics Private Limited", []Row{
		{Description: "Roller repair", Rate: "1,500"},
		{Description: "", Rate: ""},
		{Description: "Prices exclude GST", Rate: "99", IsNote: true},
	}, time.Time{}, now)
	require.NoError(t, err)

	assert.Equal(t, "Q-101", q.QuotationNo)
	assert.Equal(t, now, q.QuotationDate)
	require.Len(t, q.Rows, 2)
	assert.Equal(t, "", q.Rows[1].Rate)
	assert.Len(t, q.PricedRows(), 1)
}

func TestNewQuotation_RequiresNumberAndIndustry(t *testing.T) {
	_, err := NewQuotation("", "Mill", nil, time.Time{}, time.Now())
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = NewQuotation("Q-1", " ", nil, time.Time{}, time.Now())
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestNewQuotation_KeepsExplicitDate(t *testing.T) {
	date := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)
	q, err := NewQuotation("Q-2", "Mill", nil, date, time.Now())
	require.NoError(t, err)
	assert.Equal(t, date, q.QuotationDate)
}
