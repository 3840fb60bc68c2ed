package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/quotation"
	"github.com/zumech/backend/internal/domain/shared"
)

func TestGormQuotationRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewGormQuotationRepository(newSQLiteGorm(t))

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	q1, err := quotation.NewQuotation("Q-2024-01", "Kassim Textile Mills Limited",
		[]quotation.Row{{Description: "Bearing 6205", Rate: "450"}, {Description: "Prices exclude GST", IsNote: true}}, jan, time.Now())
	require.NoError(t, err)
	q2, err := quotation.NewQuotation("Q-2024-07", "Union Fabrics Private Limited", nil, mar, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, q1))
	require.NoError(t, repo.Insert(ctx, q2))

	t.Run("find by id keeps rows", func(t *testing.T) {
		got, err := repo.FindByID(ctx, q1.ID)
		require.NoError(t, err)
		require.Len(t, got.Rows, 2)
		assert.True(t, got.Rows[1].IsNote)
		assert.Len(t, got.PricedRows(), 1)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 404)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("filters", func(t *testing.T) {
		got, err := repo.FindAll(ctx, quotation.Filter{Quotation: "-07"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, q2.ID, got[0].ID)

		got, err = repo.FindAll(ctx, quotation.Filter{Industry: "KASSIM"})
		require.NoError(t, err)
		require.Len(t, got, 1)

		from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		got, err = repo.FindAll(ctx, quotation.Filter{From: &from})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Q-2024-07", got[0].QuotationNo)
	})
}
