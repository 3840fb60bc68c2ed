package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/shared"
)

func newTestChallan(t *testing.T, no int64, industry, date string, items ...challan.LineItem) *challan.Challan {
	t.Helper()
	c, err := challan.NewChallan(challan.Details{Date: date, Industry: industry, Items: items}, time.Now())
	require.NoError(t, err)
	c.ChallanNo = no
	return c
}

func TestGormChallanRepository_FindByNumber(t *testing.T) {
	t.Run("finds existing challan", func(t *testing.T) {
		db, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormChallanRepository(db)

		rows := sqlmock.NewRows([]string{"id", "created_at", "challan_no", "date", "po", "gp", "industry", "items", "sample_returned"}).
			AddRow(7, time.Now(), 12, "2024-05-01", "00000", "GP-1", "Meko Demam Mills",
				`[{"qty":"2","description":"Bearing","indNo":"I-9"}]`, true)

		mock.ExpectQuery(`SELECT \* FROM "challans" WHERE challan_no = \$1 LIMIT .*`).
			WithArgs(12, 1).
			WillReturnRows(rows)

		c, err := repo.FindByNumber(context.Background(), 12)

		require.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "00012", c.Number())
		require.Len(t, c.Items, 1)
		assert.Equal(t, "I-9", c.Items[0].IndNo)
		assert.True(t, c.SampleReturned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormChallanRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "challans" WHERE challan_no = \$1 LIMIT .*`).
			WithArgs(99, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		c, err := repo.FindByNumber(context.Background(), 99)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Challan not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChallanRepository_Insert_Duplicate(t *testing.T) {
	db, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewGormChallanRepository(db)

	mock.ExpectQuery(`INSERT INTO "challans"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Insert(context.Background(), newTestChallan(t, 5, "", ""))

	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormChallanRepository_MaxNumber_Mock(t *testing.T) {
	db, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewGormChallanRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(challan_no\), 0\) FROM "challans"`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(41))

	max, err := repo.MaxNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), max)
}

func TestGormChallanRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewGormChallanRepository(newSQLiteGorm(t))

	max, err := repo.MaxNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), max)

	fixtures := []*challan.Challan{
		newTestChallan(t, 1, "Kassim Textile Mills Limited", "2024-01-10", challan.LineItem{Qty: "1", Description: "Roller Bearing"}),
		newTestChallan(t, 12, "Meko Demam Mills", "2024-02-15", challan.LineItem{Qty: "4", Description: "Gear box"}),
		newTestChallan(t, 123, "Union Fabrics Private Limited", "2024-03-20", challan.LineItem{Qty: "2", Description: "V-Belt"}),
	}
	for _, c := range fixtures {
		require.NoError(t, repo.Insert(ctx, c))
		assert.NotZero(t, c.ID)
	}

	t.Run("duplicate number is rejected", func(t *testing.T) {
		err := repo.Insert(ctx, newTestChallan(t, 12, "", ""))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("max number", func(t *testing.T) {
		max, err := repo.MaxNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(123), max)
	})

	t.Run("numeric prefix", func(t *testing.T) {
		got, err := repo.FindAll(ctx, challan.Filter{Challan: "12"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(12), got[0].ChallanNo)

		got, err = repo.FindAll(ctx, challan.Filter{Challan: "no digits"})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("exact number", func(t *testing.T) {
		got, err := repo.FindAll(ctx, challan.Filter{Challan: "012", Exact: true})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(12), got[0].ChallanNo)
	})

	t.Run("industry contains, case-insensitive", func(t *testing.T) {
		got, err := repo.FindAll(ctx, challan.Filter{Industry: "demam"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Meko Demam Mills", got[0].Industry)
	})

	t.Run("item description contains", func(t *testing.T) {
		got, err := repo.FindAll(ctx, challan.Filter{Item: "BEARING"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ChallanNo)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		got, err := repo.FindAll(ctx, challan.Filter{From: "2024-02-15", To: "2024-03-20"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("update replaces content", func(t *testing.T) {
		c := fixtures[0]
		require.NoError(t, c.Apply(challan.Details{Date: "2024-01-11", PO: "PO-7", Industry: "Meko Demam Mills"}, time.Now()))
		require.NoError(t, repo.Update(ctx, c))

		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "PO-7", got.PO)
		assert.Equal(t, int64(1), got.ChallanNo)
		assert.Empty(t, got.Items)
	})

	t.Run("update of missing challan", func(t *testing.T) {
		c := newTestChallan(t, 0, "", "")
		c.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, c), shared.ErrNotFound)
	})

	t.Run("industries", func(t *testing.T) {
		got, err := repo.Industries(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"Meko Demam Mills", "Meko Demam Mills", "Union Fabrics Private Limited"}, got)
	})
}
