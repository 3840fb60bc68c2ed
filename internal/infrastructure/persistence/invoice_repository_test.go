package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/shared"
)

func newTestInvoice(challanNo int64, billNo string) *billing.Invoice {
	inv := billing.NewInvoice(challanNo, []billing.LineInput{{Qty: "2", Description: "Bearing", Rate: "1,250.50"}})
	inv.AssignNumber(billNo)
	return inv
}

func TestGormInvoiceRepository_FindByBillNo_Mock(t *testing.T) {
	db, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewGormInvoiceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "created_at", "bill_no", "bill_seq", "challan_no", "lines", "paid", "industry"}).
		AddRow(3, time.Now(), "KTML-0012", 12, 40, `[{"qty":"1","description":"x","rate":"5","amount":"5"}]`, false, "Kassim Textile Mills Limited")

	mock.ExpectQuery(`SELECT invoices\.\*, challans\.industry AS industry FROM "invoices" LEFT JOIN challans ON challans\.challan_no = invoices\.challan_no WHERE invoices\.bill_no = \$1 LIMIT .*`).
		WithArgs("KTML-0012", 1).
		WillReturnRows(rows)

	inv, err := repo.FindByBillNo(context.Background(), "KTML-0012")

	require.NoError(t, err)
	assert.Equal(t, "Kassim Textile Mills Limited", inv.Industry)
	assert.True(t, decimal.NewFromInt(5).Equal(inv.Total()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteGorm(t)
	challans := NewGormChallanRepository(db)
	repo := NewGormInvoiceRepository(db)

	for no, industry := range map[int64]string{40: "Kassim Textile Mills Limited", 41: "Meko Demam Mills"} {
		c, err := challan.NewChallan(challan.Details{Industry: industry}, time.Now())
		require.NoError(t, err)
		c.ChallanNo = no
		require.NoError(t, challans.Insert(ctx, c))
	}

	for _, inv := range []*billing.Invoice{
		newTestInvoice(40, "KTML-0011"),
		newTestInvoice(40, "KTML-0012"),
		newTestInvoice(41, "MDM-0003"),
		newTestInvoice(77, "150"), // challan deleted or never created
	} {
		require.NoError(t, repo.Insert(ctx, inv))
	}

	t.Run("duplicate bill number", func(t *testing.T) {
		err := repo.Insert(ctx, newTestInvoice(40, "KTML-0012"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("find joins industry", func(t *testing.T) {
		inv, err := repo.FindByBillNo(ctx, "MDM-0003")
		require.NoError(t, err)
		assert.Equal(t, "Meko Demam Mills", inv.Industry)
		assert.Equal(t, int64(3), inv.BillSeq)
		assert.True(t, decimal.RequireFromString("2501").Equal(inv.Total()))
	})

	t.Run("missing challan leaves industry empty", func(t *testing.T) {
		inv, err := repo.FindByBillNo(ctx, "150")
		require.NoError(t, err)
		assert.Empty(t, inv.Industry)
	})

	t.Run("list orders by sequence", func(t *testing.T) {
		got, err := repo.FindAll(ctx, billing.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, []string{"150", "KTML-0012", "KTML-0011", "MDM-0003"},
			[]string{got[0].BillNo, got[1].BillNo, got[2].BillNo, got[3].BillNo})
	})

	t.Run("list filters by bill and challan prefix", func(t *testing.T) {
		// [11, 110) on the bill sequence
		got, err := repo.FindAll(ctx, billing.Filter{Bill: "11"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "KTML-0012", got[0].BillNo)

		// [41, 410) on the challan number
		got, err = repo.FindAll(ctx, billing.Filter{Challan: "41"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "150", got[0].BillNo)
	})

	t.Run("recent bill numbers", func(t *testing.T) {
		got, err := repo.RecentBillNos(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"150", "KTML-0012"}, got)
		assert.Equal(t, int64(151), billing.NextSequence(got))
	})

	t.Run("company bill numbers", func(t *testing.T) {
		got, err := repo.CompanyBillNos(ctx, "Kassim Textile Mills Limited", "KTML-", 100)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"KTML-0011", "KTML-0012"}, got)
	})

	t.Run("set paid", func(t *testing.T) {
		inv, err := repo.SetPaid(ctx, "KTML-0011", true)
		require.NoError(t, err)
		assert.True(t, inv.Paid)

		_, err = repo.SetPaid(ctx, "NOPE", true)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("set created at", func(t *testing.T) {
		at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		got, err := repo.SetCreatedAt(ctx, []string{"KTML-0011", "MDM-0003"}, at)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, inv := range got {
			assert.True(t, at.Equal(inv.CreatedAt), inv.BillNo)
		}
	})
}
