package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceOf(t *testing.T) {
	assert.Equal(t, int64(12), SequenceOf("KTML-0012"))
	assert.Equal(t, int64(307), SequenceOf("307"))
	assert.Equal(t, int64(0), SequenceOf("DRAFT"))
}

func TestNextSequence(t *testing.T) {
	assert.Equal(t, int64(1), NextSequence(nil))
	assert.Equal(t, int64(44), NextSequence([]string{"12", "KTML-0043", "MDM-0007", "x"}))
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		base      int64
		attempt   int
		want      string
	}{
		{"auto first attempt", "", 18, 0, "18"},
		{"auto retry", "", 18, 3, "21"},
		{"requested first attempt", "KTML-0009", 0, 0, "KTML-0009"},
		{"prefix dash number", "KTML-0009", 0, 2, "KTML-0011"},
		{"prefix dash number overflows padding", "MDM-9999", 0, 1, "MDM-10000"},
		{"trailing digits keep width", "INV/2025/007", 0, 1, "INV/2025/008"},
		{"no digits", "DRAFT", 0, 1, "DRAFT_1"},
		{"dash with non numeric tail", "A-B", 0, 1, "A-B_1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidate(tt.requested, tt.base, tt.attempt))
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "KTML", Initials("Kassim Textile Mills Limited"))
	assert.Equal(t, "UFPL", Initials("  union fabrics  private limited "))
	assert.Equal(t, "", Initials("   "))
}

func TestCompanyBillNumber(t *testing.T) {
	assert.Equal(t, "KTML-0001", CompanyBillNumber("Kassim Textile Mills Limited", 0))
	assert.Equal(t, "MDM-0013", CompanyBillNumber("Meko Demam Mills", 12))
	assert.Equal(t, "", CompanyBillNumber("", 12))
}

func TestCompanySequence(t *testing.T) {
	n, ok := CompanySequence("KTML-0012")
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	n, ok = CompanySequence("KTML0031")
	assert.True(t, ok)
	assert.Equal(t, int64(31), n)

	_, ok = CompanySequence("KTML")
	assert.False(t, ok)
}

func TestCompanyForPrefix(t *testing.T) {
	assert.Equal(t, "Kassim Textile Mills Limited", CompanyForPrefix("KTML-0001", ""))
	assert.Equal(t, "Meko Demam Mills", CompanyForPrefix("mdm-0002", ""))
	assert.Equal(t, "Union Fabrics Private Limited", CompanyForPrefix("UFPL-0100", "x"))
	assert.Equal(t, "Acme Mills", CompanyForPrefix("AM-0001", "Acme Mills"))
	assert.Equal(t, "", CompanyForPrefix("17", ""))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "00041", Label("41"))
	assert.Equal(t, "KTML-0012", Label("KTML-0012"))
	assert.Equal(t, "A7", Label("A7"))
}

func TestSortBySuffix(t *testing.T) {
	invoices := []Invoice{{BillNo: "MDM-0010"}, {BillNo: "9"}, {BillNo: "KTML-0002"}, {BillNo: "x"}}
	SortBySuffix(invoices)

	got := make([]string, len(invoices))
	for i, inv := range invoices {
		got[i] = inv.BillNo
	}
	assert.Equal(t, []string{"x", "KTML-0002", "9", "MDM-0010"}, got)
}
