package billing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/zumech/backend/internal/domain/shared"
)

// MaxAllocationAttempts bounds how many bill numbers are tried before giving up
const MaxAllocationAttempts = 5

// RecentWindow is how many recent bills are scanned to find the next number
const RecentWindow = 50

// CompanyWindow is how many of a company's recent bills are scanned for its next number
const CompanyWindow = 100

var trailingDigits = regexp.MustCompile(`\d+$`)

// knownPrefixes maps bill number prefixes onto the companies that use them
var knownPrefixes = map[string]string{
	"KTML": "Kassim Textile Mills Limited",
	"MDM":  "Meko Demam Mills",
	"UFPL": "Union Fabrics Private Limited",
}

// ErrAllocationExhausted is returned when every candidate number collided
var ErrAllocationExhausted = shared.NewDomainError("CONFLICT", "Could not allocate a unique bill number. Please retry.")

// SequenceOf returns the numeric value of all digits in a bill number
// ("KTML-0012" → 12). Bill numbers without digits yield 0. Only the
// next-number scan uses it; stored sequences come from SuffixNumber.
func SequenceOf(billNo string) int64 {
	digits := shared.DigitsOnly(billNo)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// NextSequence returns 1 + the highest sequence among billNos
func NextSequence(billNos []string) int64 {
	var max int64
	for _, b := range billNos {
		if n := SequenceOf(b); n > max {
			max = n
		}
	}
	return max + 1
}

// Candidate returns the bill number to try on the given attempt (0-based).
// Without a requested number, candidates count up from base. A requested
// number is used as is first; later attempts bump its numeric part.
func Candidate(requested string, base int64, attempt int) string {
	if requested == "" {
		return strconv.FormatInt(base+int64(attempt), 10)
	}
	if attempt == 0 {
		return requested
	}

	parts := strings.Split(requested, "-")
	if len(parts) == 2 {
		if n, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			return fmt.Sprintf("%s-%04d", parts[0], n+int64(attempt))
		}
	}

	if loc := trailingDigits.FindStringIndex(requested); loc != nil {
		digits := requested[loc[0]:]
		n, err := strconv.ParseInt(digits, 10, 64)
		if err == nil {
			return fmt.Sprintf("%s%0*d", requested[:loc[0]], len(digits), n+int64(attempt))
		}
	}

	return fmt.Sprintf("%s_%d", requested, attempt)
}

// Initials returns the uppercased first letter of every word in name
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// CompanyBillNumber formats a per-company bill number such as "KTML-0013"
func CompanyBillNumber(company string, last int64) string {
	initials := Initials(company)
	if initials == "" {
		return ""
	}
	return fmt.Sprintf("%s-%04d", initials, last+1)
}

// CompanySequence extracts the per-company counter from a bill number:
// the part after the first dash, else the trailing digits.
func CompanySequence(billNo string) (int64, bool) {
	if parts := strings.SplitN(billNo, "-", 3); len(parts) > 1 {
		if n, err := strconv.ParseInt(leadingDigits(parts[1]), 10, 64); err == nil {
			return n, true
		}
	}
	if m := trailingDigits.FindString(billNo); m != "" {
		if n, err := strconv.ParseInt(m, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}

// CompanyForPrefix resolves a bill number prefix to a company name.
// fallback (usually the challan's industry) is returned for unknown prefixes.
func CompanyForPrefix(billNo, fallback string) string {
	prefix := billNo
	if i := strings.Index(billNo, "-"); i >= 0 {
		prefix = billNo[:i]
	}
	if name, ok := knownPrefixes[strings.ToUpper(strings.TrimSpace(prefix))]; ok {
		return name
	}
	return fallback
}

// Label is how a bill number is printed: dashed numbers as is, plain
// numbers zero padded to 5 digits ("41" → "00041").
func Label(billNo string) string {
	if strings.Contains(billNo, "-") {
		return billNo
	}
	if n, err := strconv.ParseInt(billNo, 10, 64); err == nil && n >= 0 {
		return fmt.Sprintf("%05d", n)
	}
	return billNo
}

// SuffixNumber returns the value of the trailing digits of a bill number,
// 0 when there are none
func SuffixNumber(billNo string) int64 {
	m := trailingDigits.FindString(billNo)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SortBySuffix orders invoices by the trailing digits of their bill numbers
func SortBySuffix(invoices []Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return SuffixNumber(invoices[i].BillNo) < SuffixNumber(invoices[j].BillNo)
	})
}
