package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDedupInvoicePeriods_LatestInvoiceDateWins(t *testing.T) {
	periods := []InvoicePeriod{
		{OrderNo: "ABC123", PeriodFrom: day(2024, 1, 15), PeriodTo: day(2024, 2, 14), InvoiceDate: day(2024, 1, 10), SourceRow: 2},
		{OrderNo: "ABC123", PeriodFrom: day(2024, 2, 15), PeriodTo: day(2024, 3, 14), InvoiceDate: day(2024, 2, 15), SourceRow: 3},
	}

	deduped := DedupInvoicePeriods(periods)
	assert.Len(t, deduped, 1)
	assert.Equal(t, day(2024, 2, 15), deduped["ABC123"].InvoiceDate)
	assert.Equal(t, day(2024, 2, 15), deduped["ABC123"].PeriodFrom)
}

func TestDedupInvoicePeriods_TieKeepsFirstSourceRow(t *testing.T) {
	periods := []InvoicePeriod{
		{OrderNo: "ABC123", InvoiceDate: day(2024, 2, 15), SourceRow: 2},
		{OrderNo: "ABC123", InvoiceDate: day(2024, 2, 15), SourceRow: 3},
	}

	deduped := DedupInvoicePeriods(periods)
	assert.Equal(t, 2, deduped["ABC123"].SourceRow)
}

func TestDedupInvoicePeriods_OrderIndependent(t *testing.T) {
	a := InvoicePeriod{OrderNo: "X1", InvoiceDate: day(2024, 1, 1), SourceRow: 2}
	b := InvoicePeriod{OrderNo: "X1", InvoiceDate: day(2024, 3, 1), SourceRow: 3}

	first := DedupInvoicePeriods([]InvoicePeriod{a, b})
	second := DedupInvoicePeriods([]InvoicePeriod{b, a})
	assert.Equal(t, first["X1"].InvoiceDate, second["X1"].InvoiceDate)
}

func TestDedupInvoicePeriods_NormalizesOrderNumbers(t *testing.T) {
	periods := []InvoicePeriod{
		{OrderNo: " abc123 ", InvoiceDate: day(2024, 1, 1)},
	}

	deduped := DedupInvoicePeriods(periods)
	_, ok := deduped["ABC123"]
	assert.True(t, ok)
}
