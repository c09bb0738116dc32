package recon

import (
	"strings"
	"time"

	"github.com/satvik-g4s/Hour-Recon/internal/shared/keynorm"
)

const pivotKeySep = "\x1f"

// BuildPivot groups joined records by the full hierarchy/order/period tuple
// and sums the measures, with nil attendance counted as zero. Output rows
// appear in first-seen group order, which makes the pivot deterministic for a
// given input ordering.
//
// Performed hours below zero are floored to zero — negative figures in the
// Pillar export are reversal artifacts, not real work. The one configured
// special customer is exempt: its outlier values are legitimate and pass
// through raw.
func BuildPivot(records []JoinedRecord, specialCustomer string) []PivotRow {
	groups := make(map[string]*PivotRow)
	var order []string

	for _, rec := range records {
		key := pivotKey(rec)
		row, exists := groups[key]
		if !exists {
			row = &PivotRow{
				Hub:          rec.Hub,
				Location:     rec.Location,
				Zone:         rec.Zone,
				Owner:        rec.Owner,
				CustomerCode: rec.CustomerCode,
				CustomerName: rec.CustomerName,
				OrderNo:      rec.OrderNo,
				InvoiceNo:    rec.InvoiceNo,
				TaskID:       rec.TaskID,
				PeriodFrom:   rec.PeriodFrom,
				PeriodTo:     rec.PeriodTo,
			}
			groups[key] = row
			order = append(order, key)
		}
		if rec.Attendance != nil {
			row.Attendance += *rec.Attendance
		}
		row.PerformedHrs += rec.PerformedHrs
		row.BilledHrs += rec.BilledHrs
	}

	special := keynorm.MatchKey(specialCustomer)
	pivot := make([]PivotRow, 0, len(order))
	for _, key := range order {
		row := groups[key]
		if keynorm.MatchKey(row.CustomerCode) != special && row.PerformedHrs < 0 {
			row.PerformedHrs = 0
		}
		row.Variance = row.BilledHrs - row.PerformedHrs
		pivot = append(pivot, *row)
	}
	return pivot
}

func pivotKey(rec JoinedRecord) string {
	return strings.Join([]string{
		rec.Hub,
		rec.Location,
		rec.Zone,
		rec.Owner,
		rec.CustomerCode,
		rec.CustomerName,
		rec.OrderNo,
		rec.InvoiceNo,
		rec.TaskID,
		formatDatePtr(rec.PeriodFrom),
		formatDatePtr(rec.PeriodTo),
	}, pivotKeySep)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02-Jan-06")
}
