package recon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/satvik-g4s/Hour-Recon/internal/shared/keynorm"
	"github.com/satvik-g4s/Hour-Recon/internal/sheetio"
)

// Required columns of the Pillar report. Missing any of these is a hard
// validation failure before processing starts.
var pillarRequiredColumns = []string{
	"Location", "Customer Code", "Customer Name", "OrderNo",
	"InvoiceNo", "SO Line No", "No of Post", "Deployment Hrs",
	"WF_TaskID", "Performed Hrs", "Billed Hrs",
	"Billed Vs Performed", "Contracted Vs Performed",
	"Billing Pattern", "ERP Cont Hrs", "Saturn Cont Hrs",
	"Scheduled Hrs",
}

var invoiceDumpRequiredColumns = []string{
	"OrderNo", "PeriodFrom", "PeriodTo", "Invoice Date",
}

// Date layouts seen across ERP and spreadsheet exports, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"02-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	"01-02-06",
	"1/2/06 15:04",
}

// loadPillar converts the Pillar table into work-order records, dropping
// zero-activity rows (performed + billed == 0).
func loadPillar(t *sheetio.Table) []WorkOrderRecord {
	col := func(name string) int { return t.Col(name) }
	var records []WorkOrderRecord
	for i := range t.Rows {
		rec := WorkOrderRecord{
			Location:              t.Cell(i, col("Location")),
			CustomerCode:          t.Cell(i, col("Customer Code")),
			CustomerName:          t.Cell(i, col("Customer Name")),
			OrderNo:               t.Cell(i, col("OrderNo")),
			InvoiceNo:             t.Cell(i, col("InvoiceNo")),
			SOLineNo:              t.Cell(i, col("SO Line No")),
			PostCount:             parseNumber(t.Cell(i, col("No of Post"))),
			DeploymentHrs:         parseNumber(t.Cell(i, col("Deployment Hrs"))),
			TaskID:                t.Cell(i, col("WF_TaskID")),
			PerformedHrs:          parseNumber(t.Cell(i, col("Performed Hrs"))),
			BilledHrs:             parseNumber(t.Cell(i, col("Billed Hrs"))),
			BilledVsPerformed:     parseNumber(t.Cell(i, col("Billed Vs Performed"))),
			ContractedVsPerformed: parseNumber(t.Cell(i, col("Contracted Vs Performed"))),
			BillingPattern:        t.Cell(i, col("Billing Pattern")),
			ERPContHrs:            parseNumber(t.Cell(i, col("ERP Cont Hrs"))),
			SaturnContHrs:         parseNumber(t.Cell(i, col("Saturn Cont Hrs"))),
			ScheduledHrs:          parseNumber(t.Cell(i, col("Scheduled Hrs"))),
		}
		if rec.PerformedHrs+rec.BilledHrs == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// loadInvoiceDump converts the dump into invoice periods. Rows whose dates do
// not parse are skipped with a warning; they cannot take part in the period
// join and must not shadow a valid row during dedup.
func loadInvoiceDump(t *sheetio.Table) ([]InvoicePeriod, []sheetio.Warning) {
	orderCol := t.Col("OrderNo")
	fromCol := t.Col("PeriodFrom")
	toCol := t.Col("PeriodTo")
	dateCol := t.Col("Invoice Date")

	var periods []InvoicePeriod
	var warnings []sheetio.Warning
	for i := range t.Rows {
		rowNum := i + 2
		from, err1 := parseDate(t.Cell(i, fromCol))
		to, err2 := parseDate(t.Cell(i, toCol))
		invDate, err3 := parseDate(t.Cell(i, dateCol))
		if err := firstErr(err1, err2, err3); err != nil {
			warnings = append(warnings, sheetio.Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("invoice dump row skipped: %v", err),
			})
			continue
		}
		periods = append(periods, InvoicePeriod{
			OrderNo:     t.Cell(i, orderCol),
			PeriodFrom:  from,
			PeriodTo:    to,
			InvoiceDate: invDate,
			SourceRow:   rowNum,
		})
	}
	return periods, warnings
}

// loadOwners accepts either a prebuilt "Key" column or separate Location and
// Customer Code columns from which the composite key is derived. Returns the
// column names that were missing when neither shape is present.
func loadOwners(t *sheetio.Table) ([]OwnershipRecord, []string) {
	ownerCol := t.Col("Owner")
	if ownerCol == -1 {
		return nil, []string{"Owner"}
	}

	keyCol := t.Col("Key")
	locCol := t.Col("Location")
	custCol := t.Col("Customer Code")
	if keyCol == -1 && (locCol == -1 || custCol == -1) {
		return nil, []string{"Key (or Location + Customer Code)"}
	}

	var records []OwnershipRecord
	for i := range t.Rows {
		var key string
		if keyCol != -1 {
			key = keynorm.RowKey(t.Cell(i, keyCol))
		} else {
			key = keynorm.RowKey(t.Cell(i, locCol), t.Cell(i, custCol))
		}
		if key == "" {
			continue
		}
		records = append(records, OwnershipRecord{
			Key:   key,
			Owner: t.Cell(i, ownerCol),
		})
	}
	return records, nil
}

// loadAttendance flattens the wide attendance sheet: the first column is the
// row key, every other column whose header parses as a cycle contributes one
// entry per row. Headers that are not cycle columns are reported back so the
// run can surface them as parse warnings.
func loadAttendance(t *sheetio.Table) (entries []AttendanceEntry, skippedHeaders []string) {
	if len(t.Headers) == 0 {
		return nil, nil
	}
	type cycleCol struct {
		idx    int
		bounds CycleBounds
	}
	var cycleCols []cycleCol
	for j := 1; j < len(t.Headers); j++ {
		bounds, ok := ExtractCycleBounds(t.Headers[j])
		if !ok {
			skippedHeaders = append(skippedHeaders, t.Headers[j])
			continue
		}
		cycleCols = append(cycleCols, cycleCol{idx: j, bounds: bounds})
	}

	for i := range t.Rows {
		rowKey := keynorm.RowKey(t.Cell(i, 0))
		if rowKey == "" {
			continue
		}
		for _, cc := range cycleCols {
			raw := t.Cell(i, cc.idx)
			if raw == "" {
				continue
			}
			entries = append(entries, AttendanceEntry{
				RowKey: rowKey,
				Bounds: cc.bounds,
				Count:  parseNumber(raw),
			})
		}
	}
	return entries, skippedHeaders
}

// parseNumber reads a spreadsheet numeric cell leniently: thousands
// separators stripped, blank or non-numeric cells count as zero.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
