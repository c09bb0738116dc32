package recon

import (
	"time"

	"github.com/satvik-g4s/Hour-Recon/internal/sheetio"
)

// nationalSheetName is the consolidated view that always leads the workbook.
const nationalSheetName = "India Conso"

var outputHeaders = []string{
	"HUB", "Location", "Zone", "Owner", "Customer Code",
	"Customer Name", "OrderNo", "InvoiceNo", "WF_TaskID",
	"Period From", "Period To",
	"Attendance", "Performed Hrs", "Billed Hrs", "Var Billed vs Performed",
}

// buildSheets lays the pivot and hub partitions out as workbook sheets: the
// national sheet first, then one sheet per requested hub in request order.
func buildSheets(pivot []PivotRow, hubSheets []HubSheet) []sheetio.Sheet {
	sheets := make([]sheetio.Sheet, 0, len(hubSheets)+1)
	sheets = append(sheets, sheetio.Sheet{
		Name: nationalSheetName,
		Rows: sheetRows(pivot, nil),
	})
	for _, hs := range hubSheets {
		sheets = append(sheets, sheetio.Sheet{
			Name: hs.Hub,
			Rows: sheetRows(hs.Rows, hs.Total),
		})
	}
	return sheets
}

func sheetRows(rows []PivotRow, total *GrandTotal) [][]interface{} {
	out := make([][]interface{}, 0, len(rows)+2)

	header := make([]interface{}, len(outputHeaders))
	for i, h := range outputHeaders {
		header[i] = h
	}
	out = append(out, header)

	for _, row := range rows {
		out = append(out, []interface{}{
			row.Hub, row.Location, row.Zone, row.Owner, row.CustomerCode,
			row.CustomerName, row.OrderNo, row.InvoiceNo, row.TaskID,
			formatSheetDate(row.PeriodFrom), formatSheetDate(row.PeriodTo),
			row.Attendance, row.PerformedHrs, row.BilledHrs, row.Variance,
		})
	}

	if total != nil {
		// Synthetic final row: numeric sums only, non-numeric cells blank.
		out = append(out, []interface{}{
			"", "", "", "", "", "", "", "", "", "", "",
			total.Attendance, total.PerformedHrs, total.BilledHrs, total.Variance,
		})
	}
	return out
}

func formatSheetDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02-Jan-06")
}

// previews converts the export sheets into the on-screen DTO form.
func previews(sheets []sheetio.Sheet) []SheetPreview {
	out := make([]SheetPreview, 0, len(sheets))
	for _, s := range sheets {
		p := SheetPreview{Name: s.Name, Headers: outputHeaders, Rows: [][]interface{}{}}
		if len(s.Rows) > 1 {
			p.Rows = s.Rows[1:]
		}
		out = append(out, p)
	}
	return out
}
