package recon

import "strings"

// HubSheet is one per-hub partition of the pivot. A requested hub with no
// matching rows still produces a sheet (Rows empty, Total nil) so "no data"
// stays distinguishable from a mistyped hub name.
type HubSheet struct {
	Hub   string      `json:"hub"`
	Rows  []PivotRow  `json:"rows"`
	Total *GrandTotal `json:"total,omitempty"`
}

// GrandTotal holds the column-wise sums appended as the final row of a
// non-empty hub sheet. Non-numeric columns stay blank in that row.
type GrandTotal struct {
	Attendance   float64 `json:"attendance"`
	PerformedHrs float64 `json:"performed_hrs"`
	BilledHrs    float64 `json:"billed_hrs"`
	Variance     float64 `json:"variance"`
}

// PartitionByHub filters the pivot to each requested hub, in request order,
// appending a grand total to every non-empty subset.
func PartitionByHub(pivot []PivotRow, hubs []string) []HubSheet {
	sheets := make([]HubSheet, 0, len(hubs))
	for _, hub := range hubs {
		name := strings.TrimSpace(hub)
		if name == "" {
			continue
		}
		sheet := HubSheet{Hub: name, Rows: []PivotRow{}}
		for _, row := range pivot {
			if row.Hub == name {
				sheet.Rows = append(sheet.Rows, row)
			}
		}
		if len(sheet.Rows) > 0 {
			total := &GrandTotal{}
			for _, row := range sheet.Rows {
				total.Attendance += row.Attendance
				total.PerformedHrs += row.PerformedHrs
				total.BilledHrs += row.BilledHrs
				total.Variance += row.Variance
			}
			sheet.Total = total
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

// SplitHubList parses the user's comma-separated hub selection, dropping
// blanks but preserving order and duplicates' first position.
func SplitHubList(s string) []string {
	var hubs []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		hubs = append(hubs, name)
	}
	return hubs
}
