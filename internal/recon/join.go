package recon

import (
	"github.com/satvik-g4s/Hour-Recon/internal/shared/apperror"
	"github.com/satvik-g4s/Hour-Recon/internal/shared/keynorm"
)

// JoinStats counts match outcomes per enrichment step so unmatched-lookup
// rates stay observable without failing the run.
type JoinStats struct {
	Rows              int `json:"rows"`
	HubMatched        int `json:"hub_matched"`
	OwnerMatched      int `json:"owner_matched"`
	PeriodMatched     int `json:"period_matched"`
	AttendanceMatched int `json:"attendance_matched"`
	// AttendanceDayOnly counts matches made on the day-range label alone,
	// where the record's period dates did not resolve to one clean billing
	// cycle. Coarser than a dated match: any period ending on the same days
	// would have hit the same key.
	AttendanceDayOnly int `json:"attendance_day_only"`
}

// BuildOwnerIndex turns ownership records into a unique-key lookup. A
// duplicate composite key would multiply rows in the owner join, so it is
// rejected here as a data-quality defect rather than absorbed downstream.
func BuildOwnerIndex(records []OwnershipRecord) (map[string]string, error) {
	index := make(map[string]string, len(records))
	for _, r := range records {
		key := keynorm.RowKey(r.Key)
		if key == "" {
			continue
		}
		if _, exists := index[key]; exists {
			return nil, apperror.JoinIntegrity("owner", r.Key)
		}
		index[key] = r.Owner
	}
	return index, nil
}

// BuildAttendanceIndex keys attendance counts by row key plus day-range
// label. Duplicate (row, cycle) facts are a defect in the attendance sheet.
func BuildAttendanceIndex(entries []AttendanceEntry) (map[string]float64, error) {
	index := make(map[string]float64, len(entries))
	for _, e := range entries {
		key := e.RowKey + "|" + DayRangeLabel(e.Bounds)
		if _, exists := index[key]; exists {
			return nil, apperror.JoinIntegrity("attendance", key)
		}
		index[key] = e.Count
	}
	return index, nil
}

// Join enriches every retained work-order row in place order: hub/zone by
// location, owner by location+customer key, period by deduplicated order
// number, attendance by order+line key and billing cycle. Every step is a
// lookup, never a filter — unmatched rows keep nil/empty enrichment and the
// output always has exactly one row per input row.
func Join(
	records []WorkOrderRecord,
	hubZones map[string]HubZone,
	owners map[string]string,
	periods map[string]InvoicePeriod,
	attendance map[string]float64,
) ([]JoinedRecord, JoinStats) {
	joined := make([]JoinedRecord, 0, len(records))
	stats := JoinStats{Rows: len(records)}

	for _, rec := range records {
		jr := JoinedRecord{WorkOrderRecord: rec}

		if hz, ok := hubZones[keynorm.MatchKey(rec.Location)]; ok {
			jr.Hub = hz.Hub
			jr.Zone = hz.Zone
			stats.HubMatched++
		}

		if owner, ok := owners[keynorm.RowKey(rec.Location, rec.CustomerCode)]; ok {
			jr.Owner = owner
			stats.OwnerMatched++
		}

		if p, ok := periods[keynorm.MatchKey(rec.OrderNo)]; ok {
			from, to := p.PeriodFrom, p.PeriodTo
			jr.PeriodFrom = &from
			jr.PeriodTo = &to
			stats.PeriodMatched++
		}

		if jr.PeriodFrom != nil && jr.PeriodTo != nil {
			bounds := CycleBounds{StartDay: jr.PeriodFrom.Day(), EndDay: jr.PeriodTo.Day()}
			key := keynorm.RowKey(rec.OrderNo, rec.SOLineNo) + "|" + DayRangeLabel(bounds)
			if count, ok := attendance[key]; ok {
				c := count
				jr.Attendance = &c
				from, to := ResolveCycleDates(bounds, *jr.PeriodFrom)
				if from.Equal(*jr.PeriodFrom) && to.Equal(*jr.PeriodTo) {
					stats.AttendanceMatched++
				} else {
					stats.AttendanceDayOnly++
				}
			}
		}

		joined = append(joined, jr)
	}

	return joined, stats
}
