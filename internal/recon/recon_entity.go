package recon

import "time"

// WorkOrderRecord is one row of the Pillar report: a unit of billable work
// with the hour figures the reconciliation compares. Rows with no activity
// (performed + billed == 0) are dropped before joining.
type WorkOrderRecord struct {
	Location              string
	CustomerCode          string
	CustomerName          string
	OrderNo               string
	InvoiceNo             string
	SOLineNo              string
	PostCount             float64
	DeploymentHrs         float64
	TaskID                string
	PerformedHrs          float64
	BilledHrs             float64
	BilledVsPerformed     float64
	ContractedVsPerformed float64
	BillingPattern        string
	ERPContHrs            float64
	SaturnContHrs         float64
	ScheduledHrs          float64
}

// InvoicePeriod is one row of the Invoice Dump: an order's billing period and
// the invoice date used to pick the authoritative row when an order appears
// more than once.
type InvoicePeriod struct {
	OrderNo     string
	PeriodFrom  time.Time
	PeriodTo    time.Time
	InvoiceDate time.Time
	SourceRow   int
}

// OwnershipRecord maps a location+customer composite key to a business owner.
type OwnershipRecord struct {
	Key   string // keynorm.RowKey(location, customer code)
	Owner string
}

// HubZone is the static organizational classification of a location.
type HubZone struct {
	Hub  string
	Zone string
}

// CycleBounds is a billing cycle as day-of-month boundaries, parsed from an
// attendance column header. StartDay > EndDay means the cycle crosses a month
// boundary.
type CycleBounds struct {
	StartDay int
	EndDay   int
}

// AttendanceEntry is one flattened fact from the attendance sheet: a row key
// and cycle with its attendance count.
type AttendanceEntry struct {
	RowKey string // keynorm.RowKey of the sheet's label column
	Bounds CycleBounds
	Count  float64
}

// JoinedRecord is a work-order row after enrichment. Pointer fields stay nil
// when the corresponding lookup found no match; those rows still flow into
// the pivot.
type JoinedRecord struct {
	WorkOrderRecord
	Hub        string
	Zone       string
	Owner      string
	PeriodFrom *time.Time
	PeriodTo   *time.Time
	Attendance *float64
}

// PivotRow is one row of the final output: a unique hierarchy/order/period
// combination with its summed measures and variance.
type PivotRow struct {
	Hub          string     `json:"hub"`
	Location     string     `json:"location"`
	Zone         string     `json:"zone"`
	Owner        string     `json:"owner"`
	CustomerCode string     `json:"customer_code"`
	CustomerName string     `json:"customer_name"`
	OrderNo      string     `json:"order_no"`
	InvoiceNo    string     `json:"invoice_no"`
	TaskID       string     `json:"task_id"`
	PeriodFrom   *time.Time `json:"period_from,omitempty"`
	PeriodTo     *time.Time `json:"period_to,omitempty"`
	Attendance   float64    `json:"attendance"`
	PerformedHrs float64    `json:"performed_hrs"`
	BilledHrs    float64    `json:"billed_hrs"`
	Variance     float64    `json:"variance"`
}
