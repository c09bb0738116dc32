package recon

import "github.com/satvik-g4s/Hour-Recon/internal/sheetio"

// RunRequest is the non-file part of the multipart run form.
type RunRequest struct {
	Hubs string `form:"hubs" binding:"required"`
}

// UploadFile is one uploaded source, already read into memory.
type UploadFile struct {
	Field string // form field name, used in error messages
	Name  string // original filename, drives engine selection
	Data  []byte
}

// RunInput is everything a single reconciliation run consumes.
type RunInput struct {
	Pillar          UploadFile
	InvoiceDump     UploadFile
	Owner           UploadFile
	Attendance      UploadFile
	Hubs            []string
	SpecialCustomer string // empty means the service default
}

// RunStats is the data-quality summary returned with every successful run.
type RunStats struct {
	PillarRows               int               `json:"pillar_rows"`
	RetainedRows             int               `json:"retained_rows"`
	InvoiceRows              int               `json:"invoice_rows"`
	DedupedOrders            int               `json:"deduped_orders"`
	OwnerRecords             int               `json:"owner_records"`
	AttendanceEntries        int               `json:"attendance_entries"`
	SkippedAttendanceColumns []string          `json:"skipped_attendance_columns,omitempty"`
	FileWarnings             []sheetio.Warning `json:"file_warnings,omitempty"`
	Join                     JoinStats         `json:"join"`
}

// SheetPreview is the on-screen rendering of one output sheet.
type SheetPreview struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}

// RunResponse is the envelope data for a completed run.
type RunResponse struct {
	RunID       string         `json:"run_id"`
	DownloadURL string         `json:"download_url"`
	Stats       RunStats       `json:"stats"`
	Sheets      []SheetPreview `json:"sheets"`
}
