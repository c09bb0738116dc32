package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satvik-g4s/Hour-Recon/internal/sheetio"
)

func TestLoadPillar_DropsZeroActivityRows(t *testing.T) {
	table := &sheetio.Table{
		Headers: []string{"Location", "Customer Code", "Customer Name", "OrderNo", "InvoiceNo", "SO Line No", "No of Post", "Deployment Hrs", "WF_TaskID", "Performed Hrs", "Billed Hrs", "Billed Vs Performed", "Contracted Vs Performed", "Billing Pattern", "ERP Cont Hrs", "Saturn Cont Hrs", "Scheduled Hrs"},
		Rows: [][]string{
			{"DOMGRD", "7401", "Acme", "SO-1", "INV-1", "10", "2", "8", "T1", "100", "120", "20", "0", "M", "0", "0", "0"},
			{"DOMGRD", "7401", "Acme", "SO-2", "INV-2", "10", "2", "8", "T1", "0", "0", "0", "0", "M", "0", "0", "0"},
		},
	}

	records := loadPillar(table)
	assert.Len(t, records, 1)
	assert.Equal(t, "SO-1", records[0].OrderNo)
	assert.Equal(t, 100.0, records[0].PerformedHrs)
}

func TestLoadInvoiceDump_SkipsUnparseableDatesWithWarning(t *testing.T) {
	table := &sheetio.Table{
		Headers: []string{"OrderNo", "PeriodFrom", "PeriodTo", "Invoice Date"},
		Rows: [][]string{
			{"SO-1", "2024-03-15", "2024-04-14", "2024-04-20"},
			{"SO-2", "not a date", "2024-04-14", "2024-04-20"},
		},
	}

	periods, warnings := loadInvoiceDump(table)
	assert.Len(t, periods, 1)
	assert.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Row)
}

func TestLoadOwners_KeyColumn(t *testing.T) {
	table := &sheetio.Table{
		Headers: []string{"Key", "Owner"},
		Rows:    [][]string{{"domgrd-7401", "Asha"}},
	}

	owners, missing := loadOwners(table)
	assert.Empty(t, missing)
	assert.Equal(t, "DOMGRD7401", owners[0].Key)
}

func TestLoadOwners_CompositeColumns(t *testing.T) {
	table := &sheetio.Table{
		Headers: []string{"Location", "Customer Code", "Owner"},
		Rows:    [][]string{{"DOMGRD", "7401", "Asha"}},
	}

	owners, missing := loadOwners(table)
	assert.Empty(t, missing)
	assert.Equal(t, "DOMGRD7401", owners[0].Key)
}

func TestLoadOwners_MissingColumnsReported(t *testing.T) {
	table := &sheetio.Table{Headers: []string{"Location", "Owner"}}
	_, missing := loadOwners(table)
	assert.NotEmpty(t, missing)

	table = &sheetio.Table{Headers: []string{"Key"}}
	_, missing = loadOwners(table)
	assert.Equal(t, []string{"Owner"}, missing)
}

func TestLoadAttendance_FlattensCycleColumns(t *testing.T) {
	table := &sheetio.Table{
		Headers: []string{"Row Labels", "Sum of 15th to 14th", "Sum of 1st to 31st", "Grand Total"},
		Rows: [][]string{
			{"SO-1-10", "26", "", "26"},
			{"SO-2-10", "", "30", "30"},
		},
	}

	entries, skipped := loadAttendance(table)
	assert.Equal(t, []string{"Grand Total"}, skipped)
	assert.Len(t, entries, 2)
	assert.Equal(t, AttendanceEntry{RowKey: "SO110", Bounds: CycleBounds{15, 14}, Count: 26}, entries[0])
	assert.Equal(t, AttendanceEntry{RowKey: "SO210", Bounds: CycleBounds{1, 31}, Count: 30}, entries[1])
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1234.5, parseNumber("1,234.5"))
	assert.Equal(t, 0.0, parseNumber(""))
	assert.Equal(t, 0.0, parseNumber("n/a"))
	assert.Equal(t, -12.0, parseNumber("-12"))
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{"2024-03-15", "15-03-2024", "15/03/2024", "15-Mar-24", "15-Mar-2024"} {
		parsed, err := parseDate(s)
		assert.NoError(t, err, s)
		assert.Equal(t, day(2024, 3, 15), parsed, s)
	}

	_, err := parseDate("")
	assert.Error(t, err)
}
