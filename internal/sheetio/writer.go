package sheetio

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

// Sheet is one tab of the output workbook, already laid out as cells.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook renders the sheets into a single .xlsx workbook and returns
// its bytes. Sheet order is preserved; names are truncated to the Excel limit
// and de-duplicated after truncation so no sheet is silently dropped.
func WriteWorkbook(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	seen := make(map[string]int)
	for i, sheet := range sheets {
		name := sheetName(sheet.Name, seen)
		if i == 0 {
			// Replace the default first sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName truncates to the host limit and suffixes duplicates so two hubs
// whose names collide after truncation still get distinct tabs.
func sheetName(name string, seen map[string]int) string {
	if name == "" {
		name = "Sheet"
	}
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	suffix := fmt.Sprintf(" (%d)", n+1)
	if len(name)+len(suffix) > maxSheetNameLen {
		name = name[:maxSheetNameLen-len(suffix)]
	}
	return name + suffix
}
