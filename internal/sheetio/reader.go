package sheetio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// ParseResult carries the parsed table plus any recoverable warnings.
type ParseResult struct {
	Table    *Table
	Warnings []Warning
}

// Parse reads an uploaded tabular file into a Table. The engine is chosen by
// extension: .csv via encoding/csv with an encoding fallback, .xlsx/.xlsm via
// excelize, .xls via xlsReader. The first row is always the header row.
func Parse(filename string, data []byte) (*ParseResult, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(data)
	case ".xlsx", ".xlsm":
		return parseXLSX(data)
	case ".xls":
		return parseXLS(data)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}

func parseCSV(data []byte) (*ParseResult, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Ragged rows are padded/truncated below rather than rejected.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	result := &ParseResult{Table: &Table{Headers: headers}}
	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}
		result.Table.Rows = append(result.Table.Rows, fitRow(row, len(headers), rowNum, &result.Warnings))
	}
	return result, nil
}

func parseXLSX(data []byte) (*ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}

// parseXLS handles legacy BIFF workbooks. xlsReader only opens files on
// disk, so the upload is spooled to a temp file first.
func parseXLS(data []byte) (*ParseResult, error) {
	tmp, err := os.CreateTemp("", "upload-*.xls")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	workbook, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("workbook has no readable sheets")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			continue
		}
		var values []string
		for _, col := range row.GetCols() {
			if col != nil {
				values = append(values, col.GetString())
			} else {
				values = append(values, "")
			}
		}
		rows = append(rows, values)
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*ParseResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file: no header row")
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	result := &ParseResult{Table: &Table{Headers: headers}}
	for i, row := range rows[1:] {
		result.Table.Rows = append(result.Table.Rows, fitRow(row, len(headers), i+2, &result.Warnings))
	}
	return result, nil
}

// fitRow pads or truncates a data row to the header width, recording a
// warning either way.
func fitRow(row []string, width, rowNum int, warnings *[]Warning) []string {
	if len(row) == width {
		return row
	}
	if len(row) < width {
		*warnings = append(*warnings, Warning{
			Row:     rowNum,
			Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), width),
		})
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}
	*warnings = append(*warnings, Warning{
		Row:     rowNum,
		Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), width),
	})
	return row[:width]
}

// decodeToUTF8 strips a UTF-8 BOM and falls back to Windows-1252 when the
// bytes are not valid UTF-8. Exports from older ERP clients routinely arrive
// in 1252.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, bomUTF8)
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode as windows-1252: %w", err)
	}
	return decoded, nil
}
