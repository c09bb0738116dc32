package sheetio

import "strings"

// Table is the engine-neutral form every upload is parsed into: one header
// row plus data rows, all values as strings. Rows are padded or truncated to
// the header width at parse time, so indexing by column is always safe.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Warning is a non-fatal condition recorded while parsing a file.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Col returns the index of the named column, matching case-insensitively on
// the trimmed header. Returns -1 when absent.
func (t *Table) Col(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range t.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value at (row, col), or "" for out-of-range
// indexes.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// MissingColumns reports every required column absent from the table, in the
// order requested. An empty result means the table is usable.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if t.Col(name) == -1 {
			missing = append(missing, name)
		}
	}
	return missing
}
