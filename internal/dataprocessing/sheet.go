package dataprocessing

import (
	"strings"
)

// Sheet is one tab of the source spreadsheet: a header row plus zero or more
// data rows, index-aligned with the header. Column lookup is case-insensitive
// via an index map built once at construction, so repeated satellite lookups
// stay linear in header size.
type Sheet struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewSheet builds a Sheet from raw tabular values. The first row is the
// header; it is never treated as data. When the same (lowercased) column name
// appears twice, the first occurrence wins.
func NewSheet(values [][]string) *Sheet {
	s := &Sheet{}
	if len(values) == 0 {
		s.index = map[string]int{}
		return s
	}
	s.Header = values[0]
	s.Rows = values[1:]
	s.index = make(map[string]int, len(s.Header))
	for i, name := range s.Header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := s.index[key]; !ok {
			s.index[key] = i
		}
	}
	return s
}

// ColumnIndex resolves a column name to its header position,
// case-insensitively. The second return reports whether the column exists.
func (s *Sheet) ColumnIndex(name string) (int, bool) {
	i, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// Cell returns the value of row at column index col. Rows may be shorter than
// the header; cells past the end of a row read as empty string.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// CellNamed reads the named column from row, resolving the name against the
// sheet header. A missing column reads as empty string.
func (s *Sheet) CellNamed(row []string, name string) string {
	col, ok := s.ColumnIndex(name)
	if !ok {
		return ""
	}
	return Cell(row, col)
}

// Locate scans the data rows in order and returns the first row whose value
// in keyColumn equals keyValue by exact string comparison. The boolean is
// false when the key column does not exist or no row matches; a missing row
// is a defined absence, not an error.
func (s *Sheet) Locate(keyColumn, keyValue string) ([]string, bool) {
	col, ok := s.ColumnIndex(keyColumn)
	if !ok {
		return nil, false
	}
	for _, row := range s.Rows {
		if Cell(row, col) == keyValue {
			return row, true
		}
	}
	return nil, false
}
