package models

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// decimalNumeral matches plain decimal text; "INF", "NaN", hex and exponents do not
var decimalNumeral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Cell is a single spreadsheet value.
// Numeric is false for empty or non-numeric text, which filters treat as null.
type Cell struct {
	Text    string
	Number  float64
	Numeric bool
}

// NewCell builds a Cell from raw spreadsheet text
func NewCell(text string) Cell {
	c := Cell{Text: text}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return c
	}
	if !decimalNumeral.MatchString(trimmed) {
		return c
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		c.Number = n
		c.Numeric = true
	}
	return c
}

// NumberCell builds a numeric Cell
func NumberCell(n float64) Cell {
	return Cell{Text: FormatNumber(n), Number: n, Numeric: true}
}

// String returns the display form of the cell: the trimmed source text for
// numeric cells, so "0042" stays "0042", and the raw text otherwise
func (c Cell) String() string {
	if c.Numeric {
		if t := strings.TrimSpace(c.Text); t != "" {
			return t
		}
		return FormatNumber(c.Number)
	}
	return c.Text
}

// Canonical reports whether a numeric cell's text is exactly FormatNumber of its
// value, i.e. it can be stored as a number without changing how it reads
func (c Cell) Canonical() bool {
	return c.Numeric && c.String() == FormatNumber(c.Number)
}

// FormatNumber renders whole numbers without a decimal part
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Row is one spreadsheet row aligned with RankTable.Columns
type Row []Cell

// RankTable is the parsed rank sheet for one fetch
type RankTable struct {
	Columns    []string
	Rows       []Row
	Categories []CategoryColumn

	index map[string]int
}

// NewRankTable builds a table from normalized columns and rows.
// Rows shorter than the header are padded with empty cells.
func NewRankTable(columns []string, rows []Row) *RankTable {
	t := &RankTable{
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		t.index[col] = i
	}
	for _, row := range rows {
		for len(row) < len(columns) {
			row = append(row, Cell{})
		}
		t.Rows = append(t.Rows, row[:len(columns)])
	}
	for _, c := range categoryColumns {
		if _, ok := t.index[string(c)]; ok {
			t.Categories = append(t.Categories, c)
		}
	}
	return t
}

// ColumnIndex returns the position of a column
func (t *RankTable) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// MissingColumns lists the required columns absent from the table
func (t *RankTable) MissingColumns() []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := t.index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// HasCategory reports whether the category column was found at load time
func (t *RankTable) HasCategory(category string) bool {
	for _, c := range t.Categories {
		if string(c) == category {
			return true
		}
	}
	return false
}

// Value returns the cell of row i in the named column
func (t *RankTable) Value(i int, column string) Cell {
	col, ok := t.index[column]
	if !ok {
		return Cell{}
	}
	return t.Rows[i][col]
}

// BranchCodes returns the distinct non-empty branch codes present in the table, sorted ascending
func (t *RankTable) BranchCodes() []string {
	col, ok := t.index[ColumnBranchCode]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var codes []string
	for _, row := range t.Rows {
		code := strings.TrimSpace(row[col].Text)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
