package models

import "time"

// FilterRequest is one user query against a RankTable.
// RankMin > RankMax is allowed and matches nothing.
type FilterRequest struct {
	Category string
	RankMin  int
	RankMax  int
	Branches []string
}

// ResultRow is a projected row of a filter result
type ResultRow struct {
	InstCode      string  `json:"inst_code"`
	InstituteName string  `json:"institute_name"`
	Rank          float64 `json:"rank"`
	BranchCode    string  `json:"branch_code"`
	BranchName    string  `json:"branch_name,omitempty"`
}

// FilterResult holds the rows matching a request, sorted ascending by rank
type FilterResult struct {
	ID        string      `json:"id,omitempty"`
	Category  string      `json:"category"`
	Rows      []ResultRow `json:"rows"`
	CreatedAt time.Time   `json:"created_at"`
}

// Headers returns the column headers in display order
func (r *FilterResult) Headers() []string {
	return []string{ColumnInstCode, ColumnInstituteName, r.Category, ColumnBranchCode, ColumnBranchName}
}

// Table converts the result into a plain table of cells
func (r *FilterResult) Table() *Table {
	t := &Table{Headers: r.Headers()}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []Cell{
			{Text: row.InstCode},
			{Text: row.InstituteName},
			NumberCell(row.Rank),
			{Text: row.BranchCode},
			{Text: row.BranchName},
		})
	}
	return t
}

// Table is an untyped grid, as recovered from markup or built for export
type Table struct {
	Headers []string
	Rows    [][]Cell
}
