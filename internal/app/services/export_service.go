package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// Download constants
const (
	ExportFileName  = "filtered_results.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheetName = "Sheet1"
)

// ResultTableClasses are the CSS classes put on rendered result tables
const ResultTableClasses = "dataframe table table-striped table-hover table-bordered"

var resultTableTmpl = template.Must(template.New("result-table").Parse(
	`<table border="1" class="{{.Classes}}">
  <thead>
    <tr style="text-align: center;">{{range .Headers}}
      <th>{{.}}</th>{{end}}
    </tr>
  </thead>
  <tbody>{{range .Rows}}
    <tr>{{range .}}
      <td>{{.}}</td>{{end}}
    </tr>{{end}}
  </tbody>
</table>`))

// ExportService defines the interface for rendering and exporting results
type ExportService interface {
	RenderHTML(result *models.FilterResult) (template.HTML, error)
	ParseHTMLTable(fragment string) (*models.Table, error)
	WriteTableXLSX(table *models.Table) ([]byte, error)
	WriteResultXLSX(result *models.FilterResult) ([]byte, error)
}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct{}

// NewExportService creates a new export service instance
func NewExportService() ExportService {
	return &exportServiceImpl{}
}

// RenderHTML renders the result as a styled HTML table
func (s *exportServiceImpl) RenderHTML(result *models.FilterResult) (template.HTML, error) {
	table := result.Table()
	rows := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = c.String()
		}
		rows = append(rows, cells)
	}

	var buf bytes.Buffer
	err := resultTableTmpl.Execute(&buf, struct {
		Classes string
		Headers []string
		Rows    [][]string
	}{ResultTableClasses, table.Headers, rows})
	if err != nil {
		return "", fmt.Errorf("render result table: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ParseHTMLTable reads the first <table> of an HTML fragment.
// Header cells come from <thead>, or from a leading row made only of <th>.
// Cell types are re-inferred from text.
func (s *exportServiceImpl) ParseHTMLTable(fragment string) (*models.Table, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, apperrors.ErrNoData
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNoData, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, apperrors.ErrNoData
	}

	// Rows belonging to nested tables are excluded.
	ownRows := func(sel *goquery.Selection) *goquery.Selection {
		return sel.FilterFunction(func(_ int, tr *goquery.Selection) bool {
			return tr.ParentsFiltered("table").First().IsSelection(table)
		})
	}

	header := ownRows(table.Find("thead tr")).First()
	body := ownRows(table.Find("tbody tr"))
	if header.Length() == 0 && body.Length() > 0 {
		first := body.First()
		if first.Children().Filter("th").Length() > 0 && first.Children().Filter("td").Length() == 0 {
			header = first
			body = body.Slice(1, goquery.ToEnd)
		}
	}

	out := &models.Table{}
	header.Children().Filter("th, td").Each(func(_ int, cell *goquery.Selection) {
		out.Headers = append(out.Headers, NormalizeHeader(cell.Text()))
	})
	body.Each(func(_ int, tr *goquery.Selection) {
		var row []models.Cell
		tr.Children().Filter("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, models.NewCell(strings.TrimSpace(cell.Text())))
		})
		out.Rows = append(out.Rows, row)
	})

	if len(out.Headers) == 0 && len(out.Rows) == 0 {
		return nil, apperrors.ErrNoData
	}
	return out, nil
}

// WriteResultXLSX exports the typed result rows; the rank column stays numeric
func (s *exportServiceImpl) WriteResultXLSX(result *models.FilterResult) ([]byte, error) {
	return s.WriteTableXLSX(result.Table())
}

// WriteTableXLSX writes the table to a single-sheet workbook with a bold header row
func (s *exportServiceImpl) WriteTableXLSX(table *models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	rowNum := 1
	if len(table.Headers) > 0 {
		header := make([]interface{}, len(table.Headers))
		for i, h := range table.Headers {
			header[i] = h
		}
		if err := setRow(f, rowNum, header); err != nil {
			return nil, err
		}
		style, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return nil, fmt.Errorf("create header style: %w", err)
		}
		if err := f.SetRowStyle(exportSheetName, rowNum, rowNum, style); err != nil {
			return nil, fmt.Errorf("apply header style: %w", err)
		}
		rowNum++
	}

	for _, r := range table.Rows {
		values := make([]interface{}, len(r))
		for i, c := range r {
			if c.Canonical() {
				values[i] = c.Number
			} else {
				values[i] = c.String()
			}
		}
		if err := setRow(f, rowNum, values); err != nil {
			return nil, err
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
