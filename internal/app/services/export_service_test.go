package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

func sampleResult(t *testing.T) *models.FilterResult {
	t.Helper()
	result, err := NewFilterService().Filter(sampleTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 0, RankMax: 1000, Branches: []string{"CSE", "ECE", "ZZZ"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Rows)
	return result
}

func sampleResultWithINF(t *testing.T) *models.FilterResult {
	t.Helper()
	result, err := NewFilterService().Filter(sampleTableWithINF(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 0, RankMax: 1000, Branches: []string{"CSE", "ECE", "INF"},
	})
	require.NoError(t, err)
	return result
}

func TestRenderHTML(t *testing.T) {
	markup, err := NewExportService().RenderHTML(sampleResult(t))
	require.NoError(t, err)

	html := string(markup)
	assert.Contains(t, html, `class="dataframe table table-striped table-hover table-bordered"`)
	assert.Contains(t, html, "<th>Inst Code</th>")
	assert.Contains(t, html, "<td>Computer Science Engineering</td>")
	assert.Contains(t, html, "<td>Electronics &amp; Comm Engg</td>")

	order := []string{"Inst Code", "Institute Name", "OC BOYS", "Branch Code", "Branch Name"}
	last := -1
	for _, h := range order {
		idx := strings.Index(html, "<th>"+h+"</th>")
		require.Greater(t, idx, last, "header %q out of order", h)
		last = idx
	}
}

func TestRenderThenParseRoundTrip(t *testing.T) {
	svc := NewExportService()
	result := sampleResultWithINF(t)

	markup, err := svc.RenderHTML(result)
	require.NoError(t, err)

	table, err := svc.ParseHTMLTable(string(markup))
	require.NoError(t, err)

	want := result.Table()
	assert.Equal(t, want.Headers, table.Headers)
	require.Len(t, table.Rows, len(want.Rows))
	for i := range want.Rows {
		require.Len(t, table.Rows[i], len(want.Rows[i]))
		for j := range want.Rows[i] {
			assert.Equal(t, want.Rows[i][j].String(), table.Rows[i][j].String(), "row %d col %d", i, j)
		}
	}

	var inf []models.Cell
	for _, r := range table.Rows {
		if r[3].Text == "INF" {
			inf = r
		}
	}
	require.NotNil(t, inf, "INF row survives the round trip")
	assert.False(t, inf[3].Numeric)
	assert.Equal(t, "0042", inf[0].String())
}

func TestRenderEmptyResult(t *testing.T) {
	svc := NewExportService()
	result := &models.FilterResult{Category: "OC BOYS", Rows: []models.ResultRow{}}

	markup, err := svc.RenderHTML(result)
	require.NoError(t, err)

	table, err := svc.ParseHTMLTable(string(markup))
	require.NoError(t, err)
	assert.Len(t, table.Headers, 5)
	assert.Empty(t, table.Rows)
}

func TestParseHTMLTableNoData(t *testing.T) {
	svc := NewExportService()
	for _, fragment := range []string{"", "   \n", "<p>nothing here</p>", "<table></table>"} {
		_, err := svc.ParseHTMLTable(fragment)
		assert.True(t, errors.Is(err, apperrors.ErrNoData), "fragment %q", fragment)
	}
}

func TestParseHTMLTableHeaderRowWithoutThead(t *testing.T) {
	fragment := `<div><table>
	  <tr><th>Inst Code</th><th>OC BOYS</th></tr>
	  <tr><td>INST01</td><td>42</td></tr>
	  <tr><td>INST02</td><td></td></tr>
	</table><table><tr><td>second</td></tr></table></div>`

	table, err := NewExportService().ParseHTMLTable(fragment)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inst Code", "OC BOYS"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.True(t, table.Rows[0][1].Numeric)
	assert.Equal(t, 42.0, table.Rows[0][1].Number)
	assert.False(t, table.Rows[1][1].Numeric)
}

func TestWriteResultXLSX(t *testing.T) {
	svc := NewExportService()
	result := sampleResult(t)

	data, err := svc.WriteResultXLSX(result)
	require.NoError(t, err)

	rows := readWorkbook(t, data)
	require.Len(t, rows, len(result.Rows)+1)
	assert.Equal(t, result.Headers(), rows[0])
	assert.Equal(t, []string{"INST02", "XYZ College", "300", "ECE", "Electronics & Comm Engg"}, rows[1])
}

func TestWriteTableXLSXFromMarkup(t *testing.T) {
	svc := NewExportService()
	result := sampleResultWithINF(t)

	markup, err := svc.RenderHTML(result)
	require.NoError(t, err)
	table, err := svc.ParseHTMLTable(string(markup))
	require.NoError(t, err)

	data, err := svc.WriteTableXLSX(table)
	require.NoError(t, err)

	rows := readWorkbook(t, data)
	require.Len(t, rows, len(result.Rows)+1)
	for i, r := range result.Rows {
		assert.Equal(t, r.InstCode, rows[i+1][0])
		assert.Equal(t, models.FormatNumber(r.Rank), rows[i+1][2])
		assert.Equal(t, r.BranchCode, rows[i+1][3])
	}
	assert.Contains(t, rows, []string{"0042", "JNTU College", "450", "INF", "Information Technology"})
}
