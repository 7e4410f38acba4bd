package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/rankfinder/internal/app/models"
)

// buildWorkbook writes rows to Sheet1 of a new workbook and returns the xlsx bytes
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// readWorkbook returns the raw rows of the first sheet
func readWorkbook(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

var rankHeader = []interface{}{"Inst Code", "Institute Name", "OC\r\nBOYS", "SC  GIRLS", "Branch Code"}

// sampleTable is a small rank table with a tie, a blank rank and an unknown branch
func sampleTable() *models.RankTable {
	columns := []string{"Inst Code", "Institute Name", "OC BOYS", "SC GIRLS", "Branch Code"}
	rows := []models.Row{
		{models.NewCell("INST01"), models.NewCell("ABC College"), models.NewCell("500"), models.NewCell("900"), models.NewCell("CSE")},
		{models.NewCell("INST02"), models.NewCell("XYZ College"), models.NewCell("300"), models.NewCell(""), models.NewCell("ECE")},
		{models.NewCell("INST03"), models.NewCell("PQR College"), models.NewCell("300"), models.NewCell("100"), models.NewCell("CSE")},
		{models.NewCell("INST04"), models.NewCell("LMN College"), models.NewCell(""), models.NewCell("50"), models.NewCell("CSE")},
		{models.NewCell("INST05"), models.NewCell("DEF College"), models.NewCell("300"), models.NewCell("70"), models.NewCell("ZZZ")},
		{models.NewCell("INST06"), models.NewCell("GHI College"), models.NewCell("1000"), models.NewCell("10"), models.NewCell("ECE")},
	}
	return models.NewRankTable(columns, rows)
}

// informationTechRow has a zero-padded Inst Code and the INF branch code,
// both of which look numeric to a lenient float parser
var informationTechRow = models.Row{
	models.NewCell("0042"), models.NewCell("JNTU College"), models.NewCell("450"), models.NewCell("20"), models.NewCell("INF"),
}

func sampleTableWithINF() *models.RankTable {
	table := sampleTable()
	return models.NewRankTable(table.Columns, append(table.Rows, informationTechRow))
}
