package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/app/services"
	"github.com/yigit/rankfinder/internal/bootstrap"
)

var queryFlags struct {
	category string
	rankMin  string
	rankMax  string
	branches []string
	file     string
	out      string
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filters the rank sheet once and prints the matching rows.",
	Args:  cobra.NoArgs,
	RunE:  runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVarP(&queryFlags.category, "category", "c", "", "category column, e.g. \"OC BOYS\"")
	f.StringVar(&queryFlags.rankMin, "min", "", "minimum rank (inclusive)")
	f.StringVar(&queryFlags.rankMax, "max", "", "maximum rank (inclusive)")
	f.StringSliceVarP(&queryFlags.branches, "branch", "b", nil, "branch code, repeatable")
	f.StringVar(&queryFlags.file, "file", "", "read a local .xlsx instead of downloading the sheet")
	f.StringVarP(&queryFlags.out, "out", "o", "", "also write the result to this .xlsx file")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts)
	if err != nil {
		return err
	}
	deps := bootstrap.BuildDependencies(cfg, lgr)

	req, err := deps.FilterService.ParseRequest(dto.FilterForm{
		Category: queryFlags.category,
		RankMin:  queryFlags.rankMin,
		RankMax:  queryFlags.rankMax,
		Branches: queryFlags.branches,
	})
	if err != nil {
		return err
	}

	rankTable, err := loadTable(cmd, deps.SourceService)
	if err != nil {
		return err
	}

	result, err := deps.FilterService.Filter(rankTable, req)
	if err != nil {
		return err
	}

	t := newTable()
	header := table.Row{}
	for _, h := range result.Headers() {
		header = append(header, h)
	}
	t.AppendHeader(header)
	for _, row := range result.Rows {
		t.AppendRow(table.Row{row.InstCode, row.InstituteName, models.FormatNumber(row.Rank), row.BranchCode, row.BranchName})
	}
	t.AppendFooter(table.Row{"", "Rows", strconv.Itoa(len(result.Rows))})
	t.Render()

	if queryFlags.out == "" {
		return nil
	}
	data, err := deps.ExportService.WriteResultXLSX(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(queryFlags.out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", queryFlags.out, err)
	}
	lgr.Info().Str("path", queryFlags.out).Int("rows", len(result.Rows)).Msg("Result written")
	return nil
}

func loadTable(cmd *cobra.Command, source services.SourceService) (*models.RankTable, error) {
	if queryFlags.file == "" {
		return source.FetchRankTable(cmd.Context())
	}
	f, err := os.Open(queryFlags.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return services.ParseRankSheet(f)
}
