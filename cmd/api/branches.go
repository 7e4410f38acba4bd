package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yigit/rankfinder/internal/app/models"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Lists the known branch codes and their names.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable()
		t.AppendHeader(table.Row{models.ColumnBranchCode, models.ColumnBranchName})
		for _, opt := range models.NewBranchOptions(models.BranchCodes()) {
			t.AppendRow(table.Row{opt.Code, opt.Name})
		}
		t.Render()
	},
}
