// Package services holds the rank finder's business logic.
//
// Services defined in this package:
//   - SourceService: downloads the rank sheet and parses it into a RankTable
//   - FilterService: validates form input and selects matching rows
//   - ExportService: renders results as HTML and writes them as .xlsx
package services
