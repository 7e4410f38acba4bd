package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// SourceService defines the interface for loading the rank sheet
type SourceService interface {
	FetchRankTable(ctx context.Context) (*models.RankTable, error)
}

// sourceServiceImpl downloads the sheet on every call; nothing is cached
type sourceServiceImpl struct {
	client *resty.Client
	url    string
	logger zerolog.Logger
}

// NewSourceService creates a source service reading the spreadsheet export at url
func NewSourceService(url string, timeout time.Duration, lgr zerolog.Logger) SourceService {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &sourceServiceImpl{
		client: client,
		url:    url,
		logger: lgr.With().Str("component", "source").Logger(),
	}
}

// FetchRankTable downloads and parses the rank sheet.
// Every failure wraps apperrors.ErrSourceUnavailable and is logged here.
func (s *sourceServiceImpl) FetchRankTable(ctx context.Context) (*models.RankTable, error) {
	start := time.Now()
	res, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("Failed to download rank sheet")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	if !res.IsSuccess() {
		s.logger.Error().Int("status", res.StatusCode()).Str("url", s.url).Msg("Rank sheet request returned non-success status")
		return nil, fmt.Errorf("%w: unexpected status %s", apperrors.ErrSourceUnavailable, res.Status())
	}

	table, err := ParseRankSheet(bytes.NewReader(res.Body()))
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("Failed to parse rank sheet")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSourceUnavailable, err)
	}

	s.logger.Debug().Strs("columns", table.Columns).Msg("Cleaned columns")
	s.logger.Info().
		Int("rows", len(table.Rows)).
		Int("categories", len(table.Categories)).
		Dur("elapsed", time.Since(start)).
		Msg("Rank sheet loaded")
	return table, nil
}

// ParseRankSheet reads the first worksheet of an xlsx document.
// The first row is the header; blank rows are skipped.
func ParseRankSheet(r io.Reader) (*models.RankTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", apperrors.ErrSourceMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrSourceMalformed)
	}

	rawRows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", apperrors.ErrSourceMalformed, sheets[0], err)
	}
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", apperrors.ErrSourceMalformed, sheets[0])
	}

	columns := NormalizeHeaders(rawRows[0])
	rows := make([]models.Row, 0, len(rawRows)-1)
	for _, raw := range rawRows[1:] {
		if isBlankRow(raw) {
			continue
		}
		row := make(models.Row, 0, len(columns))
		for _, v := range raw {
			row = append(row, models.NewCell(v))
		}
		rows = append(rows, row)
	}

	table := models.NewRankTable(columns, rows)
	if missing := table.MissingColumns(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", apperrors.ErrSourceMalformed, strings.Join(missing, ", "))
	}
	return table, nil
}

func isBlankRow(raw []string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
