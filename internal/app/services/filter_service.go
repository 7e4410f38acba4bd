package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// User-facing validation messages
const (
	MsgAllFieldsRequired = "All fields are required."
	MsgRankNotInteger    = "Rank range must be whole numbers."
	msgColumnNotFound    = "'%s' column not found in the data. Please check again."
)

// ColumnNotFoundMessage returns the message shown when a category column is unknown
func ColumnNotFoundMessage(category string) string {
	return fmt.Sprintf(msgColumnNotFound, category)
}

// FilterService defines the interface for filtering a rank table
type FilterService interface {
	ParseRequest(form dto.FilterForm) (models.FilterRequest, error)
	Filter(table *models.RankTable, req models.FilterRequest) (*models.FilterResult, error)
}

// filterServiceImpl implements the FilterService interface
type filterServiceImpl struct {
	now func() time.Time
}

// NewFilterService creates a new filter service instance
func NewFilterService() FilterService {
	return &filterServiceImpl{now: time.Now}
}

// ParseRequest validates submitted form values and converts them into a FilterRequest
func (s *filterServiceImpl) ParseRequest(form dto.FilterForm) (models.FilterRequest, error) {
	req := models.FilterRequest{
		Category: strings.TrimSpace(form.Category),
		Branches: cleanBranches(form.Branches),
	}
	if req.Category == "" || len(req.Branches) == 0 {
		return req, apperrors.NewValidationError(MsgAllFieldsRequired)
	}

	var err error
	if req.RankMin, err = parseRank(form.RankMin); err != nil {
		return req, err
	}
	if req.RankMax, err = parseRank(form.RankMax); err != nil {
		return req, err
	}
	return req, nil
}

func parseRank(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, MsgRankNotInteger).
			WithDetails(map[string]interface{}{"value": value})
	}
	return n, nil
}

func cleanBranches(branches []string) []string {
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Filter selects rows whose category rank lies in [RankMin, RankMax] and whose
// branch is requested, then sorts them by rank. Rows with equal rank keep
// their sheet order. Rows without a numeric rank never match.
func (s *filterServiceImpl) Filter(table *models.RankTable, req models.FilterRequest) (*models.FilterResult, error) {
	branches := cleanBranches(req.Branches)
	if req.Category == "" || len(branches) == 0 {
		return nil, apperrors.NewValidationError(MsgAllFieldsRequired)
	}
	if !table.HasCategory(req.Category) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, ColumnNotFoundMessage(req.Category)).
			WithDetails(map[string]interface{}{"category": req.Category})
	}

	wanted := make(map[string]struct{}, len(branches))
	for _, b := range branches {
		wanted[b] = struct{}{}
	}

	lo, hi := float64(req.RankMin), float64(req.RankMax)
	result := &models.FilterResult{
		Category:  req.Category,
		Rows:      []models.ResultRow{},
		CreatedAt: s.now(),
	}
	for i := range table.Rows {
		rank := table.Value(i, req.Category)
		if !rank.Numeric || rank.Number < lo || rank.Number > hi {
			continue
		}
		code := strings.TrimSpace(table.Value(i, models.ColumnBranchCode).Text)
		if _, ok := wanted[code]; !ok {
			continue
		}
		name, _ := models.BranchName(code)
		result.Rows = append(result.Rows, models.ResultRow{
			InstCode:      table.Value(i, models.ColumnInstCode).Text,
			InstituteName: table.Value(i, models.ColumnInstituteName).Text,
			Rank:          rank.Number,
			BranchCode:    code,
			BranchName:    name,
		})
	}

	sort.SliceStable(result.Rows, func(a, b int) bool {
		return result.Rows[a].Rank < result.Rows[b].Rank
	})
	return result, nil
}
