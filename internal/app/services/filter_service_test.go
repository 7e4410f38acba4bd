package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

func singleRowTable() *models.RankTable {
	return models.NewRankTable(
		[]string{"Inst Code", "Institute Name", "OC BOYS", "Branch Code"},
		[]models.Row{{
			models.NewCell("INST01"), models.NewCell("ABC College"), models.NewCell("500"), models.NewCell("CSE"),
		}},
	)
}

func TestFilterSingleRowInRange(t *testing.T) {
	svc := NewFilterService()

	result, err := svc.Filter(singleRowTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 0, RankMax: 1000, Branches: []string{"CSE"},
	})
	require.NoError(t, err)

	want := []models.ResultRow{{
		InstCode:      "INST01",
		InstituteName: "ABC College",
		Rank:          500,
		BranchCode:    "CSE",
		BranchName:    "Computer Science Engineering",
	}}
	if diff := cmp.Diff(want, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "OC BOYS", result.Category)
}

func TestFilterKeepsInstCodeText(t *testing.T) {
	result, err := NewFilterService().Filter(sampleTableWithINF(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 400, RankMax: 460, Branches: []string{"INF"},
	})
	require.NoError(t, err)

	want := []models.ResultRow{{
		InstCode:      "0042",
		InstituteName: "JNTU College",
		Rank:          450,
		BranchCode:    "INF",
		BranchName:    "Information Technology",
	}}
	if diff := cmp.Diff(want, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRangeExcludesRow(t *testing.T) {
	result, err := NewFilterService().Filter(singleRowTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 600, RankMax: 1000, Branches: []string{"CSE"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.NotNil(t, result.Rows)
}

func TestFilterUnknownCategory(t *testing.T) {
	_, err := NewFilterService().Filter(singleRowTable(), models.FilterRequest{
		Category: "XYZ", RankMin: 0, RankMax: 1000, Branches: []string{"CSE"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "'XYZ' column not found in the data. Please check again.", err.Error())
}

func TestFilterCategoryMustBeEnumerated(t *testing.T) {
	// "Inst Code" is a real column but not a rank category.
	_, err := NewFilterService().Filter(singleRowTable(), models.FilterRequest{
		Category: "Inst Code", RankMin: 0, RankMax: 1000, Branches: []string{"CSE"},
	})
	require.Error(t, err)
	assert.Equal(t, ColumnNotFoundMessage("Inst Code"), err.Error())

	// An enumerated category absent from this sheet is rejected too.
	_, err = NewFilterService().Filter(singleRowTable(), models.FilterRequest{
		Category: "SC GIRLS", RankMin: 0, RankMax: 1000, Branches: []string{"CSE"},
	})
	require.Error(t, err)
	assert.Equal(t, ColumnNotFoundMessage("SC GIRLS"), err.Error())
}

func TestFilterRequiredFields(t *testing.T) {
	svc := NewFilterService()
	for _, req := range []models.FilterRequest{
		{Category: "", RankMin: 0, RankMax: 10, Branches: []string{"CSE"}},
		{Category: "OC BOYS", RankMin: 0, RankMax: 10},
		{Category: "OC BOYS", RankMin: 0, RankMax: 10, Branches: []string{" ", ""}},
	} {
		_, err := svc.Filter(singleRowTable(), req)
		require.Error(t, err)
		assert.Equal(t, MsgAllFieldsRequired, err.Error())
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	}
}

func TestFilterSortsStablyAndSkipsNullRanks(t *testing.T) {
	result, err := NewFilterService().Filter(sampleTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 0, RankMax: 1000, Branches: []string{"CSE", "ECE"},
	})
	require.NoError(t, err)

	var codes []string
	for _, r := range result.Rows {
		codes = append(codes, r.InstCode)
	}
	// INST02 and INST03 tie at 300 and keep sheet order; INST04 has no rank.
	assert.Equal(t, []string{"INST02", "INST03", "INST01", "INST06"}, codes)

	for i, r := range result.Rows {
		assert.GreaterOrEqual(t, r.Rank, 0.0)
		assert.LessOrEqual(t, r.Rank, 1000.0)
		assert.Contains(t, []string{"CSE", "ECE"}, r.BranchCode)
		if i > 0 {
			assert.LessOrEqual(t, result.Rows[i-1].Rank, r.Rank)
		}
	}
}

func TestFilterInclusiveBoundsAndUnknownBranch(t *testing.T) {
	result, err := NewFilterService().Filter(sampleTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 300, RankMax: 300, Branches: []string{"ZZZ"},
	})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "INST05", result.Rows[0].InstCode)
	assert.Equal(t, "", result.Rows[0].BranchName)
}

func TestFilterInvertedRangeIsEmpty(t *testing.T) {
	result, err := NewFilterService().Filter(sampleTable(), models.FilterRequest{
		Category: "OC BOYS", RankMin: 1000, RankMax: 0, Branches: []string{"CSE", "ECE"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestParseRequest(t *testing.T) {
	svc := NewFilterService()

	req, err := svc.ParseRequest(dto.FilterForm{
		Category: " OC BOYS ", RankMin: " 10 ", RankMax: "2000", Branches: []string{"CSE", "", "ECE"},
	})
	require.NoError(t, err)
	want := models.FilterRequest{Category: "OC BOYS", RankMin: 10, RankMax: 2000, Branches: []string{"CSE", "ECE"}}
	if diff := cmp.Diff(want, req, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRequestErrors(t *testing.T) {
	svc := NewFilterService()
	tests := []struct {
		name string
		form dto.FilterForm
		msg  string
	}{
		{"missing category", dto.FilterForm{RankMin: "1", RankMax: "2", Branches: []string{"CSE"}}, MsgAllFieldsRequired},
		{"missing branches", dto.FilterForm{Category: "OC BOYS", RankMin: "1", RankMax: "2"}, MsgAllFieldsRequired},
		{"non-integer min", dto.FilterForm{Category: "OC BOYS", RankMin: "abc", RankMax: "2", Branches: []string{"CSE"}}, MsgRankNotInteger},
		{"empty max", dto.FilterForm{Category: "OC BOYS", RankMin: "1", Branches: []string{"CSE"}}, MsgRankNotInteger},
		{"decimal max", dto.FilterForm{Category: "OC BOYS", RankMin: "1", RankMax: "2.5", Branches: []string{"CSE"}}, MsgRankNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseRequest(tt.form)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}
