package dto

import (
	"strings"

	"github.com/yigit/rankfinder/internal/app/models"
)

// FilterForm is the HTML form submitted to POST /.
// Ranks stay strings so malformed input surfaces as a validation message.
type FilterForm struct {
	Category string   `form:"category"`
	RankMin  string   `form:"rank_min"`
	RankMax  string   `form:"rank_max"`
	Branches []string `form:"branches" binding:"dive,branchcode"`
}

// DownloadForm is the form submitted to POST /download
type DownloadForm struct {
	ResultID string `form:"result_id"`
	Data     string `form:"data"`
}

// FilterAPIRequest is the JSON body of POST /api/v1/filter.
// A missing category or empty branch list is reported by the filter service.
type FilterAPIRequest struct {
	Category string   `json:"category" example:"OC BOYS"`
	RankMin  *int     `json:"rank_min" binding:"required" example:"0"`
	RankMax  *int     `json:"rank_max" binding:"required" example:"1000"`
	Branches []string `json:"branches" binding:"dive,branchcode" example:"CSE"`
}

// ToFilterRequest converts the body into a FilterRequest
func (r FilterAPIRequest) ToFilterRequest() models.FilterRequest {
	req := models.FilterRequest{Category: strings.TrimSpace(r.Category), Branches: r.Branches}
	if r.RankMin != nil {
		req.RankMin = *r.RankMin
	}
	if r.RankMax != nil {
		req.RankMax = *r.RankMax
	}
	return req
}

// FilterResponse is returned by POST /api/v1/filter
type FilterResponse struct {
	ResultID    string             `json:"resultId"`
	Category    string             `json:"category"`
	Count       int                `json:"count"`
	Rows        []models.ResultRow `json:"rows"`
	DownloadURL string             `json:"downloadUrl"`
}

// OptionsResponse lists the values the filter form offers
type OptionsResponse struct {
	Categories []models.CategoryColumn `json:"categories"`
	Branches   []models.BranchOption   `json:"branches"`
}
