package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/middleware"
)

// GetOptions lists the categories and the branch codes present in the sheet
// @Summary Get filter options
// @Tags ranks
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OptionsResponse}
// @Failure 502 {object} dto.ErrorResponse "Rank sheet unavailable"
// @Router /options [get]
func (c *RankController) GetOptions(ctx *gin.Context) {
	table, err := c.sourceService.FetchRankTable(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.OptionsResponse{
		Categories: models.CategoryColumns(),
		Branches:   models.NewBranchOptions(table.BranchCodes()),
	}))
}

// FilterRanks filters the rank sheet and stores the result for download
// @Summary Filter ranks
// @Tags ranks
// @Accept json
// @Produce json
// @Param request body dto.FilterAPIRequest true "Filter"
// @Success 200 {object} dto.APIResponse{data=dto.FilterResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 502 {object} dto.ErrorResponse "Rank sheet unavailable"
// @Router /filter [post]
func (c *RankController) FilterRanks(ctx *gin.Context) {
	var body dto.FilterAPIRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	table, err := c.sourceService.FetchRankTable(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.filterService.Filter(table, body.ToFilterRequest())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id := c.results.Save(result)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FilterResponse{
		ResultID:    id,
		Category:    result.Category,
		Count:       len(result.Rows),
		Rows:        result.Rows,
		DownloadURL: "/api/v1/results/" + id + "/download",
	}))
}

// DownloadResult sends a stored result as filtered_results.xlsx
// @Summary Download a filter result
// @Tags ranks
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Result ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Result not found or expired"
// @Router /results/{id}/download [get]
func (c *RankController) DownloadResult(ctx *gin.Context) {
	result, err := c.results.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data, err := c.exportService.WriteResultXLSX(result)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendXLSX(ctx, data)
}

// Health reports liveness and the number of downloadable results
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func (c *RankController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status":  "ok",
		"results": c.results.Len(),
	}))
}
