package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/app/repositories"
	"github.com/yigit/rankfinder/internal/app/services"
	"github.com/yigit/rankfinder/internal/app/templates"
	"github.com/yigit/rankfinder/internal/middleware"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// RankController serves the rank filter page, its download endpoint and the JSON API
type RankController struct {
	sourceService services.SourceService
	filterService services.FilterService
	exportService services.ExportService
	results       *repositories.ResultRepository
	logger        zerolog.Logger
}

// NewRankController creates a new RankController
func NewRankController(
	sourceService services.SourceService,
	filterService services.FilterService,
	exportService services.ExportService,
	results *repositories.ResultRepository,
	lgr zerolog.Logger,
) *RankController {
	return &RankController{
		sourceService: sourceService,
		filterService: filterService,
		exportService: exportService,
		results:       results,
		logger:        lgr.With().Str("component", "rank_controller").Logger(),
	}
}

type categoryOption struct {
	Value    string
	Selected bool
}

type branchOption struct {
	Code     string
	Name     string
	Selected bool
}

// indexPage is the view model of templates.IndexPage
type indexPage struct {
	Categories   []categoryOption
	Branches     []branchOption
	RankMin      string
	RankMax      string
	Error        string
	HasResult    bool
	Result       template.HTML
	ResultMarkup string
	ResultID     string
	RowCount     int
}

func newIndexPage(table *models.RankTable) *indexPage {
	page := &indexPage{}
	for _, c := range models.CategoryColumns() {
		page.Categories = append(page.Categories, categoryOption{Value: string(c)})
	}
	for _, opt := range models.NewBranchOptions(table.BranchCodes()) {
		page.Branches = append(page.Branches, branchOption{Code: opt.Code, Name: opt.Name})
	}
	return page
}

// keepSelection echoes the submitted values back into the form
func (p *indexPage) keepSelection(form dto.FilterForm) {
	p.RankMin = form.RankMin
	p.RankMax = form.RankMax
	for i := range p.Categories {
		p.Categories[i].Selected = p.Categories[i].Value == form.Category
	}
	selected := make(map[string]bool, len(form.Branches))
	for _, b := range form.Branches {
		selected[b] = true
	}
	for i := range p.Branches {
		p.Branches[i].Selected = selected[p.Branches[i].Code]
	}
}

// Index renders the filter page and, on POST, the filtered result.
// The rank sheet is downloaded on every call.
func (c *RankController) Index(ctx *gin.Context) {
	table, err := c.sourceService.FetchRankTable(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	page := newIndexPage(table)
	if ctx.Request.Method == http.MethodPost {
		if err := c.applyFilter(ctx, table, page); err != nil {
			middleware.HandlePageError(ctx, err)
			return
		}
	}

	ctx.HTML(http.StatusOK, templates.IndexPage, page)
}

// applyFilter fills page with the result or a validation message.
// Only unexpected failures are returned.
func (c *RankController) applyFilter(ctx *gin.Context, table *models.RankTable, page *indexPage) error {
	var form dto.FilterForm
	if err := ctx.ShouldBind(&form); err != nil {
		page.Error = dto.HandleValidationError(err).Message
		return nil
	}
	page.keepSelection(form)

	req, err := c.filterService.ParseRequest(form)
	if err != nil {
		return c.validationOrError(page, err)
	}
	result, err := c.filterService.Filter(table, req)
	if err != nil {
		return c.validationOrError(page, err)
	}

	markup, err := c.exportService.RenderHTML(result)
	if err != nil {
		return err
	}

	page.HasResult = true
	page.Result = markup
	page.ResultMarkup = string(markup)
	page.ResultID = c.results.Save(result)
	page.RowCount = len(result.Rows)

	c.logger.Info().
		Str("category", req.Category).
		Int("rankMin", req.RankMin).
		Int("rankMax", req.RankMax).
		Strs("branches", req.Branches).
		Int("rows", page.RowCount).
		Str("resultId", page.ResultID).
		Msg("Filter applied")
	return nil
}

func (c *RankController) validationOrError(page *indexPage, err error) error {
	if errors.Is(err, apperrors.ErrValidationFailed) {
		page.Error = apperrors.UserMessage(err)
		return nil
	}
	return err
}

// Download sends the filtered rows as filtered_results.xlsx.
// A stored result id is preferred; otherwise the posted table markup is re-parsed.
func (c *RankController) Download(ctx *gin.Context) {
	var form dto.DownloadForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.logger.Debug().Err(err).Msg("Download form did not bind")
	}

	if form.ResultID != "" {
		result, err := c.results.Get(form.ResultID)
		if err == nil {
			c.sendResult(ctx, result)
			return
		}
		c.logger.Debug().Err(err).Msg("Stored result unavailable, falling back to posted markup")
	}

	table, err := c.exportService.ParseHTMLTable(form.Data)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	data, err := c.exportService.WriteTableXLSX(table)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	sendXLSX(ctx, data)
}

func (c *RankController) sendResult(ctx *gin.Context, result *models.FilterResult) {
	data, err := c.exportService.WriteResultXLSX(result)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	sendXLSX(ctx, data)
}

func sendXLSX(ctx *gin.Context, data []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	ctx.Data(http.StatusOK, services.XLSXContentType, data)
}
