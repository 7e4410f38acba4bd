package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/rankfinder/internal/app/models/dto"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// Plain-text messages for the HTML routes
const (
	MsgSourceUnavailable = "Error loading data from the rank sheet."
	MsgNoData            = "No data to download."
	MsgInternal          = "Internal server error"
)

// HandleAPIError handles common API errors and returns appropriate JSON responses
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.UserMessage(err))
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrResultNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Result not found or expired"),
		))
	case errors.Is(err, apperrors.ErrNoData):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoData, MsgNoData).WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, MsgSourceUnavailable),
		))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, MsgInternal),
		))
	}
}

// HandlePageError answers HTML routes with a plain-text message.
// Validation errors never reach here; pages render them inline.
func HandlePageError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case apperrors.Is(err, apperrors.ErrNoData, apperrors.ErrResultNotFound):
		c.String(http.StatusOK, MsgNoData)
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		c.String(http.StatusBadGateway, MsgSourceUnavailable)
	default:
		c.String(http.StatusInternalServerError, MsgInternal)
	}
}
