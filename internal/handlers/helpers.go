package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/logger"
	"brokerfolio/internal/report"
	"brokerfolio/internal/uuid"
	"brokerfolio/internal/validator"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseFlexibleTime accepts either a calendar date (YYYY-MM-DD) or an RFC3339 timestamp.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(validator.CivilDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseReportCriteria builds report criteria from the filter query parameters
// shared by the transaction list and the report endpoints.
func parseReportCriteria(c *gin.Context) (report.Criteria, error) {
	var criteria report.Criteria

	if v := c.Query("broker_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid broker_id")
		}
		criteria.BrokerID = id
	}

	if v := c.Query("asset_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid asset_id")
		}
		criteria.AssetID = id
	}

	if v := c.Query("operation"); v != "" {
		op := report.Operation(v)
		if !op.Valid() {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid operation, must be buy or sell")
		}
		criteria.Operation = &op
	}

	if v := c.Query("start_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid start_date format, use YYYY-MM-DD")
		}
		criteria.StartDate = &t
	}

	if v := c.Query("end_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid end_date format, use YYYY-MM-DD")
		}
		criteria.EndDate = &t
	}

	if v := c.Query("period"); v != "" {
		p := report.Period(v)
		if !p.Valid() {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid period, must be monthly, annual, or specific")
		}
		criteria.Period = p
	}

	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year < 1 {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year")
		}
		criteria.Year = year
	}

	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, must be between 1 and 12")
		}
		criteria.Month = month
	}

	return criteria, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}
