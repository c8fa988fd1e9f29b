package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brokerfolio/internal/services"
)

// ReportHandler serves the position and movement reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetPositionReport handles the current-position report.
// @Summary     Position report
// @Description Open positions per ticker and broker with average cost and invested value, largest first
// @Tags        reports
// @Produce     json
// @Param       broker_id  query string false "Only transactions at this broker"
// @Param       asset_id   query string false "Only transactions of this asset"
// @Param       operation  query string false "Only buys or only sells (buy, sell)"
// @Param       start_date query string false "Range start, inclusive (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end, inclusive (YYYY-MM-DD)"
// @Param       period     query string false "Calendar period (monthly, annual, specific)"
// @Param       year       query int    false "Year for monthly or annual period"
// @Param       month      query int    false "Month (1-12) for monthly period"
// @Success     200 {object} report.PositionReport "Position report"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     404 {object} ErrorResponse "Broker or asset not found"
// @Router      /reports/position [get]
func (h *ReportHandler) GetPositionReport(c *gin.Context) {
	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rep, err := h.reportService.PositionReport(c.Request.Context(), criteria)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

// GetMovementReport handles the buy/sell movement report.
// @Summary     Movement report
// @Description Buys and sells in the filtered window with their totals and cash balance
// @Tags        reports
// @Produce     json
// @Param       broker_id  query string false "Only transactions at this broker"
// @Param       asset_id   query string false "Only transactions of this asset"
// @Param       operation  query string false "Only buys or only sells (buy, sell)"
// @Param       start_date query string false "Range start, inclusive (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end, inclusive (YYYY-MM-DD)"
// @Param       period     query string false "Calendar period (monthly, annual, specific)"
// @Param       year       query int    false "Year for monthly or annual period"
// @Param       month      query int    false "Month (1-12) for monthly period"
// @Success     200 {object} report.MovementReport "Movement report"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     404 {object} ErrorResponse "Broker or asset not found"
// @Router      /reports/movement [get]
func (h *ReportHandler) GetMovementReport(c *gin.Context) {
	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rep, err := h.reportService.MovementReport(c.Request.Context(), criteria)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}
