package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to ledger reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to ledger reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/reports/summary", h.getPeriodSummary)
	rg.GET("/dashboard", h.getDashboard)
}

// getPeriodSummary godoc
// @Summary Period report
// @Description Income, spending, savings movement and counts for a month, a year or all time
// @Tags reports
// @Produce json
// @Param year query int false "Report year; omit for all time"
// @Param month query int false "Report month (1-12); requires year"
// @Success 200 {object} dto.PeriodReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	period := params.ToPeriod()
	logger = logger.With(slog.String("period", period.String()))
	logger.Info("Generating period report")

	report, err := h.reportingService.PeriodSummary(c.Request.Context(), period)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report))
}

// getDashboard godoc
// @Summary Dashboard
// @Description Balance, savings and budget category totals
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	dashboard, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
