package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	reports   *services.ReportService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService, reports *services.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		reports:   reports,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/analytics")
	{
		group.GET("/summary", h.Summary)
		group.GET("/calendar", h.Calendar)
		group.GET("/weekly", h.Weekly)
		group.GET("/weekly/export", h.ExportWeekly)
		group.GET("/dashboard", h.Dashboard)
	}
	router.GET("/milestones", h.Milestones)
}

// Summary godoc
// @Summary Streaks, rates, mood trend, achievements and insights for today
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.AnalyticsSummary
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Calendar godoc
// @Summary Month calendar with per-day activity levels
// @Tags Analytics
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} domain.MonthCalendar
// @Router /analytics/calendar [get]
func (h *AnalyticsHandler) Calendar(c *gin.Context) {
	year, okYear := intQuery(c, "year")
	month, okMonth := intQuery(c, "month")
	if !okYear || !okMonth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be numbers"})
		return
	}

	cal, err := h.analytics.Calendar(c.Request.Context(), year, time.Month(month))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}
	report, err := h.analytics.Weekly(c.Request.Context(), day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportWeekly godoc
// @Summary Download the weekly report
// @Tags Analytics
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param date query string false "Last day of the week, YYYY-MM-DD"
// @Success 200 {file} file
// @Router /analytics/weekly/export [get]
func (h *AnalyticsHandler) ExportWeekly(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}

	out, err := h.reports.ExportWeekly(c.Request.Context(), day, c.Query("format"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Body)
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dash, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *AnalyticsHandler) Milestones(c *gin.Context) {
	milestones, err := h.analytics.Milestones(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}
