package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mentorlink/services/analytics"
	"mentorlink/services/report"
	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgFetchFailed  = "Failed to fetch analytics"
	msgExportFailed = "Failed to export report"
	msgUnauthorized = "Not authorized"
)

// AnalyticsHandler serves the mentor dashboard and report download.
type AnalyticsHandler struct {
	Analytics analytics.AnalyticsService
	Export    report.ExportService
	// Timeout bounds each request's store work; zero disables it.
	Timeout time.Duration
}

func NewAnalyticsHandler(analyticsSvc analytics.AnalyticsService, exportSvc report.ExportService, timeout time.Duration) *AnalyticsHandler {
	return &AnalyticsHandler{
		Analytics: analyticsSvc,
		Export:    exportSvc,
		Timeout:   timeout,
	}
}

func (h *AnalyticsHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// mentorID returns the identity placed on the context by the auth middleware.
func mentorID(c *gin.Context) (string, bool) {
	id := c.GetString(utils.CtxMentorID)
	return id, id != ""
}

// failureStatus maps an expired request deadline to 503 so clients may retry.
func failureStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// GetSummary handles GET /api/analytics/summary?timeframe=last7days|last30days|last90days.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	logger := getLogger(c)

	id, ok := mentorID(c)
	if !ok {
		utils.AnalyticsRequestsTotal.WithLabelValues("summary", "unauthorized").Inc()
		utils.JSONError(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	timeframe := c.Query("timeframe")
	start := time.Now()
	summary, err := h.Analytics.ComputeSummary(ctx, id, timeframe)
	utils.AggregationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("Analytics summary failed",
			zap.String("mentorID", id),
			zap.String("timeframe", timeframe),
			zap.Error(err))
		utils.AnalyticsRequestsTotal.WithLabelValues("summary", "error").Inc()
		utils.JSONError(c, failureStatus(err), msgFetchFailed, err)
		return
	}

	utils.AnalyticsRequestsTotal.WithLabelValues("summary", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}

// ExportReport handles GET /api/analytics/export and streams the PDF back as an attachment.
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	logger := getLogger(c)

	id, ok := mentorID(c)
	if !ok {
		utils.AnalyticsRequestsTotal.WithLabelValues("export", "unauthorized").Inc()
		utils.JSONError(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	start := time.Now()
	file, err := h.Export.Export(ctx, id)
	utils.ReportExportLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("Report export failed",
			zap.String("mentorID", id),
			zap.Bool("render", errors.Is(err, report.ErrRenderFailed)),
			zap.Error(err))
		utils.AnalyticsRequestsTotal.WithLabelValues("export", "error").Inc()
		utils.JSONError(c, failureStatus(err), msgExportFailed, err)
		return
	}

	logger.Info("Report exported", zap.String("mentorID", id), zap.Int("bytes", len(file.Content)))
	utils.AnalyticsRequestsTotal.WithLabelValues("export", "ok").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
