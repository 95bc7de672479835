package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentorlink/config"
	"mentorlink/models"
	"mentorlink/services/analytics"
	"mentorlink/services/report"
	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMentorID = "65a1b2c3d4e5f60718293a4b"

type fakeAnalytics struct {
	calls     int
	mentorID  string
	timeframe string
	summary   *models.AnalyticsSummary
	err       error
}

func (f *fakeAnalytics) ComputeSummary(ctx context.Context, mentorID, timeframe string) (*models.AnalyticsSummary, error) {
	f.calls++
	f.mentorID = mentorID
	f.timeframe = timeframe
	return f.summary, f.err
}

type fakeExport struct {
	calls    int
	mentorID string
	file     *models.ReportFile
	err      error
}

func (f *fakeExport) Export(ctx context.Context, mentorID string) (*models.ReportFile, error) {
	f.calls++
	f.mentorID = mentorID
	return f.file, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter mounts the handler behind a stub that stands in for the auth middleware.
func newTestRouter(h *AnalyticsHandler, identity string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if identity != "" {
			c.Set(utils.CtxMentorID, identity)
		}
		c.Next()
	})
	r.GET("/api/analytics/summary", h.GetSummary)
	r.GET("/api/analytics/export", h.ExportReport)
	return r
}

func withEnv(t *testing.T, env string) {
	t.Helper()
	prev := config.AppConfig.Env
	config.AppConfig.Env = env
	t.Cleanup(func() { config.AppConfig.Env = prev })
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetSummary_OK(t *testing.T) {
	svc := &fakeAnalytics{summary: &models.AnalyticsSummary{
		TimeframeStats: []models.DailyBucket{
			{Date: "2024-01-05", Earnings: decimal.NewFromInt(60), Sessions: 2},
			{Date: "2024-01-06", Earnings: decimal.NewFromInt(50), Sessions: 1},
		},
		Summary: models.SummaryStats{
			TotalEarnings: decimal.NewFromInt(110),
			TotalSessions: 4,
			RetentionRate: 100,
			StudentCount:  1,
		},
		Skills: []string{"Go"},
	}}
	h := NewAnalyticsHandler(svc, &fakeExport{}, time.Second)

	w := serve(newTestRouter(h, testMentorID), "/api/analytics/summary?timeframe=last7days")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, testMentorID, svc.mentorID)
	assert.Equal(t, "last7days", svc.timeframe)

	assert.JSONEq(t, `{
		"success": true,
		"data": {
			"timeframeStats": [
				{"date": "2024-01-05", "earnings": 60, "sessions": 2},
				{"date": "2024-01-06", "earnings": 50, "sessions": 1}
			],
			"summary": {"totalEarnings": 110, "totalSessions": 4, "retentionRate": 100, "studentCount": 1},
			"skills": ["Go"]
		}
	}`, w.Body.String())
}

func TestGetSummary_PassesRawTimeframe(t *testing.T) {
	svc := &fakeAnalytics{summary: &models.AnalyticsSummary{}}
	h := NewAnalyticsHandler(svc, &fakeExport{}, 0)

	w := serve(newTestRouter(h, testMentorID), "/api/analytics/summary?timeframe=yesterday")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "yesterday", svc.timeframe)
}

func TestGetSummary_Unauthorized(t *testing.T) {
	svc := &fakeAnalytics{}
	h := NewAnalyticsHandler(svc, &fakeExport{}, time.Second)

	w := serve(newTestRouter(h, ""), "/api/analytics/summary")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.calls)
}

func TestGetSummary_Failure(t *testing.T) {
	cause := &analytics.AggregationError{Step: "daily stats", Err: errors.New("connection reset")}

	t.Run("production hides detail", func(t *testing.T) {
		withEnv(t, "production")
		h := NewAnalyticsHandler(&fakeAnalytics{err: cause}, &fakeExport{}, time.Second)

		w := serve(newTestRouter(h, testMentorID), "/api/analytics/summary")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success": false, "message": "Failed to fetch analytics"}`, w.Body.String())
	})

	t.Run("development includes detail", func(t *testing.T) {
		withEnv(t, "development")
		h := NewAnalyticsHandler(&fakeAnalytics{err: cause}, &fakeExport{}, time.Second)

		w := serve(newTestRouter(h, testMentorID), "/api/analytics/summary")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body utils.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Failed to fetch analytics", body.Message)
		assert.Contains(t, body.Error, "connection reset")
	})
}

func TestGetSummary_DeadlineIsRetryable(t *testing.T) {
	withEnv(t, "production")
	cause := &analytics.AggregationError{Step: "lifetime totals", Err: context.DeadlineExceeded}
	h := NewAnalyticsHandler(&fakeAnalytics{err: cause}, &fakeExport{}, time.Second)

	w := serve(newTestRouter(h, testMentorID), "/api/analytics/summary")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportReport_OK(t *testing.T) {
	exp := &fakeExport{file: &models.ReportFile{
		FileName:    "MentorLink_Report_1704618000000.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.3 fake"),
	}}
	h := NewAnalyticsHandler(&fakeAnalytics{}, exp, time.Second)

	w := serve(newTestRouter(h, testMentorID), "/api/analytics/export")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, testMentorID, exp.mentorID)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=MentorLink_Report_1704618000000.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())
}

func TestExportReport_Unauthorized(t *testing.T) {
	exp := &fakeExport{}
	h := NewAnalyticsHandler(&fakeAnalytics{}, exp, time.Second)

	w := serve(newTestRouter(h, ""), "/api/analytics/export")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, exp.calls)
}

func TestExportReport_Failure(t *testing.T) {
	withEnv(t, "production")

	for name, err := range map[string]error{
		"store":  &report.ExportError{Step: "lifetime totals", Err: errors.New("boom")},
		"render": &report.RenderError{Err: errors.New("font missing")},
	} {
		t.Run(name, func(t *testing.T) {
			h := NewAnalyticsHandler(&fakeAnalytics{}, &fakeExport{err: err}, time.Second)

			w := serve(newTestRouter(h, testMentorID), "/api/analytics/export")
			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Empty(t, w.Header().Get("Content-Disposition"))
			assert.JSONEq(t, `{"success": false, "message": "Failed to export report"}`, w.Body.String())
		})
	}
}
