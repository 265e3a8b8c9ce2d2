package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

type fakeAnalyticsSrv struct {
	categories []models.CategorySummary
	counts     []models.DepartmentCount
	cacheHit   bool
	err        error
	exportBody []byte
	exportType string
	lastFilter models.CountFilter
	lastFormat string
}

func (f *fakeAnalyticsSrv) Categories() []models.CategorySummary {
	return f.categories
}

func (f *fakeAnalyticsSrv) CountsByDepartment(_ context.Context, _ *models.Actor, filter models.CountFilter) ([]models.DepartmentCount, bool, error) {
	f.lastFilter = filter
	return f.counts, f.cacheHit, f.err
}

func (f *fakeAnalyticsSrv) ExportCounts(_ context.Context, _ *models.Actor, filter models.CountFilter, format string) ([]byte, string, error) {
	f.lastFilter = filter
	f.lastFormat = format
	return f.exportBody, f.exportType, f.err
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "a1", Role: models.RoleAdmin, FullName: "Registry Admin"}
}

func TestAnalyticsHandlerCountsReportsCacheHit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeAnalyticsSrv{
		counts:   []models.DepartmentCount{{Department: "Physics", Count: 3}},
		cacheHit: true,
	}
	handler := NewAnalyticsHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/counts?category=faculty_awards_and_initiatives&year=2025&quarter=Q1", nil)
	c.Set(middleware.ContextUserKey, adminClaims())

	handler.Counts(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "faculty_awards_and_initiatives", srv.lastFilter.Category)
	require.NotNil(t, srv.lastFilter.Year)
	assert.Equal(t, 2025, *srv.lastFilter.Year)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
		Meta map[string]interface{}   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Physics", envelope.Data[0]["department"])
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestAnalyticsHandlerCountsRejectsBadYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(&fakeAnalyticsSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/counts?year=twenty", nil)
	c.Set(middleware.ContextUserKey, adminClaims())

	handler.Counts(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandlerCountsPropagatesForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(&fakeAnalyticsSrv{err: appErrors.ErrForbidden})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/counts", nil)
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Counts(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnalyticsHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeAnalyticsSrv{exportBody: []byte("department,count\n"), exportType: "text/csv"}
	handler := NewAnalyticsHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/counts/export?format=csv", nil)
	c.Set(middleware.ContextUserKey, adminClaims())

	handler.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", srv.lastFormat)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "analytics_counts.csv")
}

func TestAnalyticsHandlerCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(&fakeAnalyticsSrv{
		categories: []models.CategorySummary{{Key: "student_academics", Name: "Student Academics", Kinds: []string{"S1.1"}}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/categories", nil)

	handler.Categories(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "student_academics", envelope.Data[0]["key"])
}
