package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/response"
)

type analyticsService interface {
	Categories() []models.CategorySummary
	CountsByDepartment(ctx context.Context, actor *models.Actor, filter models.CountFilter) ([]models.DepartmentCount, bool, error)
	ExportCounts(ctx context.Context, actor *models.Actor, filter models.CountFilter, format string) ([]byte, string, error)
}

// AnalyticsHandler exposes cross-kind aggregation endpoints.
type AnalyticsHandler struct {
	service analyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Categories lists the aggregation categories and their member kinds.
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Categories(), nil)
}

// Counts returns per-department record counts for one category.
func (h *AnalyticsHandler) Counts(c *gin.Context) {
	filter, err := parseCountFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	counts, cacheHit, err := h.service.CountsByDepartment(c.Request.Context(), actorFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, counts, nil, middleware.ExtractMeta(c))
}

// Export streams the per-department counts as a CSV or PDF download.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	filter, err := parseCountFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	body, contentType, err := h.service.ExportCounts(c.Request.Context(), actorFromContext(c), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "analytics_counts.csv"
	if format == "pdf" {
		filename = "analytics_counts.pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

func parseCountFilter(c *gin.Context) (models.CountFilter, error) {
	filter := models.CountFilter{
		Category: strings.TrimSpace(c.Query("category")),
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "year must be an integer")
		}
		filter.Year = &year
	}
	if raw := strings.TrimSpace(c.Query("quarter")); raw != "" {
		quarter := models.Quarter(raw)
		if !quarter.Valid() {
			return filter, appErrors.Clone(appErrors.ErrValidation, "quarter must be one of Q1, Q2, Q3, Q4")
		}
		filter.Quarter = &quarter
	}
	return filter, nil
}
