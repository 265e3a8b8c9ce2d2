package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/response"
)

type recordService interface {
	List(ctx context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]models.ReportRecord, *models.Pagination, error)
	Get(ctx context.Context, actor *models.Actor, kindID, id string) (*models.ReportRecord, error)
	Create(ctx context.Context, actor *models.Actor, kindID string, payload models.RecordPayload) (*models.ReportRecord, error)
	Update(ctx context.Context, actor *models.Actor, kindID, id string, payload models.RecordPayload) (*models.ReportRecord, error)
	Delete(ctx context.Context, actor *models.Actor, kindID, id string) error
}

// RecordHandler exposes the uniform CRUD surface shared by every report
// kind. The kind is a URL parameter; field semantics come from the
// catalog, not from per-kind routes.
type RecordHandler struct {
	service recordService
}

// NewRecordHandler constructs the handler.
func NewRecordHandler(service recordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// reservedQueryKeys are list parameters that are never field filters.
var reservedQueryKeys = map[string]struct{}{
	"year":          {},
	"quarter":       {},
	"department_id": {},
	"page":          {},
	"page_size":     {},
}

// List returns records of one kind visible to the caller.
func (h *RecordHandler) List(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, pagination, err := h.service.List(c.Request.Context(), actorFromContext(c), c.Param("kind"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, pagination)
}

// Get fetches one record by ID.
func (h *RecordHandler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), actorFromContext(c), c.Param("kind"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Create stores a new record owned by the caller.
func (h *RecordHandler) Create(c *gin.Context) {
	var payload models.RecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid record payload"))
		return
	}

	record, err := h.service.Create(c.Request.Context(), actorFromContext(c), c.Param("kind"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Update replaces a record's reporting period and fields.
func (h *RecordHandler) Update(c *gin.Context) {
	var payload models.RecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid record payload"))
		return
	}

	record, err := h.service.Update(c.Request.Context(), actorFromContext(c), c.Param("kind"), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Delete removes a record.
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), c.Param("kind"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// parseRecordFilter maps query params onto a RecordFilter. Reserved
// keys drive period and paging; any other key is treated as a field
// filter and validated downstream against the kind's catalog entry.
func parseRecordFilter(c *gin.Context) (models.RecordFilter, error) {
	filter := models.RecordFilter{
		DepartmentID: strings.TrimSpace(c.Query("department_id")),
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "page_size", 20),
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

	for key, values := range c.Request.URL.Query() {
		if _, reserved := reservedQueryKeys[key]; reserved {
			continue
		}
		if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
			continue
		}
		if filter.Search == nil {
			filter.Search = make(map[string]string)
		}
		filter.Search[key] = strings.TrimSpace(values[0])
	}
	return filter, nil
}
