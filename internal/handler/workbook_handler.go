package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/response"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type workbookService interface {
	Export(ctx context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]byte, string, error)
	Template(kindID string) ([]byte, string, error)
	Import(ctx context.Context, actor *models.Actor, kindID string, year int, quarter models.Quarter, r io.Reader) (*models.ImportSummary, error)
}

// WorkbookHandler exposes spreadsheet export, template and import
// endpoints for one report kind at a time.
type WorkbookHandler struct {
	service workbookService
}

// NewWorkbookHandler constructs the handler.
func NewWorkbookHandler(service workbookService) *WorkbookHandler {
	return &WorkbookHandler{service: service}
}

// Export streams the caller's visible records of one kind as a workbook.
func (h *WorkbookHandler) Export(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, filename, err := h.service.Export(c.Request.Context(), actorFromContext(c), c.Param("kind"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, workbookContentType, body)
}

// Template streams a blank import workbook with instructions and
// dropdowns for one kind.
func (h *WorkbookHandler) Template(c *gin.Context) {
	body, filename, err := h.service.Template(c.Param("kind"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, workbookContentType, body)
}

// Import ingests an uploaded workbook. The reporting period applies to
// every row; rows fail independently and the summary reports both sides.
func (h *WorkbookHandler) Import(c *gin.Context) {
	year, err := strconv.Atoi(strings.TrimSpace(c.PostForm("year")))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year form field must be an integer"))
		return
	}
	quarter := models.Quarter(strings.TrimSpace(c.PostForm("quarter")))
	if !quarter.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "quarter form field must be one of Q1, Q2, Q3, Q4"))
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file form field is required"))
		return
	}
	defer file.Close()

	summary, err := h.service.Import(c.Request.Context(), actorFromContext(c), c.Param("kind"), year, quarter, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
