package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/service"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/response"
)

// DepartmentHandler exposes department administration endpoints.
type DepartmentHandler struct {
	service *service.DepartmentService
}

// NewDepartmentHandler constructs the handler.
func NewDepartmentHandler(svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: svc}
}

// List returns every department.
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments, nil)
}

// Create adds a department.
func (h *DepartmentHandler) Create(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "department name required"))
		return
	}

	department, err := h.service.Create(c.Request.Context(), payload.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, department)
}

// Delete removes a department. Departments with members or records are
// rejected with a conflict.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
