package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/schema"
	"github.com/campusworks/qpr-api/pkg/response"
)

// SchemaHandler serves the report-kind catalog so clients can render
// forms and filters without hard-coding field lists.
type SchemaHandler struct {
	registry *schema.Registry
}

// NewSchemaHandler constructs the handler.
func NewSchemaHandler(registry *schema.Registry) *SchemaHandler {
	return &SchemaHandler{registry: registry}
}

type kindSummary struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Audience schema.Audience `json:"audience"`
}

type fieldView struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	Type     schema.FieldType `json:"type"`
	Required bool             `json:"required"`
	Choices  []string         `json:"choices,omitempty"`
	MaxLen   int              `json:"max_len,omitempty"`
	Filter   bool             `json:"filter"`
	Help     string           `json:"help,omitempty"`
}

type kindDetail struct {
	kindSummary
	Fields []fieldView `json:"fields"`
}

// ListKinds returns every report kind in catalog order.
func (h *SchemaHandler) ListKinds(c *gin.Context) {
	ids := h.registry.Kinds()
	kinds := make([]kindSummary, 0, len(ids))
	for _, id := range ids {
		desc, err := h.registry.Describe(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		kinds = append(kinds, kindSummary{ID: desc.ID, Name: desc.Name, Audience: desc.Audience})
	}
	response.JSON(c, http.StatusOK, kinds, nil)
}

// DescribeKind returns the full field schema of one report kind.
func (h *SchemaHandler) DescribeKind(c *gin.Context) {
	desc, err := h.registry.Describe(c.Param("kind"))
	if err != nil {
		response.Error(c, err)
		return
	}

	detail := kindDetail{
		kindSummary: kindSummary{ID: desc.ID, Name: desc.Name, Audience: desc.Audience},
		Fields:      make([]fieldView, 0, len(desc.Fields)),
	}
	for _, f := range desc.Fields {
		detail.Fields = append(detail.Fields, fieldView{
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
			Choices:  f.Choices,
			MaxLen:   f.MaxLen,
			Filter:   f.Filter,
			Help:     f.Help,
		})
	}
	response.JSON(c, http.StatusOK, detail, nil)
}
