package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/schema"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/spreadsheet"
)

type workbookRecordService interface {
	List(ctx context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]models.ReportRecord, *models.Pagination, error)
	Create(ctx context.Context, actor *models.Actor, kindID string, payload models.RecordPayload) (*models.ReportRecord, error)
}

// WorkbookService moves records in and out of xlsx workbooks. Exports
// honour the caller's visibility scope; imports run each row through the
// same validation and ownership stamping as a direct create.
type WorkbookService struct {
	registry *schema.Registry
	records  workbookRecordService
	metrics  *MetricsService
	logger   *zap.Logger
	maxRows  int
}

// NewWorkbookService constructs a WorkbookService.
func NewWorkbookService(registry *schema.Registry, records workbookRecordService, metrics *MetricsService, logger *zap.Logger, maxRows int) *WorkbookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRows <= 0 {
		maxRows = 5000
	}
	return &WorkbookService{registry: registry, records: records, metrics: metrics, logger: logger, maxRows: maxRows}
}

// Export renders every record of the kind the actor may see into a
// workbook, honouring the supplied filters.
func (s *WorkbookService) Export(ctx context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]byte, string, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, "", err
	}

	var all []models.ReportRecord
	filter.PageSize = 100
	for page := 1; ; page++ {
		filter.Page = page
		records, pagination, err := s.records.List(ctx, actor, kindID, filter)
		if err != nil {
			return nil, "", err
		}
		all = append(all, records...)
		if len(all) >= pagination.TotalCount || len(records) == 0 {
			break
		}
	}

	data, err := spreadsheet.BuildExport(desc, all)
	if err != nil {
		return nil, "", err
	}

	s.metrics.RecordExport(kindID, "export")
	return data, workbookFilename(kindID, "export"), nil
}

// Template renders the empty fill-in workbook for the kind.
func (s *WorkbookService) Template(kindID string) ([]byte, string, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, "", err
	}

	data, err := spreadsheet.BuildTemplate(desc)
	if err != nil {
		return nil, "", err
	}

	s.metrics.RecordExport(kindID, "template")
	return data, workbookFilename(kindID, "template"), nil
}

// Import reads a filled-in template and creates one record per row for
// the given year and quarter. Rows fail independently: a bad row is
// reported in the summary and the rest of the file still imports.
func (s *WorkbookService) Import(ctx context.Context, actor *models.Actor, kindID string, year int, quarter models.Quarter, r io.Reader) (*models.ImportSummary, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, err
	}
	if !quarter.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "quarter must be one of Q1..Q4")
	}

	rows, err := spreadsheet.ParseImport(desc, r, s.maxRows)
	if err != nil {
		return nil, err
	}

	summary := &models.ImportSummary{KindID: kindID}
	for _, row := range rows {
		fields := make(map[string]interface{}, len(row.Values))
		for name, value := range row.Values {
			if value != "" {
				fields[name] = value
			}
		}
		payload := models.RecordPayload{Year: year, Quarter: quarter, Fields: fields}

		if _, err := s.records.Create(ctx, actor, kindID, payload); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, importRowError(row.Number, err))
			continue
		}
		summary.Created++
	}

	s.metrics.RecordImportRows(kindID, summary.Created, summary.Failed)
	s.logger.Info("workbook imported",
		zap.String("kind", kindID),
		zap.Int("created", summary.Created),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func importRowError(row int, err error) models.ImportRowError {
	rowErr := models.ImportRowError{Row: row, Fields: map[string][]string{}}

	var fieldErrs appErrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		for name, messages := range fieldErrs {
			rowErr.Fields[name] = messages
		}
		return rowErr
	}

	rowErr.Fields["row"] = []string{appErrors.FromError(err).Message}
	return rowErr
}

func workbookFilename(kindID, variant string) string {
	return fmt.Sprintf("%s_%s.xlsx", strings.ReplaceAll(kindID, ".", "_"), variant)
}
