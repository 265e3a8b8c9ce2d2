package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/schema"
	"github.com/campusworks/qpr-api/internal/scope"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// reservedPayloadKeys are bookkeeping columns clients sometimes echo
// back from list responses. They are discarded, never stored and never
// an error; ownership always comes from the authenticated actor.
var reservedPayloadKeys = map[string]struct{}{
	"id":            {},
	"user_id":       {},
	"owner_name":    {},
	"department_id": {},
	"created_at":    {},
	"updated_at":    {},
}

type recordRepository interface {
	List(ctx context.Context, kindID string, sc scope.Scope, filter models.RecordFilter) ([]models.ReportRecord, int, error)
	FindByID(ctx context.Context, kindID, id string, sc scope.Scope) (*models.ReportRecord, error)
	Create(ctx context.Context, rec *models.ReportRecord) error
	Update(ctx context.Context, kindID, id string, sc scope.Scope, payload *models.RecordPayload) error
	Delete(ctx context.Context, kindID, id string, sc scope.Scope) error
}

// RecordService implements the uniform lifecycle shared by every report
// kind: the kind's descriptor drives validation, the actor's scope
// drives visibility, and ownership is stamped server-side.
type RecordService struct {
	registry *schema.Registry
	repo     recordRepository
	cache    *CacheService
	logger   *zap.Logger
}

// NewRecordService constructs a RecordService.
func NewRecordService(registry *schema.Registry, repo recordRepository, cache *CacheService, logger *zap.Logger) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{registry: registry, repo: repo, cache: cache, logger: logger}
}

// List returns the records of one kind the actor may see.
func (s *RecordService) List(ctx context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]models.ReportRecord, *models.Pagination, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateSearch(desc, filter.Search); err != nil {
		return nil, nil, err
	}
	if filter.Quarter != nil && !filter.Quarter.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "quarter must be one of Q1..Q4")
	}
	// Cross-department filtering is an admin affordance; everyone else
	// is already pinned to their own scope.
	if actor.Role != models.RoleAdmin {
		filter.DepartmentID = ""
	}

	records, total, err := s.repo.List(ctx, kindID, scope.For(actor), filter)
	if err != nil {
		return nil, nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return records, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns one record if the actor's scope covers it.
func (s *RecordService) Get(ctx context.Context, actor *models.Actor, kindID, id string) (*models.ReportRecord, error) {
	if _, err := s.registry.Describe(kindID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, kindID, id, scope.For(actor))
}

// Create validates the payload against the kind's descriptor and stores
// a new record owned by the actor. Owner and department always come
// from the authenticated identity, never from the payload.
func (s *RecordService) Create(ctx context.Context, actor *models.Actor, kindID string, payload models.RecordPayload) (*models.ReportRecord, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role == models.RoleStudent && desc.Audience != schema.AudienceStudent {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "students may only submit student report kinds")
	}
	if actor.Role != models.RoleStudent && desc.Audience == schema.AudienceStudent {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "student report kinds accept student submissions only")
	}
	if actor.DepartmentID == nil || *actor.DepartmentID == "" {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "accounts without a department cannot submit records")
	}

	fields, err := CoercePayload(desc, &payload)
	if err != nil {
		return nil, err
	}

	rec := &models.ReportRecord{
		KindID:       kindID,
		UserID:       actor.ID,
		OwnerName:    actor.FullName,
		DepartmentID: *actor.DepartmentID,
		Year:         payload.Year,
		Quarter:      payload.Quarter,
		Fields:       fields,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	s.logger.Info("record created",
		zap.String("kind", kindID),
		zap.String("record_id", rec.ID),
		zap.String("user_id", actor.ID),
	)
	return rec, nil
}

// Update revalidates and replaces the mutable part of a record the
// actor's scope covers. Ownership and department are immutable.
func (s *RecordService) Update(ctx context.Context, actor *models.Actor, kindID, id string, payload models.RecordPayload) (*models.ReportRecord, error) {
	desc, err := s.registry.Describe(kindID)
	if err != nil {
		return nil, err
	}

	fields, err := CoercePayload(desc, &payload)
	if err != nil {
		return nil, err
	}
	payload.Fields = fields

	sc := scope.For(actor)
	if err := s.repo.Update(ctx, kindID, id, sc, &payload); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	return s.repo.FindByID(ctx, kindID, id, sc)
}

// Delete removes a record the actor's scope covers.
func (s *RecordService) Delete(ctx context.Context, actor *models.Actor, kindID, id string) error {
	if _, err := s.registry.Describe(kindID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, kindID, id, scope.For(actor)); err != nil {
		return err
	}
	s.invalidateAnalytics(ctx)
	return nil
}

func (s *RecordService) invalidateAnalytics(ctx context.Context) {
	if s.cache.Enabled() {
		_ = s.cache.Invalidate(ctx, "analytics:*")
	}
}

// CoercePayload validates year, quarter and every field of the payload
// against the descriptor, collecting all problems rather than stopping
// at the first. Values may arrive as native JSON types or as spreadsheet
// cell strings; both coerce through the same rules.
func CoercePayload(desc *schema.KindDescriptor, payload *models.RecordPayload) (map[string]interface{}, error) {
	fieldErrs := appErrors.FieldErrors{}

	if payload.Year < 1990 || payload.Year > 2100 {
		fieldErrs.Add("year", "year must be between 1990 and 2100")
	}
	if !payload.Quarter.Valid() {
		fieldErrs.Add("quarter", "quarter must be one of Q1, Q2, Q3, Q4")
	}

	out := make(map[string]interface{}, len(desc.Fields))
	for _, field := range desc.Fields {
		raw, present := payload.Fields[field.Name]
		if !present || isBlank(raw) {
			if field.Required {
				fieldErrs.Add(field.Name, "this field is required")
			}
			continue
		}
		value, err := coerceField(field, raw)
		if err != "" {
			fieldErrs.Add(field.Name, err)
			continue
		}
		out[field.Name] = value
	}

	for name := range payload.Fields {
		if _, reserved := reservedPayloadKeys[name]; reserved {
			continue
		}
		if desc.Field(name) == nil {
			fieldErrs.Add(name, "unknown field for this report kind")
		}
	}

	if len(fieldErrs) > 0 {
		return nil, appErrors.NewValidation(fieldErrs)
	}
	return out, nil
}

// coerceField converts one raw value to its canonical stored form. It
// returns an empty message on success.
func coerceField(field schema.FieldDescriptor, raw interface{}) (interface{}, string) {
	switch field.Type {
	case schema.TypeText, schema.TypeLongText:
		s, ok := asString(raw)
		if !ok {
			return nil, "must be text"
		}
		if field.MaxLen > 0 && len(s) > field.MaxLen {
			return nil, fmt.Sprintf("must be at most %d characters", field.MaxLen)
		}
		return s, ""

	case schema.TypeURL:
		s, ok := asString(raw)
		if !ok {
			return nil, "must be a link"
		}
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, "must be a valid http(s) link"
		}
		return s, ""

	case schema.TypeInt:
		switch v := raw.(type) {
		case int:
			return v, ""
		case float64:
			if v != math.Trunc(v) {
				return nil, "must be a whole number"
			}
			return int(v), ""
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, "must be a whole number"
			}
			return n, ""
		}
		return nil, "must be a whole number"

	case schema.TypeDecimal:
		switch v := raw.(type) {
		case int:
			return float64(v), ""
		case float64:
			return v, ""
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, "must be a number"
			}
			return f, ""
		}
		return nil, "must be a number"

	case schema.TypeBool:
		switch v := raw.(type) {
		case bool:
			return v, ""
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "yes", "true", "1":
				return true, ""
			case "no", "false", "0":
				return false, ""
			}
		}
		return nil, "must be Yes or No"

	case schema.TypeDate:
		s, ok := asString(raw)
		if !ok {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		s = strings.TrimSpace(s)
		if _, err := time.Parse(dateLayout, s); err != nil {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		return s, ""

	case schema.TypeEnum:
		s, ok := asString(raw)
		if !ok {
			return nil, "must be one of: " + strings.Join(field.Choices, ", ")
		}
		s = strings.TrimSpace(s)
		for _, choice := range field.Choices {
			if strings.EqualFold(s, choice) {
				return choice, ""
			}
		}
		return nil, "must be one of: " + strings.Join(field.Choices, ", ")
	}

	return nil, "unsupported field type"
}

func validateSearch(desc *schema.KindDescriptor, search map[string]string) error {
	if len(search) == 0 {
		return nil
	}
	fieldErrs := appErrors.FieldErrors{}
	for name := range search {
		field := desc.Field(name)
		if field == nil || !field.Filter {
			fieldErrs.Add(name, "not a filterable field for this report kind")
		}
	}
	if len(fieldErrs) > 0 {
		return appErrors.NewValidation(fieldErrs)
	}
	return nil
}

func asString(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	}
	return "", false
}

func isBlank(raw interface{}) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
