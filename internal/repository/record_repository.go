package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/scope"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

// RecordRepository manages persistence for report records of every kind.
// One table holds all kinds; the kind-specific payload lives in a jsonb
// column shaped by the kind's descriptor.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository constructs a RecordRepository.
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// recordRow is the scan target; the jsonb payload arrives as raw bytes.
type recordRow struct {
	ID             string         `db:"id"`
	KindID         string         `db:"kind_id"`
	UserID         string         `db:"user_id"`
	OwnerName      string         `db:"owner_name"`
	DepartmentID   string         `db:"department_id"`
	DepartmentName string         `db:"department_name"`
	Year           int            `db:"year"`
	Quarter        string         `db:"quarter"`
	Fields         types.JSONText `db:"fields"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (row recordRow) toModel() (*models.ReportRecord, error) {
	fields := make(map[string]interface{})
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, fmt.Errorf("unmarshal record fields: %w", err)
		}
	}
	return &models.ReportRecord{
		ID:             row.ID,
		KindID:         row.KindID,
		UserID:         row.UserID,
		OwnerName:      row.OwnerName,
		DepartmentID:   row.DepartmentID,
		DepartmentName: row.DepartmentName,
		Year:           row.Year,
		Quarter:        models.Quarter(row.Quarter),
		Fields:         fields,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

// List returns records of one kind visible to the scope, newest first.
// Search keys must already be validated against the kind's descriptor;
// they are matched as case-insensitive substrings inside the payload.
func (r *RecordRepository) List(ctx context.Context, kindID string, sc scope.Scope, filter models.RecordFilter) ([]models.ReportRecord, int, error) {
	if sc.IsEmpty() {
		return []models.ReportRecord{}, 0, nil
	}

	base := `FROM report_records r
        JOIN users u ON u.id = r.user_id
        JOIN departments d ON d.id = r.department_id`
	conditions := []string{"r.kind_id = $1"}
	args := []interface{}{kindID}

	if dept, ok := sc.DepartmentID(); ok {
		conditions = append(conditions, fmt.Sprintf("r.department_id = $%d", len(args)+1))
		args = append(args, dept)
	}
	if owner, ok := sc.OwnerID(); ok {
		conditions = append(conditions, fmt.Sprintf("r.user_id = $%d", len(args)+1))
		args = append(args, owner)
	}

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("r.year = $%d", len(args)+1))
		args = append(args, *filter.Year)
	}
	if filter.Quarter != nil {
		conditions = append(conditions, fmt.Sprintf("r.quarter = $%d", len(args)+1))
		args = append(args, string(*filter.Quarter))
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("r.department_id = $%d", len(args)+1))
		args = append(args, filter.DepartmentID)
	}
	for _, field := range sortedSearchKeys(filter.Search) {
		conditions = append(conditions, fmt.Sprintf("LOWER(r.fields->>'%s') LIKE $%d", field, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search[field])+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT r.id, r.kind_id, r.user_id, u.full_name AS owner_name,
        r.department_id, d.name AS department_name, r.year, r.quarter, r.fields, r.created_at, r.updated_at
        %s ORDER BY r.created_at DESC, r.id LIMIT %d OFFSET %d`, base, size, offset)

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	records := make([]models.ReportRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toModel()
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}
	return records, total, nil
}

// FindByID fetches one record within the scope. Records outside the
// scope are reported as not found, not as forbidden.
func (r *RecordRepository) FindByID(ctx context.Context, kindID, id string, sc scope.Scope) (*models.ReportRecord, error) {
	if sc.IsEmpty() {
		return nil, appErrors.ErrNotFound
	}

	query := `SELECT r.id, r.kind_id, r.user_id, u.full_name AS owner_name,
        r.department_id, d.name AS department_name, r.year, r.quarter, r.fields, r.created_at, r.updated_at
        FROM report_records r
        JOIN users u ON u.id = r.user_id
        JOIN departments d ON d.id = r.department_id
        WHERE r.kind_id = $1 AND r.id = $2`
	args := []interface{}{kindID, id}

	if dept, ok := sc.DepartmentID(); ok {
		query += fmt.Sprintf(" AND r.department_id = $%d", len(args)+1)
		args = append(args, dept)
	}
	if owner, ok := sc.OwnerID(); ok {
		query += fmt.Sprintf(" AND r.user_id = $%d", len(args)+1)
		args = append(args, owner)
	}

	var row recordRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("find record: %w", err)
	}
	return row.toModel()
}

// Create inserts a new record and fills in generated fields.
func (r *RecordRepository) Create(ctx context.Context, rec *models.ReportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	payload, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("marshal record fields: %w", err)
	}

	const query = `INSERT INTO report_records (id, kind_id, user_id, department_id, year, quarter, fields, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.KindID, rec.UserID, rec.DepartmentID,
		rec.Year, string(rec.Quarter), types.JSONText(payload), rec.CreatedAt, rec.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of a record within the scope.
// Owner and department never change after creation.
func (r *RecordRepository) Update(ctx context.Context, kindID, id string, sc scope.Scope, payload *models.RecordPayload) error {
	if sc.IsEmpty() {
		return appErrors.ErrNotFound
	}

	fields, err := json.Marshal(payload.Fields)
	if err != nil {
		return fmt.Errorf("marshal record fields: %w", err)
	}

	query := `UPDATE report_records SET year = $1, quarter = $2, fields = $3, updated_at = $4 WHERE kind_id = $5 AND id = $6`
	args := []interface{}{payload.Year, string(payload.Quarter), types.JSONText(fields), time.Now().UTC(), kindID, id}

	if dept, ok := sc.DepartmentID(); ok {
		query += fmt.Sprintf(" AND department_id = $%d", len(args)+1)
		args = append(args, dept)
	}
	if owner, ok := sc.OwnerID(); ok {
		query += fmt.Sprintf(" AND user_id = $%d", len(args)+1)
		args = append(args, owner)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}

// Delete removes a record within the scope.
func (r *RecordRepository) Delete(ctx context.Context, kindID, id string, sc scope.Scope) error {
	if sc.IsEmpty() {
		return appErrors.ErrNotFound
	}

	query := `DELETE FROM report_records WHERE kind_id = $1 AND id = $2`
	args := []interface{}{kindID, id}

	if dept, ok := sc.DepartmentID(); ok {
		query += fmt.Sprintf(" AND department_id = $%d", len(args)+1)
		args = append(args, dept)
	}
	if owner, ok := sc.OwnerID(); ok {
		query += fmt.Sprintf(" AND user_id = $%d", len(args)+1)
		args = append(args, owner)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}

// CountByDepartment aggregates records of the given kinds per department
// within the scope, optionally restricted to a year and quarter.
func (r *RecordRepository) CountByDepartment(ctx context.Context, kindIDs []string, sc scope.Scope, year *int, quarter *models.Quarter) ([]models.DepartmentCount, error) {
	if sc.IsEmpty() || len(kindIDs) == 0 {
		return []models.DepartmentCount{}, nil
	}

	query := `SELECT d.name AS department_name, COUNT(*) AS count
        FROM report_records r
        JOIN departments d ON d.id = r.department_id
        WHERE r.kind_id = ANY($1)`
	args := []interface{}{pq.StringArray(kindIDs)}

	if dept, ok := sc.DepartmentID(); ok {
		query += fmt.Sprintf(" AND r.department_id = $%d", len(args)+1)
		args = append(args, dept)
	}
	if owner, ok := sc.OwnerID(); ok {
		query += fmt.Sprintf(" AND r.user_id = $%d", len(args)+1)
		args = append(args, owner)
	}
	if year != nil {
		query += fmt.Sprintf(" AND r.year = $%d", len(args)+1)
		args = append(args, *year)
	}
	if quarter != nil {
		query += fmt.Sprintf(" AND r.quarter = $%d", len(args)+1)
		args = append(args, string(*quarter))
	}

	query += " GROUP BY d.name"

	var counts []models.DepartmentCount
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("count by department: %w", err)
	}
	return counts, nil
}

func sortedSearchKeys(search map[string]string) []string {
	if len(search) == 0 {
		return nil
	}
	keys := make([]string, 0, len(search))
	for k := range search {
		keys = append(keys, k)
	}
	// Stable condition order keeps generated SQL deterministic.
	sort.Strings(keys)
	return keys
}
