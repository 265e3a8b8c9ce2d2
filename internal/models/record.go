package models

import "time"

// Quarter identifies one academic reporting quarter.
type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Valid reports whether the quarter is one of Q1..Q4.
func (q Quarter) Valid() bool {
	switch q {
	case QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4:
		return true
	}
	return false
}

// ReportRecord is one persisted submission of some report kind. The
// kind-specific payload lives in Fields, shaped by the kind's descriptor.
// Owner and department are fixed at creation time and never drift.
type ReportRecord struct {
	ID             string                 `json:"id"`
	KindID         string                 `json:"kind_id"`
	UserID         string                 `json:"user_id"`
	OwnerName      string                 `json:"owner_name"`
	DepartmentID   string                 `json:"department_id"`
	DepartmentName string                 `json:"department_name"`
	Year           int                    `json:"year"`
	Quarter        Quarter                `json:"quarter"`
	Fields         map[string]interface{} `json:"fields"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// RecordPayload is the mutable part of a submission as supplied by a
// client or an import row. Field values may arrive as native JSON types
// or as spreadsheet cell strings; validation coerces both.
type RecordPayload struct {
	Year    int                    `json:"year"`
	Quarter Quarter                `json:"quarter"`
	Fields  map[string]interface{} `json:"fields"`
}

// RecordFilter captures the user-supplied list filters. Search keys are
// descriptor field names matched as case-insensitive substrings; only
// fields the kind marks filterable are honoured.
type RecordFilter struct {
	Year         *int
	Quarter      *Quarter
	DepartmentID string
	Search       map[string]string
	Page         int
	PageSize     int
}

// ImportRowError describes why one spreadsheet row produced no record.
type ImportRowError struct {
	Row    int                 `json:"row"`
	Fields map[string][]string `json:"fields"`
}

// ImportSummary reports the outcome of a workbook import. Rows fail
// independently; a bad row never blocks the rest of the file.
type ImportSummary struct {
	KindID  string           `json:"kind_id"`
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}
