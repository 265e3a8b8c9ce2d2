package models

// DepartmentCount is one aggregated row of the submissions-by-department
// table: the department's display name and its total matching records.
type DepartmentCount struct {
	Department string `db:"department_name" json:"department"`
	Count      int    `db:"count" json:"count"`
}

// CountFilter scopes an aggregation request. An empty Category means the
// union of every category's kinds.
type CountFilter struct {
	Category string
	Year     *int
	Quarter  *Quarter
}

// CategorySummary describes one analytics category for the listing endpoint.
type CategorySummary struct {
	Key   string   `json:"key"`
	Name  string   `json:"display_name"`
	Kinds []string `json:"kinds"`
}
