package models

import "time"

// Department represents an organisational unit. Every non-admin user and
// every report record belongs to exactly one department.
type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
