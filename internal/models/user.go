package models

import "time"

// Role represents the available roles for visibility scoping.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleHOD     Role = "HOD"
	RoleFaculty Role = "Faculty"
	RoleStudent Role = "Student"
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHOD, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// User represents an application user stored in the users table.
// DepartmentID is nil for admins and required for every other role.
type User struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	Role           Role      `db:"role" json:"role"`
	DepartmentID   *string   `db:"department_id" json:"department_id,omitempty"`
	DepartmentName *string   `db:"department_name" json:"department_name,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Actor is the authenticated identity the scoping engine operates on.
// It is derived from validated token claims, never from request payloads.
type Actor struct {
	ID           string
	Role         Role
	DepartmentID *string
	FullName     string
}

// ActorFromUser builds the scoping identity for a stored user.
func ActorFromUser(u *User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{ID: u.ID, Role: u.Role, DepartmentID: u.DepartmentID, FullName: u.FullName}
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role         *Role
	DepartmentID string
	Search       string
	Page         int
	PageSize     int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
