// Package scope decides which records an actor may see and touch. The
// same scope applies to reads and writes: an actor can edit exactly
// what it can list.
package scope

import "github.com/campusworks/qpr-api/internal/models"

// Scope narrows record queries for one actor. The zero value matches
// nothing.
type Scope struct {
	all          bool
	departmentID string
	userID       string
}

// Unrestricted matches every record.
func Unrestricted() Scope {
	return Scope{all: true}
}

// Department matches records belonging to one department.
func Department(id string) Scope {
	return Scope{departmentID: id}
}

// Owner matches records created by one user.
func Owner(userID string) Scope {
	return Scope{userID: userID}
}

// Empty matches nothing.
func Empty() Scope {
	return Scope{}
}

// IsUnrestricted reports whether the scope matches every record.
func (s Scope) IsUnrestricted() bool {
	return s.all
}

// IsEmpty reports whether the scope matches nothing.
func (s Scope) IsEmpty() bool {
	return !s.all && s.departmentID == "" && s.userID == ""
}

// DepartmentID returns the department restriction, if any.
func (s Scope) DepartmentID() (string, bool) {
	return s.departmentID, s.departmentID != ""
}

// OwnerID returns the owner restriction, if any.
func (s Scope) OwnerID() (string, bool) {
	return s.userID, s.userID != ""
}

// For maps an actor to its visibility scope. Admins see everything,
// heads of department see their department, everyone else sees their
// own records. A head of department without a department sees nothing
// rather than everything.
func For(actor *models.Actor) Scope {
	if actor == nil {
		return Empty()
	}

	switch actor.Role {
	case models.RoleAdmin:
		return Unrestricted()
	case models.RoleHOD:
		if actor.DepartmentID == nil || *actor.DepartmentID == "" {
			return Empty()
		}
		return Department(*actor.DepartmentID)
	case models.RoleFaculty, models.RoleStudent:
		return Owner(actor.ID)
	default:
		return Empty()
	}
}
