package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusworks/qpr-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFor(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.Actor
		check func(t *testing.T, s Scope)
	}{
		{
			name:  "nil actor sees nothing",
			actor: nil,
			check: func(t *testing.T, s Scope) {
				assert.True(t, s.IsEmpty())
			},
		},
		{
			name:  "admin sees everything",
			actor: &models.Actor{ID: "u1", Role: models.RoleAdmin},
			check: func(t *testing.T, s Scope) {
				assert.True(t, s.IsUnrestricted())
			},
		},
		{
			name:  "hod sees own department",
			actor: &models.Actor{ID: "u2", Role: models.RoleHOD, DepartmentID: strPtr("d1")},
			check: func(t *testing.T, s Scope) {
				dept, ok := s.DepartmentID()
				assert.True(t, ok)
				assert.Equal(t, "d1", dept)
			},
		},
		{
			name:  "hod without department sees nothing",
			actor: &models.Actor{ID: "u3", Role: models.RoleHOD},
			check: func(t *testing.T, s Scope) {
				assert.True(t, s.IsEmpty())
			},
		},
		{
			name:  "faculty sees own records",
			actor: &models.Actor{ID: "u4", Role: models.RoleFaculty, DepartmentID: strPtr("d1")},
			check: func(t *testing.T, s Scope) {
				owner, ok := s.OwnerID()
				assert.True(t, ok)
				assert.Equal(t, "u4", owner)
			},
		},
		{
			name:  "student sees own records",
			actor: &models.Actor{ID: "u5", Role: models.RoleStudent},
			check: func(t *testing.T, s Scope) {
				owner, ok := s.OwnerID()
				assert.True(t, ok)
				assert.Equal(t, "u5", owner)
			},
		},
		{
			name:  "unknown role sees nothing",
			actor: &models.Actor{ID: "u6", Role: models.Role("Registrar")},
			check: func(t *testing.T, s Scope) {
				assert.True(t, s.IsEmpty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, For(tt.actor))
		})
	}
}

func TestScopeZeroValueMatchesNothing(t *testing.T) {
	var s Scope
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsUnrestricted())
}
