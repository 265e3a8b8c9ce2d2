package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	assert.Len(t, reg.Kinds(), 35)
	assert.Len(t, reg.Categories(), 10)
}

func TestRegistry_Describe(t *testing.T) {
	reg := NewRegistry()

	t.Run("known kind", func(t *testing.T) {
		desc, err := reg.Describe("T1.1")
		require.NoError(t, err)
		assert.Equal(t, "Research Articles (Journal)", desc.Name)
		assert.Equal(t, AudienceFaculty, desc.Audience)

		title := desc.Field("title")
		require.NotNil(t, title)
		assert.True(t, title.Required)
		assert.True(t, title.Filter)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := reg.Describe("T9.9")
		assert.Error(t, err)
	})
}

func TestRegistry_KindsOrderedAndUnique(t *testing.T) {
	reg := NewRegistry()

	seen := make(map[string]bool)
	for _, id := range reg.Kinds() {
		assert.False(t, seen[id], "duplicate kind %s", id)
		seen[id] = true

		desc, err := reg.Describe(id)
		require.NoError(t, err)
		assert.NotEmpty(t, desc.Fields, "kind %s has no fields", id)
	}
}

func TestRegistry_CategoriesDisjoint(t *testing.T) {
	reg := NewRegistry()

	owner := make(map[string]string)
	for _, c := range reg.Categories() {
		for _, kindID := range c.Kinds {
			prev, dup := owner[kindID]
			assert.False(t, dup, "kind %s in both %s and %s", kindID, prev, c.Key)
			owner[kindID] = c.Key

			_, err := reg.Describe(kindID)
			assert.NoError(t, err, "category %s references unknown kind %s", c.Key, kindID)
		}
	}
	// Every kind belongs to exactly one category.
	assert.Len(t, owner, len(reg.Kinds()))
}

func TestRegistry_CategoryKinds(t *testing.T) {
	reg := NewRegistry()

	t.Run("single category", func(t *testing.T) {
		kinds, err := reg.CategoryKinds("student_training_and_courses")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"S5.1", "S5.2"}, kinds)
	})

	t.Run("empty key yields union of all categories", func(t *testing.T) {
		kinds, err := reg.CategoryKinds("")
		require.NoError(t, err)
		assert.Len(t, kinds, 35)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := reg.CategoryKinds("no_such_category")
		assert.Error(t, err)
	})
}

func TestKindDescriptor_FilterFields(t *testing.T) {
	reg := NewRegistry()

	desc, err := reg.Describe("S2.3")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"student_name", "project_title"}, desc.FilterFields())
}
