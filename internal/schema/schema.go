package schema

import (
	"fmt"

	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

// FieldType is the semantic type of one descriptor field. It drives both
// payload validation and spreadsheet template generation.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeLongText FieldType = "longtext"
	TypeInt      FieldType = "int"
	TypeDecimal  FieldType = "decimal"
	TypeDate     FieldType = "date"
	TypeBool     FieldType = "bool"
	TypeURL      FieldType = "url"
	TypeEnum     FieldType = "enum"
)

// Audience splits the catalog into faculty kinds (T-series) and student
// kinds (S-series). The two sets are disjoint and submission is limited
// to the matching roles.
type Audience string

const (
	AudienceFaculty Audience = "faculty"
	AudienceStudent Audience = "student"
)

// FieldDescriptor describes one kind-specific field.
type FieldDescriptor struct {
	// Name is the snake_case payload key; Label the human header text.
	Name     string
	Label    string
	Type     FieldType
	Required bool
	// Choices is populated for enum fields only.
	Choices []string
	// MaxLen bounds text input; zero means unbounded.
	MaxLen int
	// Filter marks text fields that support substring list filtering.
	Filter bool
	// Help is the free-form hint shown on import templates.
	Help string
}

// KindDescriptor is the static catalog entry for one report kind.
type KindDescriptor struct {
	ID       string
	Name     string
	Audience Audience
	Fields   []FieldDescriptor
}

// Field returns the named field descriptor, or nil when unknown.
func (k *KindDescriptor) Field(name string) *FieldDescriptor {
	for i := range k.Fields {
		if k.Fields[i].Name == name {
			return &k.Fields[i]
		}
	}
	return nil
}

// FilterFields lists the field names that accept substring filters.
func (k *KindDescriptor) FilterFields() []string {
	var names []string
	for _, f := range k.Fields {
		if f.Filter {
			names = append(names, f.Name)
		}
	}
	return names
}

// Category groups kinds for cross-kind aggregation. Membership is
// disjoint: a kind belongs to exactly one category.
type Category struct {
	Key   string
	Name  string
	Kinds []string
}

// Registry is the read-only catalog of report kinds and analytics
// categories. It is built once at startup and shared without locking.
type Registry struct {
	kinds      map[string]*KindDescriptor
	order      []string
	categories []Category
	byCategory map[string]*Category
}

// NewRegistry assembles the registry from the static catalog. It panics
// on catalog inconsistencies, which are programming errors caught at
// process start, never at request time.
func NewRegistry() *Registry {
	return newRegistry(catalog(), categoryTable())
}

func newRegistry(kinds []KindDescriptor, categories []Category) *Registry {
	r := &Registry{
		kinds:      make(map[string]*KindDescriptor, len(kinds)),
		order:      make([]string, 0, len(kinds)),
		categories: categories,
		byCategory: make(map[string]*Category, len(categories)),
	}
	for i := range kinds {
		k := &kinds[i]
		if _, dup := r.kinds[k.ID]; dup {
			panic(fmt.Sprintf("schema: duplicate kind %q", k.ID))
		}
		r.kinds[k.ID] = k
		r.order = append(r.order, k.ID)
	}

	seen := make(map[string]string, len(kinds))
	for i := range r.categories {
		c := &r.categories[i]
		if _, dup := r.byCategory[c.Key]; dup {
			panic(fmt.Sprintf("schema: duplicate category %q", c.Key))
		}
		r.byCategory[c.Key] = c
		for _, kindID := range c.Kinds {
			if _, ok := r.kinds[kindID]; !ok {
				panic(fmt.Sprintf("schema: category %q references unknown kind %q", c.Key, kindID))
			}
			if prev, dup := seen[kindID]; dup {
				// Disjoint membership keeps the all-categories union free
				// of double counting.
				panic(fmt.Sprintf("schema: kind %q in categories %q and %q", kindID, prev, c.Key))
			}
			seen[kindID] = c.Key
		}
	}
	return r
}

// Describe returns the descriptor for a kind id. Unknown ids surface as a
// client-facing not-found error, never a crash.
func (r *Registry) Describe(kindID string) (*KindDescriptor, error) {
	k, ok := r.kinds[kindID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown report kind %q", kindID))
	}
	return k, nil
}

// Kinds returns every kind id in catalog order.
func (r *Registry) Kinds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Categories returns the analytics categories in declaration order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Category resolves a category key.
func (r *Registry) Category(key string) (*Category, error) {
	c, ok := r.byCategory[key]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown analytics category %q", key))
	}
	return c, nil
}

// CategoryKinds returns the kind set to aggregate: the named category's
// kinds, or the deduplicated union of every category when key is empty.
func (r *Registry) CategoryKinds(key string) ([]string, error) {
	if key != "" {
		c, err := r.Category(key)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(c.Kinds))
		copy(out, c.Kinds)
		return out, nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, c := range r.categories {
		for _, kindID := range c.Kinds {
			if _, dup := seen[kindID]; dup {
				continue
			}
			seen[kindID] = struct{}{}
			out = append(out, kindID)
		}
	}
	return out, nil
}
