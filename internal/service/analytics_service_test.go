package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/schema"
	"github.com/campusworks/qpr-api/internal/scope"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

type mockAnalyticsRepo struct {
	mu         sync.Mutex
	calls      [][]string
	countsBy   map[string]map[string]int // kindID -> department -> count
	lastScope  scope.Scope
	err        error
}

func (m *mockAnalyticsRepo) CountByDepartment(ctx context.Context, kindIDs []string, sc scope.Scope, year *int, quarter *models.Quarter) ([]models.DepartmentCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, kindIDs)
	m.lastScope = sc
	if m.err != nil {
		return nil, m.err
	}
	totals := make(map[string]int)
	for _, kind := range kindIDs {
		for dept, count := range m.countsBy[kind] {
			totals[dept] += count
		}
	}
	out := make([]models.DepartmentCount, 0, len(totals))
	for dept, count := range totals {
		out = append(out, models.DepartmentCount{Department: dept, Count: count})
	}
	return out, nil
}

type mockDeptRepo struct {
	departments []models.Department
	err         error
}

func (m *mockDeptRepo) List(ctx context.Context) ([]models.Department, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.departments, nil
}

func (m *mockDeptRepo) FindByID(ctx context.Context, id string) (*models.Department, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, d := range m.departments {
		if d.ID == id {
			dept := d
			return &dept, nil
		}
	}
	return nil, appErrors.ErrNotFound
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func adminActor() *models.Actor {
	return &models.Actor{ID: "admin", Role: models.RoleAdmin, FullName: "Registry Admin"}
}

func hodActor() *models.Actor {
	dept := "d1"
	return &models.Actor{ID: "hod", Role: models.RoleHOD, DepartmentID: &dept, FullName: "Prof. Rao"}
}

func TestAnalyticsServiceRoleGate(t *testing.T) {
	svc := NewAnalyticsService(schema.NewRegistry(), &mockAnalyticsRepo{}, &mockDeptRepo{}, nil, zap.NewNop(), 2)

	_, _, err := svc.CountsByDepartment(context.Background(), facultyActor(), models.CountFilter{})
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	_, _, err = svc.CountsByDepartment(context.Background(), nil, models.CountFilter{})
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAnalyticsServiceCountsByDepartment(t *testing.T) {
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{
		"T6.3": {"Physics": 3, "Computer Science": 1},
		"T6.5": {"Physics": 1},
		"T7.1": {"Computer Science": 4},
	}}
	depts := &mockDeptRepo{departments: []models.Department{
		{ID: "d1", Name: "Physics"},
		{ID: "d2", Name: "Computer Science"},
		{ID: "d3", Name: "Mathematics"},
	}}
	svc := NewAnalyticsService(schema.NewRegistry(), repo, depts, nil, zap.NewNop(), 2)

	counts, hit, err := svc.CountsByDepartment(context.Background(), adminActor(), models.CountFilter{
		Category: "faculty_awards_and_initiatives",
	})
	require.NoError(t, err)
	assert.False(t, hit)

	// Admin view zero-fills departments with no submissions, sorted by
	// count descending then name.
	require.Len(t, counts, 3)
	assert.Equal(t, models.DepartmentCount{Department: "Computer Science", Count: 5}, counts[0])
	assert.Equal(t, models.DepartmentCount{Department: "Physics", Count: 4}, counts[1])
	assert.Equal(t, models.DepartmentCount{Department: "Mathematics", Count: 0}, counts[2])

	// All three kinds were counted even when split across batches.
	seen := make(map[string]bool)
	for _, call := range repo.calls {
		for _, kind := range call {
			seen[kind] = true
		}
	}
	assert.Len(t, seen, 3)
}

func TestAnalyticsServiceHODSeesOwnDepartmentOnly(t *testing.T) {
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{
		"T6.3": {"Physics": 2},
	}}
	depts := &mockDeptRepo{departments: []models.Department{{ID: "d1", Name: "Physics"}}}
	svc := NewAnalyticsService(schema.NewRegistry(), repo, depts, nil, zap.NewNop(), 2)

	counts, _, err := svc.CountsByDepartment(context.Background(), hodActor(), models.CountFilter{
		Category: "faculty_awards_and_initiatives",
	})
	require.NoError(t, err)

	require.Len(t, counts, 1)
	assert.Equal(t, "Physics", counts[0].Department)

	dept, ok := repo.lastScope.DepartmentID()
	require.True(t, ok)
	assert.Equal(t, "d1", dept)
}

func TestAnalyticsServiceHODQuietDepartmentStillOneRow(t *testing.T) {
	// No submissions at all: the HOD's own department is still emitted,
	// zero-filled, exactly one row.
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{}}
	depts := &mockDeptRepo{departments: []models.Department{
		{ID: "d1", Name: "Physics"},
		{ID: "d2", Name: "Computer Science"},
	}}
	svc := NewAnalyticsService(schema.NewRegistry(), repo, depts, nil, zap.NewNop(), 2)

	counts, _, err := svc.CountsByDepartment(context.Background(), hodActor(), models.CountFilter{
		Category: "faculty_awards_and_initiatives",
	})
	require.NoError(t, err)

	require.Len(t, counts, 1)
	assert.Equal(t, models.DepartmentCount{Department: "Physics", Count: 0}, counts[0])
}

func TestAnalyticsServiceCacheKeyScoping(t *testing.T) {
	svc := NewAnalyticsService(schema.NewRegistry(), &mockAnalyticsRepo{}, &mockDeptRepo{}, nil, zap.NewNop(), 2)
	filter := models.CountFilter{Category: "faculty_awards_and_initiatives"}

	adminKey := svc.cacheKey(adminActor(), filter)
	hodKey := svc.cacheKey(hodActor(), filter)
	assert.NotEqual(t, adminKey, hodKey)

	// A HOD with no department must not read the admin-scoped entry.
	orphan := &models.Actor{ID: "hod2", Role: models.RoleHOD}
	orphanKey := svc.cacheKey(orphan, filter)
	assert.NotEqual(t, adminKey, orphanKey)
	assert.NotEqual(t, hodKey, orphanKey)
}

func TestAnalyticsServiceUnknownCategory(t *testing.T) {
	svc := NewAnalyticsService(schema.NewRegistry(), &mockAnalyticsRepo{}, &mockDeptRepo{}, nil, zap.NewNop(), 2)

	_, _, err := svc.CountsByDepartment(context.Background(), adminActor(), models.CountFilter{
		Category: "no_such_category",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAnalyticsServiceEmptyCategoryCountsEverything(t *testing.T) {
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{}}
	svc := NewAnalyticsService(schema.NewRegistry(), repo, &mockDeptRepo{}, nil, zap.NewNop(), 4)

	_, _, err := svc.CountsByDepartment(context.Background(), hodActor(), models.CountFilter{})
	require.NoError(t, err)

	total := 0
	for _, call := range repo.calls {
		total += len(call)
	}
	assert.Equal(t, 35, total)
}

func TestAnalyticsServiceCaching(t *testing.T) {
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{
		"T6.3": {"Physics": 2},
	}}
	cache := NewCacheService(&memoryCache{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewAnalyticsService(schema.NewRegistry(), repo, &mockDeptRepo{}, cache, zap.NewNop(), 2)

	filter := models.CountFilter{Category: "faculty_awards_and_initiatives"}

	first, hit, err := svc.CountsByDepartment(context.Background(), hodActor(), filter)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.CountsByDepartment(context.Background(), hodActor(), filter)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
}

func TestAnalyticsServiceExportCounts(t *testing.T) {
	repo := &mockAnalyticsRepo{countsBy: map[string]map[string]int{
		"T6.3": {"Physics": 2},
	}}
	svc := NewAnalyticsService(schema.NewRegistry(), repo, &mockDeptRepo{}, nil, zap.NewNop(), 2)

	t.Run("csv", func(t *testing.T) {
		data, contentType, err := svc.ExportCounts(context.Background(), hodActor(), models.CountFilter{Category: "faculty_awards_and_initiatives"}, "csv")
		require.NoError(t, err)
		assert.Equal(t, "text/csv", contentType)
		assert.Contains(t, string(data), "Physics,2")
	})

	t.Run("pdf", func(t *testing.T) {
		data, contentType, err := svc.ExportCounts(context.Background(), hodActor(), models.CountFilter{Category: "faculty_awards_and_initiatives"}, "pdf")
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
		assert.NotEmpty(t, data)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := svc.ExportCounts(context.Background(), hodActor(), models.CountFilter{}, "xml")
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	})
}

func TestAnalyticsServiceCategories(t *testing.T) {
	svc := NewAnalyticsService(schema.NewRegistry(), &mockAnalyticsRepo{}, &mockDeptRepo{}, nil, zap.NewNop(), 2)

	categories := svc.Categories()
	assert.Len(t, categories, 10)
	for _, c := range categories {
		assert.NotEmpty(t, c.Key)
		assert.NotEmpty(t, c.Kinds)
	}
}
