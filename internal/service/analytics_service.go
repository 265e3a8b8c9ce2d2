package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/schema"
	"github.com/campusworks/qpr-api/internal/scope"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
	"github.com/campusworks/qpr-api/pkg/export"
)

type analyticsRecordRepository interface {
	CountByDepartment(ctx context.Context, kindIDs []string, sc scope.Scope, year *int, quarter *models.Quarter) ([]models.DepartmentCount, error)
}

type analyticsDepartmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
}

// AnalyticsService aggregates submissions across the kinds of a
// category into per-department counts. Kind batches are counted
// concurrently and merged.
type AnalyticsService struct {
	registry    *schema.Registry
	records     analyticsRecordRepository
	departments analyticsDepartmentRepository
	cache       *CacheService
	logger      *zap.Logger
	parallelism int

	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(registry *schema.Registry, records analyticsRecordRepository, departments analyticsDepartmentRepository, cache *CacheService, logger *zap.Logger, parallelism int) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parallelism < 1 {
		parallelism = 4
	}
	return &AnalyticsService{
		registry:    registry,
		records:     records,
		departments: departments,
		cache:       cache,
		logger:      logger,
		parallelism: parallelism,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
	}
}

// Categories lists the analytics categories and the kinds they cover.
func (s *AnalyticsService) Categories() []models.CategorySummary {
	cats := s.registry.Categories()
	out := make([]models.CategorySummary, 0, len(cats))
	for _, c := range cats {
		out = append(out, models.CategorySummary{Key: c.Key, Name: c.Name, Kinds: c.Kinds})
	}
	return out
}

// CountsByDepartment returns per-department submission counts for the
// category, restricted to the actor's scope. Admins see every
// department, including those with zero submissions; heads of
// department see a single row. The boolean reports a cache hit.
func (s *AnalyticsService) CountsByDepartment(ctx context.Context, actor *models.Actor, filter models.CountFilter) ([]models.DepartmentCount, bool, error) {
	if actor == nil {
		return nil, false, appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleHOD {
		return nil, false, appErrors.Clone(appErrors.ErrForbidden, "aggregated counts are limited to admins and heads of department")
	}
	if filter.Quarter != nil && !filter.Quarter.Valid() {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "quarter must be one of Q1..Q4")
	}

	kinds, err := s.registry.CategoryKinds(filter.Category)
	if err != nil {
		return nil, false, err
	}

	key := s.cacheKey(actor, filter)
	var cached []models.DepartmentCount
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	sc := scope.For(actor)
	totals, err := s.countConcurrently(ctx, kinds, sc, filter)
	if err != nil {
		return nil, false, err
	}

	counts, err := s.materialise(ctx, actor, totals)
	if err != nil {
		return nil, false, err
	}

	_ = s.cache.Set(ctx, key, counts, 0)
	return counts, false, nil
}

// countConcurrently splits the kind list into batches and counts each
// batch in its own goroutine, merging into one department total map.
func (s *AnalyticsService) countConcurrently(ctx context.Context, kinds []string, sc scope.Scope, filter models.CountFilter) (map[string]int, error) {
	batches := batchKinds(kinds, s.parallelism)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		totals   = make(map[string]int)
	)

	for _, batch := range batches {
		wg.Add(1)
		go func(batch []string) {
			defer wg.Done()
			counts, err := s.records.CountByDepartment(ctx, batch, sc, filter.Year, filter.Quarter)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, c := range counts {
				totals[c.Department] += c.Count
			}
		}(batch)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return totals, nil
}

// materialise turns the totals map into the response rows. Admins see
// every department even with zero submissions; a head of department
// always sees their own department, zero-filled when quiet.
func (s *AnalyticsService) materialise(ctx context.Context, actor *models.Actor, totals map[string]int) ([]models.DepartmentCount, error) {
	switch {
	case actor.Role == models.RoleAdmin:
		departments, err := s.departments.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range departments {
			if _, ok := totals[d.Name]; !ok {
				totals[d.Name] = 0
			}
		}
	case actor.Role == models.RoleHOD && actor.DepartmentID != nil:
		dept, err := s.departments.FindByID(ctx, *actor.DepartmentID)
		if err != nil {
			if appErrors.FromError(err).Code != appErrors.ErrNotFound.Code {
				return nil, err
			}
			// Dangling department reference; nothing to name the row by.
			break
		}
		if _, ok := totals[dept.Name]; !ok {
			totals[dept.Name] = 0
		}
	}

	counts := make([]models.DepartmentCount, 0, len(totals))
	for name, count := range totals {
		counts = append(counts, models.DepartmentCount{Department: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Department < counts[j].Department
	})
	return counts, nil
}

// ExportCounts renders the aggregated counts as a CSV or PDF download.
func (s *AnalyticsService) ExportCounts(ctx context.Context, actor *models.Actor, filter models.CountFilter, format string) ([]byte, string, error) {
	counts, _, err := s.CountsByDepartment(ctx, actor, filter)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Department", "Submissions"},
		Rows:    make([]map[string]string, 0, len(counts)),
	}
	for _, c := range counts {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Department":  c.Department,
			"Submissions": strconv.Itoa(c.Count),
		})
	}

	switch format {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		return data, "text/csv", err
	case "pdf":
		title := "Submissions by Department"
		if filter.Category != "" {
			if cat, err := s.registry.Category(filter.Category); err == nil {
				title = cat.Name
			}
		}
		data, err := s.pdf.Render(dataset, title)
		return data, "application/pdf", err
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func (s *AnalyticsService) cacheKey(actor *models.Actor, filter models.CountFilter) string {
	year := "all"
	if filter.Year != nil {
		year = strconv.Itoa(*filter.Year)
	}
	quarter := "all"
	if filter.Quarter != nil {
		quarter = string(*filter.Quarter)
	}
	category := filter.Category
	if category == "" {
		category = "all"
	}
	scopeKey := "admin"
	if actor.Role == models.RoleHOD {
		// A HOD without a department must never share the admin entry.
		scopeKey = "dept:none"
		if actor.DepartmentID != nil {
			scopeKey = "dept:" + *actor.DepartmentID
		}
	}
	return fmt.Sprintf("analytics:counts:%s:%s:%s:%s", category, year, quarter, scopeKey)
}

func batchKinds(kinds []string, parallelism int) [][]string {
	if len(kinds) == 0 {
		return nil
	}
	if parallelism > len(kinds) {
		parallelism = len(kinds)
	}
	size := (len(kinds) + parallelism - 1) / parallelism
	batches := make([][]string, 0, parallelism)
	for start := 0; start < len(kinds); start += size {
		end := start + size
		if end > len(kinds) {
			end = len(kinds)
		}
		batches = append(batches, kinds[start:end])
	}
	return batches
}
