package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
	Create(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, id string) error
}

// DepartmentService manages the department catalogue.
type DepartmentService struct {
	repo   departmentRepository
	logger *zap.Logger
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(repo departmentRepository, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, logger: logger}
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.repo.List(ctx)
}

// Create adds a department.
func (s *DepartmentService) Create(ctx context.Context, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "department name is required")
	}

	dept := &models.Department{Name: name}
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	s.logger.Info("department created", zap.String("department_id", dept.ID), zap.String("name", dept.Name))
	return dept, nil
}

// Delete removes a department. Departments still referenced by users or
// records are rejected with a conflict by the repository.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}
