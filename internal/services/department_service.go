package services

import (
	"errors"
	"fmt"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentWithSameName = errors.New("a department with the same name already exists")
)

// DepartmentService handles department business logic
type DepartmentService struct {
	departmentsRepo repository.DepartmentsRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentsRepo repository.DepartmentsRepository) *DepartmentService {
	return &DepartmentService{
		departmentsRepo: departmentsRepo,
	}
}

// CreateDepartment creates a department with a system-wide unique name.
// The FindByName check is an early exit only; the unique index on the name
// column is what actually closes the check-then-create race.
func (s *DepartmentService) CreateDepartment(name string) (*models.Department, error) {
	if _, err := s.departmentsRepo.FindByName(name); err == nil {
		return nil, ErrDepartmentWithSameName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}

	department, err := models.NewDepartment(name)
	if err != nil {
		return nil, err
	}

	if err := s.departmentsRepo.Create(&department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentWithSameName
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return &department, nil
}

// ListDepartments returns every department
func (s *DepartmentService) ListDepartments() ([]models.Department, error) {
	departments, err := s.departmentsRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
