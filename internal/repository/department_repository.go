package repository

import (
	"github.com/hireloop/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormDepartmentsRepository is a GORM implementation of DepartmentsRepository
type GormDepartmentsRepository struct {
	db *gorm.DB
}

// NewDepartmentsRepository creates a new DepartmentsRepository
func NewDepartmentsRepository(db *gorm.DB) DepartmentsRepository {
	return &GormDepartmentsRepository{db: db}
}

// Create persists a new department
func (r *GormDepartmentsRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// FindByName finds a department by exact name
func (r *GormDepartmentsRepository) FindByName(name string) (*models.Department, error) {
	var department models.Department
	if err := r.db.Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByID finds a department by ID
func (r *GormDepartmentsRepository) FindByID(id string) (*models.Department, error) {
	var department models.Department
	if err := r.db.Where("id = ?", id).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindAll lists every department ordered by name
func (r *GormDepartmentsRepository) FindAll() ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
